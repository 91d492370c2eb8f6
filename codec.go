package citytiles

import (
	"github.com/voidshard/citytiles/internal/encoding"

	"github.com/pkg/errors"
)

// Binary layout of a Grid (all big endian)
//
//	uint16 width
//	uint16 height
//	uint16 n           -> number of archetype ids
//	n * (uint8 len, bytes) archetype ids, in order of first appearance
//	width*height cells, row major:
//	    uint8  kind
//	    uint16 archetype index (0 for ground cells)
//	    uint16 offset, dx high byte, dy low byte
//
// Ids are numbered by first appearance so equal grids give equal bytes.
const (
	maxEncodedDimension = 1<<16 - 1
	encodedCellSize     = 5
)

// MarshalBinary encodes the grid.
func (g *Grid) MarshalBinary() ([]byte, error) {
	if g.width > maxEncodedDimension || g.height > maxEncodedDimension {
		return nil, errors.Errorf("grid %dx%d too large to encode", g.width, g.height)
	}

	ids := []string{}
	index := map[string]int{}
	for _, c := range g.cells {
		if c.Kind != Building {
			continue
		}
		if _, ok := index[c.Marker.Archetype]; ok {
			continue
		}
		index[c.Marker.Archetype] = len(ids)
		ids = append(ids, c.Marker.Archetype)
	}
	if len(ids) > maxEncodedDimension {
		return nil, errors.Errorf("%d archetypes too many to encode", len(ids))
	}

	w := &encoding.Writer{}
	w.Uint16(uint16(g.width))
	w.Uint16(uint16(g.height))
	w.Uint16(uint16(len(ids)))
	for _, id := range ids {
		if err := w.String(id); err != nil {
			return nil, errors.Wrapf(err, "archetype id %q", id)
		}
	}

	for _, c := range g.cells {
		w.Uint8(uint8(c.Kind))
		if c.Kind != Building {
			w.Uint16(0)
			w.Uint16(0)
			continue
		}
		if c.Marker.DX < 0 || c.Marker.DX > 255 || c.Marker.DY < 0 || c.Marker.DY > 255 {
			return nil, errors.Errorf("offset (%d,%d) cannot be encoded", c.Marker.DX, c.Marker.DY)
		}
		w.Uint16(uint16(index[c.Marker.Archetype]))
		w.Uint16(encoding.Merge8(uint8(c.Marker.DX), uint8(c.Marker.DY)))
	}

	return w.Bytes(), nil
}

// UnmarshalBinary replaces the grid with the encoded one.
func (g *Grid) UnmarshalBinary(data []byte) error {
	r := encoding.NewReader(data)

	width := int(r.Uint16())
	height := int(r.Uint16())
	ids := make([]string, int(r.Uint16()))
	for i := range ids {
		ids[i] = r.String()
	}
	if r.Err() != nil {
		return errors.Wrap(r.Err(), "reading grid header")
	}
	if need := width * height * encodedCellSize; r.Remaining() < need {
		return errors.Wrapf(encoding.ErrShortBuffer, "%dx%d grid needs %d bytes of cells, have %d", width, height, need, r.Remaining())
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		kind := Kind(r.Uint8())
		idx := int(r.Uint16())
		dx, dy := encoding.Split16(r.Uint16())
		if r.Err() != nil {
			return errors.Wrapf(r.Err(), "reading cell %d", i)
		}
		if !kind.valid() {
			return errors.Errorf("cell %d has unknown kind %d", i, kind)
		}
		if kind != Building {
			cells[i] = GroundCell(kind)
			continue
		}
		if idx >= len(ids) {
			return errors.Errorf("cell %d references archetype %d of %d", i, idx, len(ids))
		}
		cells[i] = BuildingCell(ids[idx], int(dx), int(dy))
	}
	if r.Remaining() != 0 {
		return errors.Errorf("%d trailing bytes after grid", r.Remaining())
	}

	g.width = width
	g.height = height
	g.cells = cells
	return nil
}
