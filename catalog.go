package citytiles

import (
	"image"

	"github.com/pkg/errors"
)

// maxFootprint is the largest width or height of an archetype; offsets are
// stored in a byte when a grid is encoded.
const maxFootprint = 255

// Fragment addresses one fixed size square of a sprite sheet.
type Fragment struct {
	Sheet string
	Col   int
	Row   int
}

// Archetype is a building template: how many cells it covers & which fragment
// is drawn on each of them.
type Archetype struct {
	ID       string
	Width    int
	Height   int
	Category Category

	// Tiles holds Height rows of Width fragments, Tiles[dy][dx] is drawn on
	// the cell at offset (dx, dy) from the building's top left corner.
	Tiles [][]Fragment
}

// Size returns the footprint as a rectangle at the origin
func (a *Archetype) Size() image.Rectangle {
	return image.Rect(0, 0, a.Width, a.Height)
}

// Fragment returns the fragment at local offset dx,dy
func (a *Archetype) Fragment(dx, dy int) (Fragment, error) {
	if dx < 0 || dx >= a.Width || dy < 0 || dy >= a.Height {
		return Fragment{}, errors.Wrapf(ErrNotFound, "offset (%d,%d) outside %s footprint %dx%d", dx, dy, a.ID, a.Width, a.Height)
	}
	return a.Tiles[dy][dx], nil
}

// validate checks that the tile table matches the declared footprint.
func (a *Archetype) validate() error {
	if a.ID == "" {
		return errors.Wrap(ErrSchemaViolation, "archetype id cannot be empty")
	}
	if a.Width < 1 || a.Height < 1 {
		return errors.Wrapf(ErrSchemaViolation, "archetype %s footprint %dx%d must be at least 1x1", a.ID, a.Width, a.Height)
	}
	if a.Width > maxFootprint || a.Height > maxFootprint {
		return errors.Wrapf(ErrSchemaViolation, "archetype %s footprint %dx%d exceeds %d", a.ID, a.Width, a.Height, maxFootprint)
	}
	if len(a.Tiles) != a.Height {
		return errors.Wrapf(ErrSchemaViolation, "archetype %s has %d tile rows, footprint height is %d", a.ID, len(a.Tiles), a.Height)
	}
	for dy, row := range a.Tiles {
		if len(row) != a.Width {
			return errors.Wrapf(ErrSchemaViolation, "archetype %s tile row %d has %d fragments, footprint width is %d", a.ID, dy, len(row), a.Width)
		}
	}
	return nil
}

// clone copies a, including the tile table, so later changes by the caller
// can't reach into a catalog.
func (a *Archetype) clone() *Archetype {
	out := *a
	out.Tiles = make([][]Fragment, len(a.Tiles))
	for i, row := range a.Tiles {
		out.Tiles[i] = append([]Fragment(nil), row...)
	}
	return &out
}

// Catalog is an immutable set of archetypes.
type Catalog struct {
	archetypes []*Archetype
	byID       map[string]*Archetype
}

// NewCatalog validates & copies the given archetypes into a Catalog.
// Any malformed archetype fails the whole catalog with ErrSchemaViolation.
func NewCatalog(archetypes ...*Archetype) (*Catalog, error) {
	c := &Catalog{
		archetypes: make([]*Archetype, 0, len(archetypes)),
		byID:       map[string]*Archetype{},
	}

	for i, a := range archetypes {
		if a == nil {
			return nil, errors.Wrapf(ErrSchemaViolation, "archetype %d is nil", i)
		}
		if err := a.validate(); err != nil {
			return nil, err
		}
		if _, ok := c.byID[a.ID]; ok {
			return nil, errors.Wrapf(ErrSchemaViolation, "archetype %s declared twice", a.ID)
		}

		cp := a.clone()
		c.archetypes = append(c.archetypes, cp)
		c.byID[cp.ID] = cp
	}

	return c, nil
}

// MustCatalog is NewCatalog for static tables known to be valid; it panics
// on error.
func MustCatalog(archetypes ...*Archetype) *Catalog {
	c, err := NewCatalog(archetypes...)
	if err != nil {
		panic(err)
	}
	return c
}

// Archetypes returns all archetypes in the order they were declared.
// The returned archetypes must not be modified.
func (c *Catalog) Archetypes() []*Archetype {
	out := make([]*Archetype, len(c.archetypes))
	copy(out, c.archetypes)
	return out
}

// Len returns the number of archetypes
func (c *Catalog) Len() int {
	return len(c.archetypes)
}

// Lookup returns the archetype with the given id
func (c *Catalog) Lookup(id string) (*Archetype, error) {
	a, ok := c.byID[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "archetype %q", id)
	}
	return a, nil
}

// sheetRect returns a width x height table of fragments from sheet, read
// from (col, row) as the top left.
func sheetRect(sheet string, col, row, width, height int) [][]Fragment {
	out := make([][]Fragment, height)
	for dy := 0; dy < height; dy++ {
		out[dy] = make([]Fragment, width)
		for dx := 0; dx < width; dx++ {
			out[dy][dx] = Fragment{Sheet: sheet, Col: col + dx, Row: row + dy}
		}
	}
	return out
}

// DefaultCatalog returns the built in archetypes, all drawn from the
// "buildings" sheet.
func DefaultCatalog() *Catalog {
	const sheet = "buildings"
	return MustCatalog(
		&Archetype{ID: "kiosk", Width: 1, Height: 1, Category: Commercial, Tiles: sheetRect(sheet, 0, 0, 1, 1)},
		&Archetype{ID: "house", Width: 2, Height: 2, Category: Residential, Tiles: sheetRect(sheet, 1, 0, 2, 2)},
		&Archetype{ID: "shop", Width: 3, Height: 2, Category: Commercial, Tiles: sheetRect(sheet, 3, 0, 3, 2)},
		&Archetype{ID: "tower", Width: 2, Height: 3, Category: Residential, Tiles: sheetRect(sheet, 6, 0, 2, 3)},
		&Archetype{ID: "office", Width: 3, Height: 3, Category: Civic, Tiles: sheetRect(sheet, 0, 3, 3, 3)},
		&Archetype{ID: "depot", Width: 4, Height: 2, Category: Industrial, Tiles: sheetRect(sheet, 3, 3, 4, 2)},
		&Archetype{ID: "park", Width: 4, Height: 3, Category: Leisure, Tiles: sheetRect(sheet, 0, 6, 4, 3)},
	)
}
