package citytiles

import (
	"github.com/pkg/errors"
)

// GroundTiles maps each ground kind to the fragment drawn for it.
type GroundTiles map[Kind]Fragment

// DefaultGroundTiles returns grass, road & sidewalk as the first three
// columns of the "ground" sheet.
func DefaultGroundTiles() GroundTiles {
	return GroundTiles{
		Grass:    {Sheet: "ground", Col: 0, Row: 0},
		Road:     {Sheet: "ground", Col: 1, Row: 0},
		Sidewalk: {Sheet: "ground", Col: 2, Row: 0},
	}
}

// validate ensures every ground kind has a fragment
func (t GroundTiles) validate() error {
	for _, k := range GroundKinds() {
		if _, ok := t[k]; !ok {
			return errors.Wrapf(ErrSchemaViolation, "no fragment for ground kind %s", k)
		}
	}
	for k := range t {
		if k == Building || !k.valid() {
			return errors.Wrapf(ErrSchemaViolation, "ground tiles cannot map %s", k)
		}
	}
	return nil
}

// Resolver turns grid coordinates into the fragment to draw there.
type Resolver struct {
	grid    *Grid
	catalog *Catalog
	ground  GroundTiles
}

// NewResolver returns a resolver over a finished grid. The catalog must be
// the one the grid was populated from.
func NewResolver(g *Grid, cat *Catalog, ground GroundTiles) (*Resolver, error) {
	if err := ground.validate(); err != nil {
		return nil, err
	}

	own := GroundTiles{}
	for k, f := range ground {
		own[k] = f
	}

	return &Resolver{grid: g, catalog: cat, ground: own}, nil
}

// Resolve returns the fragment for the cell at x,y.
// Building cells resolve to the archetype's fragment at the cell's own offset,
// so each cell of a multi cell building gets its own piece of the artwork.
func (r *Resolver) Resolve(x, y int) (Fragment, error) {
	c, err := r.grid.Get(x, y)
	if err != nil {
		return Fragment{}, err
	}
	return r.resolveCell(c)
}

func (r *Resolver) resolveCell(c Cell) (Fragment, error) {
	if c.Kind != Building {
		f, ok := r.ground[c.Kind]
		if !ok { // validate() guarantees this can't happen for known kinds
			return Fragment{}, errors.Wrapf(ErrNotFound, "ground kind %s", c.Kind)
		}
		return f, nil
	}

	a, err := r.catalog.Lookup(c.Marker.Archetype)
	if err != nil {
		return Fragment{}, err
	}
	return a.Fragment(c.Marker.DX, c.Marker.DY)
}
