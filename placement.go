package citytiles

import (
	"image"
)

// placer runs placement trials against a grid. Every trial is a single
// accept / reject; rejections leave the grid untouched.
type placer struct {
	grid       *Grid
	archetypes []*Archetype
	rng        RNG
}

func newPlacer(g *Grid, cat *Catalog, rng RNG) *placer {
	return &placer{
		grid:       g,
		archetypes: cat.Archetypes(),
		rng:        rng,
	}
}

// PlaceBuildings runs up to `attempts` trials, each drawing a random anchor &
// archetype & placing the building if it fits, and returns how many buildings
// were placed. Running out of attempts is the normal way this ends.
func PlaceBuildings(g *Grid, cat *Catalog, attempts int, rng RNG) int {
	return len(newPlacer(g, cat, rng).run(attempts))
}

// run performs the trials, returning the buildings placed in order.
func (p *placer) run(attempts int) []*Building {
	placed := []*Building{}
	if attempts <= 0 || len(p.archetypes) == 0 || p.grid.width == 0 || p.grid.height == 0 {
		return placed
	}

	for i := 0; i < attempts; i++ {
		b, ok := p.try()
		if ok {
			placed = append(placed, b)
		}
	}
	return placed
}

// try draws x, y then an archetype (always in that order so seeded runs
// repeat exactly) & commits the building if it passes every check.
func (p *placer) try() (*Building, bool) {
	x := p.rng.Intn(p.grid.width)
	y := p.rng.Intn(p.grid.height)
	a := p.archetypes[p.rng.Intn(len(p.archetypes))]

	if !p.canPlace(x, y, a) {
		return nil, false
	}

	area := a.Size().Add(image.Pt(x, y))
	ring := p.padded(area)
	if !p.hasClearance(ring) || !p.facesStreet(ring) {
		return nil, false
	}

	p.commit(x, y, a)
	return &Building{ID: a.ID, Category: a.Category, Area: area}, true
}

// canPlace returns if archetype a anchored at (ox, oy) lies within the grid &
// covers only grass.
func (p *placer) canPlace(ox, oy int, a *Archetype) bool {
	area := a.Size().Add(image.Pt(ox, oy))
	if !area.In(p.grid.Bounds()) {
		return false
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if p.grid.at(x, y).Kind != Grass {
				return false
			}
		}
	}
	return true
}

// padded grows area by one cell on every side, clipped to the grid
func (p *placer) padded(area image.Rectangle) image.Rectangle {
	return area.Inset(-1).Intersect(p.grid.Bounds())
}

// hasClearance returns if no cell in area is a building, keeping at least
// one cell between any two buildings. Streets may touch buildings.
func (p *placer) hasClearance(area image.Rectangle) bool {
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if p.grid.at(x, y).IsBuilding() {
				return false
			}
		}
	}
	return true
}

// facesStreet returns if any cell in area is road or sidewalk
func (p *placer) facesStreet(area image.Rectangle) bool {
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if p.grid.at(x, y).IsStreet() {
				return true
			}
		}
	}
	return false
}

// commit marks every cell of the footprint with its offset in a
func (p *placer) commit(ox, oy int, a *Archetype) {
	for dy := 0; dy < a.Height; dy++ {
		for dx := 0; dx < a.Width; dx++ {
			p.grid.set(ox+dx, oy+dy, BuildingCell(a.ID, dx, dy))
		}
	}
}
