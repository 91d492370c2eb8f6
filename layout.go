package citytiles

import (
	"image"

	"github.com/voidshard/citytiles/internal/line"

	"github.com/boljen/go-bitmap"
)

// Layout returns a width x height grid holding the street skeleton: grass
// everywhere, full length roads every `spacing` columns & rows (starting at
// spacing/2) & sidewalks on the grass either side of them.
// The result depends only on the arguments. A spacing below 1 lays no roads.
func Layout(width, height, spacing int) *Grid {
	g := NewGrid(width, height)
	layRoads(g, spacing)
	laySidewalks(g)
	return g
}

// roadOffsets returns the positions of roads along an axis of length n
func roadOffsets(n, spacing int) []int {
	out := []int{}
	if spacing < 1 {
		return out
	}
	for i := spacing / 2; i < n; i += spacing {
		out = append(out, i)
	}
	return out
}

// layRoads draws vertical then horizontal roads across the whole grid
func layRoads(g *Grid, spacing int) {
	if g.width == 0 || g.height == 0 {
		return
	}

	road := GroundCell(Road)
	plot := func(p image.Point) {
		g.set(p.X, p.Y, road)
	}

	for _, x := range roadOffsets(g.width, spacing) {
		line.Walk(image.Pt(x, 0), image.Pt(x, g.height-1), plot)
	}
	for _, y := range roadOffsets(g.height, spacing) {
		line.Walk(image.Pt(0, y), image.Pt(g.width-1, y), plot)
	}
}

// laySidewalks turns grass next to (up, down, left, right) a road into
// sidewalk. Roads are read from a bitmap taken before any conversion so a
// new sidewalk never triggers further sidewalks.
func laySidewalks(g *Grid) {
	roads := bitmap.New(len(g.cells))
	for i, c := range g.cells {
		if c.Kind == Road {
			roads.Set(i, true)
		}
	}

	sidewalk := GroundCell(Sidewalk)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !roads.Get(g.index(x, y)) {
				continue
			}
			for _, n := range orthogonal(x, y) {
				if !g.InBounds(n.X, n.Y) {
					continue
				}
				if g.at(n.X, n.Y).Kind == Grass {
					g.set(n.X, n.Y, sidewalk)
				}
			}
		}
	}
}

// orthogonal returns the four neighbours of x,y (which may be out of bounds)
func orthogonal(x, y int) [4]image.Point {
	return [4]image.Point{
		image.Pt(x, y-1),
		image.Pt(x, y+1),
		image.Pt(x-1, y),
		image.Pt(x+1, y),
	}
}
