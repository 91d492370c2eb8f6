package citytiles

import (
	"image"

	"github.com/pkg/errors"
)

// Grid is a fixed size map of cells, indexed [0,width) x [0,height).
// It's owned by the generation pipeline until generation finishes & read only
// after that; it does no locking of its own.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid returns a grid of the given size with every cell set to grass.
// Negative dimensions are treated as 0.
func NewGrid(width, height int) *Grid {
	width = maxint(width, 0)
	height = maxint(height, 0)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Dimensions returns width, height
func (g *Grid) Dimensions() (int, int) {
	return g.width, g.height
}

// Bounds returns the grid area as a rectangle from (0,0)
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// InBounds returns if x,y is a valid cell
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at x,y
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Cell{}, errors.Wrapf(ErrOutOfBounds, "(%d,%d) outside %dx%d", x, y, g.width, g.height)
	}
	return g.cells[g.index(x, y)], nil
}

// Set writes the cell at x,y
func (g *Grid) Set(x, y int, c Cell) error {
	if !g.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "(%d,%d) outside %dx%d", x, y, g.width, g.height)
	}
	g.cells[g.index(x, y)] = c
	return nil
}

// at is Get for callers that have already bounds checked
func (g *Grid) at(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// set is Set for callers that have already bounds checked
func (g *Grid) set(x, y int, c Cell) {
	g.cells[g.index(x, y)] = c
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Count returns the number of cells of the given kind
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, c := range g.cells {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Clone returns a deep copy
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal returns if both grids are the same size & hold the same cells
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
