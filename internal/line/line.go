package line

import (
	"image"
)

// Walk calls fn for every integer point on the line a -> b, both ends included,
// in order starting at a.
// Derived from github.com/StephaneBunel/bresenham, reworked to step in any
// direction so callers get points in drawing order.
func Walk(a, b image.Point, fn func(p image.Point)) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)

	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	e := dx + dy
	x, y := a.X, a.Y
	for {
		fn(image.Pt(x, y))
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// PointsBetween returns all points on a line between a,b
func PointsBetween(a, b image.Point) []image.Point {
	pts := []image.Point{}
	Walk(a, b, func(p image.Point) {
		pts = append(pts, p)
	})
	return pts
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
