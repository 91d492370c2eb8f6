package line

import (
	"image"
	"testing"
)

func TestPointsBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b image.Point
		want []image.Point
	}{
		{
			name: "single point",
			a:    image.Pt(2, 2),
			b:    image.Pt(2, 2),
			want: []image.Point{image.Pt(2, 2)},
		},
		{
			name: "vertical",
			a:    image.Pt(6, 0),
			b:    image.Pt(6, 3),
			want: []image.Point{image.Pt(6, 0), image.Pt(6, 1), image.Pt(6, 2), image.Pt(6, 3)},
		},
		{
			name: "horizontal reversed",
			a:    image.Pt(3, 1),
			b:    image.Pt(0, 1),
			want: []image.Point{image.Pt(3, 1), image.Pt(2, 1), image.Pt(1, 1), image.Pt(0, 1)},
		},
		{
			name: "diagonal",
			a:    image.Pt(0, 0),
			b:    image.Pt(2, 2),
			want: []image.Point{image.Pt(0, 0), image.Pt(1, 1), image.Pt(2, 2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointsBetween(tt.a, tt.b)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d points, got %d: %v", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("point %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestWalkShallowLineIsContiguous(t *testing.T) {
	pts := PointsBetween(image.Pt(0, 0), image.Pt(9, 3))
	if pts[0] != image.Pt(0, 0) || pts[len(pts)-1] != image.Pt(9, 3) {
		t.Fatalf("line should start & end on the given points, got %v", pts)
	}
	if len(pts) != 10 {
		t.Fatalf("expected one point per column, got %d", len(pts))
	}
	for i := 1; i < len(pts); i++ {
		if abs(pts[i].X-pts[i-1].X) > 1 || abs(pts[i].Y-pts[i-1].Y) > 1 {
			t.Errorf("gap between %v and %v", pts[i-1], pts[i])
		}
	}
}
