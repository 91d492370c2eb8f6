package citytiles

import (
	"testing"

	"github.com/pkg/errors"
)

func TestResolveGround(t *testing.T) {
	g := Layout(12, 12, 12)
	r, err := NewResolver(g, DefaultCatalog(), DefaultGroundTiles())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		x, y int
		want Fragment
	}{
		{0, 0, Fragment{Sheet: "ground", Col: 0}},
		{6, 0, Fragment{Sheet: "ground", Col: 1}},
		{5, 0, Fragment{Sheet: "ground", Col: 2}},
	}
	for _, tt := range tests {
		got, err := r.Resolve(tt.x, tt.y)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("(%d,%d): expected %+v, got %+v", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestResolveBuildingOffsets(t *testing.T) {
	g := Layout(10, 10, 12)
	cat := MustCatalog(&Archetype{
		ID:     "shop",
		Width:  3,
		Height: 2,
		Tiles: [][]Fragment{
			{{"s", 0, 0}, {"s", 1, 0}, {"s", 2, 0}},
			{{"s", 0, 1}, {"s", 1, 1}, {"s", 2, 1}},
		},
	})
	if placed := PlaceBuildings(g, cat, 1, &scriptedRNG{values: []int{2, 3, 0}}); placed != 1 {
		t.Fatalf("expected shop to be placed, got %d", placed)
	}

	r, err := NewResolver(g, cat, DefaultGroundTiles())
	if err != nil {
		t.Fatal(err)
	}
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 3; dx++ {
			got, err := r.Resolve(2+dx, 3+dy)
			if err != nil {
				t.Fatal(err)
			}
			if want := (Fragment{Sheet: "s", Col: dx, Row: dy}); got != want {
				t.Errorf("offset (%d,%d): expected %+v, got %+v", dx, dy, want, got)
			}
		}
	}
}

func TestResolveErrors(t *testing.T) {
	g := NewGrid(3, 3)
	g.set(0, 0, BuildingCell("castle", 0, 0))
	g.set(1, 1, BuildingCell("kiosk", 2, 0))

	r, err := NewResolver(g, DefaultCatalog(), DefaultGroundTiles())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := r.Resolve(3, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := r.Resolve(0, -1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := r.Resolve(0, 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown archetype, got %v", err)
	}
	if _, err := r.Resolve(1, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for offset outside footprint, got %v", err)
	}
}

func TestNewResolverNeedsAllGroundKinds(t *testing.T) {
	g := NewGrid(1, 1)

	partial := DefaultGroundTiles()
	delete(partial, Sidewalk)
	if _, err := NewResolver(g, DefaultCatalog(), partial); !errors.Is(err, ErrSchemaViolation) {
		t.Errorf("expected ErrSchemaViolation without sidewalk, got %v", err)
	}

	extra := DefaultGroundTiles()
	extra[Building] = Fragment{Sheet: "x"}
	if _, err := NewResolver(g, DefaultCatalog(), extra); !errors.Is(err, ErrSchemaViolation) {
		t.Errorf("expected ErrSchemaViolation with a building ground tile, got %v", err)
	}
}

func TestResolverCopiesGroundTiles(t *testing.T) {
	g := NewGrid(1, 1)
	ground := DefaultGroundTiles()
	r, err := NewResolver(g, DefaultCatalog(), ground)
	if err != nil {
		t.Fatal(err)
	}
	ground[Grass] = Fragment{Sheet: "changed"}

	got, err := r.Resolve(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got.Sheet != "ground" {
		t.Errorf("resolver changed with its input, got %+v", got)
	}
}
