package citytiles

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestNewCatalogSchemaViolations(t *testing.T) {
	good := func() *Archetype {
		return &Archetype{ID: "house", Width: 2, Height: 1, Tiles: sheetRect("b", 0, 0, 2, 1)}
	}

	tests := []struct {
		name        string
		archetypes  []*Archetype
		errContains string
	}{
		{
			name:        "empty id",
			archetypes:  []*Archetype{{Width: 1, Height: 1, Tiles: sheetRect("b", 0, 0, 1, 1)}},
			errContains: "id cannot be empty",
		},
		{
			name:        "zero width",
			archetypes:  []*Archetype{{ID: "a", Width: 0, Height: 1, Tiles: [][]Fragment{{}}}},
			errContains: "at least 1x1",
		},
		{
			name:        "too few rows",
			archetypes:  []*Archetype{{ID: "a", Width: 2, Height: 2, Tiles: sheetRect("b", 0, 0, 2, 1)}},
			errContains: "tile rows",
		},
		{
			name:        "short row",
			archetypes:  []*Archetype{{ID: "a", Width: 2, Height: 2, Tiles: [][]Fragment{{{}, {}}, {{}}}}},
			errContains: "row 1 has 1 fragments",
		},
		{
			name:        "long row",
			archetypes:  []*Archetype{{ID: "a", Width: 1, Height: 1, Tiles: [][]Fragment{{{}, {}}}}},
			errContains: "row 0 has 2 fragments",
		},
		{
			name:        "duplicate id",
			archetypes:  []*Archetype{good(), good()},
			errContains: "declared twice",
		},
		{
			name:        "nil archetype",
			archetypes:  []*Archetype{good(), nil},
			errContains: "is nil",
		},
		{
			name:        "huge footprint",
			archetypes:  []*Archetype{{ID: "a", Width: 256, Height: 1, Tiles: sheetRect("b", 0, 0, 256, 1)}},
			errContains: "exceeds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := NewCatalog(tt.archetypes...)
			if !errors.Is(err, ErrSchemaViolation) {
				t.Fatalf("expected ErrSchemaViolation, got %v", err)
			}
			if cat != nil {
				t.Error("expected no catalog on error")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
			}
		})
	}
}

func TestCatalogLookup(t *testing.T) {
	cat := DefaultCatalog()

	a, err := cat.Lookup("office")
	if err != nil {
		t.Fatal(err)
	}
	if a.Width != 3 || a.Height != 3 {
		t.Errorf("expected office to be 3x3, got %dx%d", a.Width, a.Height)
	}

	_, err = cat.Lookup("castle")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogKeepsDeclarationOrder(t *testing.T) {
	cat := MustCatalog(
		&Archetype{ID: "b", Width: 1, Height: 1, Tiles: sheetRect("s", 0, 0, 1, 1)},
		&Archetype{ID: "a", Width: 1, Height: 1, Tiles: sheetRect("s", 1, 0, 1, 1)},
	)
	all := cat.Archetypes()
	if len(all) != 2 || all[0].ID != "b" || all[1].ID != "a" {
		t.Fatalf("expected [b a], got %v", all)
	}
	if cat.Len() != 2 {
		t.Errorf("expected Len 2, got %d", cat.Len())
	}
}

func TestCatalogCopiesInput(t *testing.T) {
	in := &Archetype{ID: "a", Width: 1, Height: 1, Tiles: sheetRect("s", 0, 0, 1, 1)}
	cat := MustCatalog(in)

	in.Tiles[0][0] = Fragment{Sheet: "changed"}
	in.Width = 9

	a, err := cat.Lookup("a")
	if err != nil {
		t.Fatal(err)
	}
	if a.Width != 1 || a.Tiles[0][0].Sheet != "s" {
		t.Errorf("catalog changed with its input: %+v", a)
	}
}

func TestArchetypeFragment(t *testing.T) {
	a := &Archetype{ID: "shop", Width: 3, Height: 2, Tiles: sheetRect("b", 3, 0, 3, 2)}

	f, err := a.Fragment(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if f != (Fragment{Sheet: "b", Col: 5, Row: 1}) {
		t.Errorf("unexpected fragment %+v", f)
	}

	if _, err := a.Fragment(3, 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for offset outside footprint, got %v", err)
	}
}

func TestMustCatalogPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustCatalog(&Archetype{ID: "bad", Width: 2, Height: 2})
}
