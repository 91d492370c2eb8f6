package citytiles

import (
	"fmt"
)

// Kind tags what a Cell holds.
type Kind uint8

const (
	// Grass is the zero value; every grid starts as grass
	Grass Kind = iota
	Road
	Sidewalk
	Building
)

var kindNames = map[Kind]string{
	Grass:    "grass",
	Road:     "road",
	Sidewalk: "sidewalk",
	Building: "building",
}

// AllKinds returns every Kind a cell may hold
func AllKinds() []Kind {
	return []Kind{Grass, Road, Sidewalk, Building}
}

// GroundKinds returns the kinds that are not buildings
func GroundKinds() []Kind {
	return []Kind{Grass, Road, Sidewalk}
}

// String returns the lower case name of the kind
func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return name
}

// MarshalText lets kinds appear by name in JSON (including as map keys)
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown cell kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText is the inverse of MarshalText
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, ok := parseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown cell kind %q", string(text))
	}
	*k = parsed
	return nil
}

func parseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return Grass, false
}

// valid returns if k is one of our known kinds
func (k Kind) valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Marker records which building covers a cell & where in that building's
// footprint the cell sits.
type Marker struct {
	Archetype string
	DX        int
	DY        int
}

// Cell is the state of one grid square. Marker is only meaningful when
// Kind is Building; ground cells always carry the zero Marker so cells can
// be compared with ==.
type Cell struct {
	Kind   Kind
	Marker Marker
}

// GroundCell returns a cell of the given ground kind.
// Passing Building yields a building cell with an empty marker, which no
// catalog will resolve; use BuildingCell for those.
func GroundCell(k Kind) Cell {
	return Cell{Kind: k}
}

// BuildingCell returns a cell covered by archetype id at local offset (dx, dy)
func BuildingCell(id string, dx, dy int) Cell {
	return Cell{Kind: Building, Marker: Marker{Archetype: id, DX: dx, DY: dy}}
}

// IsBuilding returns if the cell is covered by a building
func (c Cell) IsBuilding() bool {
	return c.Kind == Building
}

// IsStreet returns if the cell is road or sidewalk
func (c Cell) IsStreet() bool {
	return c.Kind == Road || c.Kind == Sidewalk
}

// String is mostly for test output
func (c Cell) String() string {
	if c.Kind != Building {
		return c.Kind.String()
	}
	return fmt.Sprintf("%s(%s+%d,%d)", c.Kind, c.Marker.Archetype, c.Marker.DX, c.Marker.DY)
}
