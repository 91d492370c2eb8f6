package citytiles

import (
	"image"
)

// CityStats holds generic stats about the city
type CityStats struct {
	// trials run & buildings they placed
	Attempts int
	Placed   int

	// Count of buildings by archetype id & by category
	BuildingsByID       map[string]int
	BuildingsByCategory map[Category]int `json:",omitempty"`

	// Count of cells of each kind
	Cells map[Kind]int
}

// newCityStats returns blank CityStats
func newCityStats() *CityStats {
	return &CityStats{
		BuildingsByID:       map[string]int{},
		BuildingsByCategory: map[Category]int{},
		Cells:               map[Kind]int{},
	}
}

// addBuilding counts b
func (s *CityStats) addBuilding(b *Building) {
	s.Placed++
	s.BuildingsByID[b.ID]++
	if b.Category != Unknown {
		s.BuildingsByCategory[b.Category]++
	}
}

// countCells records the number of cells of each kind in g
func (s *CityStats) countCells(g *Grid) {
	for _, k := range AllKinds() {
		s.Cells[k] = g.Count(k)
	}
}

// Categories returns the categories with at least one building, well known
// categories first.
func (s *CityStats) Categories() []Category {
	out := []Category{}
	for c, n := range s.BuildingsByCategory {
		if n > 0 {
			out = append(out, c)
		}
	}
	sortCategories(out)
	return out
}

// Building is one placed building.
// The ID is the archetype's ID & the Area is the same size as its footprint
// (naturally Area.Min is unique & is the top left corner of the building).
type Building struct {
	ID       string
	Category Category `json:",omitempty"`
	Area     image.Rectangle
}
