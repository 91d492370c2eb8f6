package citytiles

import (
	"sort"
)

// Category says roughly what an archetype is for. It has no effect on
// placement; it's carried through for stats & for picking placeholder
// colours when a building's artwork can't be found.
// Any string is a valid category, the constants are simply those we ship
// artwork & colours for.
type Category string

const (
	Residential = Category("residential") // houses, flats, towers
	Commercial  = Category("commercial")  // shops, kiosks, offices
	Civic       = Category("civic")       // town hall, police, library
	Industrial  = Category("industrial")  // workshops, depots, warehouses
	Leisure     = Category("leisure")     // parks, plazas, sports grounds
	Unknown     = Category("")            // no category given
)

var allCategories = []Category{
	Residential, Commercial, Civic, Industrial, Leisure,
}

// AllCategories returns the well known categories
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// known returns if c is one of our well known categories
func (c Category) known() bool {
	for _, k := range allCategories {
		if k == c {
			return true
		}
	}
	return false
}

// sortCategories puts categories in a stable order, well known first
func sortCategories(in []Category) {
	sort.SliceStable(in, func(a, b int) bool {
		ka, kb := in[a].known(), in[b].known()
		if ka != kb {
			return ka
		}
		return in[a] < in[b]
	})
}
