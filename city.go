package citytiles

import (
	"encoding/json"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

var (
	// ErrOutOfBounds is returned for coordinates outside the grid
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrNotFound is returned for an archetype id the catalog doesn't hold.
	// From a generated city this means the grid & catalog don't belong together.
	ErrNotFound = errors.New("not found")

	// ErrMissingAsset is returned by an AssetProvider that can't supply a fragment
	ErrMissingAsset = errors.New("missing asset")

	// ErrSchemaViolation is returned when a catalog or tileset is malformed,
	// eg. an archetype whose tiles don't match its footprint.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrInvalidConfig is returned for unusable Config values
	ErrInvalidConfig = errors.New("invalid config")
)

// City is a generated map. Generation happens entirely in New, after which
// a City is only read from.
type City struct {
	cfg      *Config
	catalog  *Catalog
	grid     *Grid
	resolver *Resolver
	rng      *rand.Rand

	Width     int
	Height    int
	Seed      int64
	Buildings []*Building `json:",omitempty"`
	Stats     *CityStats
}

// New generates a city: lays out streets, then places buildings from cat.
// ground gives the fragments for grass, road & sidewalk cells, nil uses
// DefaultGroundTiles.
func New(cfg *Config, cat *Catalog, ground GroundTiles) (*City, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cat == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "catalog is required")
	}
	if ground == nil {
		ground = DefaultGroundTiles()
	}
	own := *cfg
	c := &City{cfg: &own, catalog: cat}
	return c, c.build(ground)
}

// build runs generation. Order matters: placement only accepts buildings
// facing streets, so the layout must be complete first.
func (c *City) build(ground GroundTiles) error {
	err := c.init()
	if err != nil {
		return err
	}

	c.grid = Layout(c.cfg.Width, c.cfg.Height, c.cfg.RoadSpacing)
	log.Debug("laid out streets", "width", c.cfg.Width, "height", c.cfg.Height, "spacing", c.cfg.RoadSpacing,
		"roads", c.grid.Count(Road), "sidewalks", c.grid.Count(Sidewalk))

	c.Buildings = newPlacer(c.grid, c.catalog, c.rng).run(c.cfg.Attempts)
	c.Stats.Attempts = c.cfg.Attempts
	for _, b := range c.Buildings {
		c.Stats.addBuilding(b)
	}
	c.Stats.countCells(c.grid)
	log.Debug("placed buildings", "placed", c.Stats.Placed, "attempts", c.cfg.Attempts, "seed", c.Seed)

	c.resolver, err = NewResolver(c.grid, c.catalog, ground)
	return err
}

// init validates config & sets up our rng.
func (c *City) init() error {
	err := c.cfg.validate()
	if err != nil {
		return err
	}

	if c.cfg.Seed == 0 {
		c.cfg.Seed = time.Now().UnixNano()
	}
	c.Seed = c.cfg.Seed
	c.rng = rand.New(rand.NewSource(c.cfg.Seed))

	c.Width = c.cfg.Width
	c.Height = c.cfg.Height
	c.Stats = newCityStats()
	c.Buildings = []*Building{}

	return nil
}

// Resolve returns the fragment to draw at x,y
func (c *City) Resolve(x, y int) (Fragment, error) {
	return c.resolver.Resolve(x, y)
}

// Cell returns the cell at x,y
func (c *City) Cell(x, y int) (Cell, error) {
	return c.grid.Get(x, y)
}

// Grid returns a copy of the city's grid
func (c *City) Grid() *Grid {
	return c.grid.Clone()
}

// Catalog returns the catalog the city was built from
func (c *City) Catalog() *Catalog {
	return c.catalog
}

// MarshalBinary returns the encoded grid (see Grid.MarshalBinary)
func (c *City) MarshalBinary() ([]byte, error) {
	return c.grid.MarshalBinary()
}

// JSON returns the city summary (size, seed, buildings, stats) as json.
func (c *City) JSON() ([]byte, error) {
	return json.Marshal(c)
}

// SaveJSON writes a json file to the given path.
func (c *City) SaveJSON(fpath string) error {
	data, err := c.JSON()
	if err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(fpath, data, 0644), "writing %s", fpath)
}
