package citytiles

import (
	"github.com/pkg/errors"
)

// Config holds settings for generating a city.
type Config struct {
	// Size of the map in cells. Required, at most 65535 each.
	Width  int
	Height int

	// RoadSpacing is the distance between parallel roads. The first road
	// along each axis sits at RoadSpacing/2. Must be at least 1.
	RoadSpacing int

	// Attempts is how many random placement trials are run. Each trial
	// places at most one building, most are rejected.
	Attempts int

	// Seed for rng (random number chosen if not set)
	Seed int64
}

// DefaultConfig returns a config with default settings.
func DefaultConfig() *Config {
	return &Config{
		Width:       50,
		Height:      50,
		RoadSpacing: 12,
		Attempts:    500,
	}
}

// validate returns an error wrapping ErrInvalidConfig for unusable settings
func (c *Config) validate() error {
	if c.Width < 1 || c.Height < 1 {
		return errors.Wrapf(ErrInvalidConfig, "map size %dx%d must be at least 1x1", c.Width, c.Height)
	}
	if c.Width > maxEncodedDimension || c.Height > maxEncodedDimension {
		return errors.Wrapf(ErrInvalidConfig, "map size %dx%d exceeds %d", c.Width, c.Height, maxEncodedDimension)
	}
	if c.RoadSpacing < 1 {
		return errors.Wrapf(ErrInvalidConfig, "road spacing %d must be at least 1", c.RoadSpacing)
	}
	if c.Attempts < 0 {
		return errors.Wrapf(ErrInvalidConfig, "attempts %d cannot be negative", c.Attempts)
	}
	return nil
}
