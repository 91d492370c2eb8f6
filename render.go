package citytiles

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// ColourScheme defines the placeholder colours drawn when a fragment's
// artwork is missing.
type ColourScheme struct {
	Grass     color.Color
	Roads     color.Color
	Sidewalks color.Color

	// Buildings is used for categories not in Categories
	Buildings  color.Color
	Categories map[Category]color.Color
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Grass:     colornames.Forestgreen,
		Roads:     colornames.Dimgray,
		Sidewalks: colornames.Lightgray,
		Buildings: colornames.Black,
		Categories: map[Category]color.Color{
			Residential: colornames.Steelblue,
			Commercial:  colornames.Hotpink,
			Civic:       colornames.Indigo,
			Industrial:  colornames.Firebrick,
			Leisure:     colornames.Lightgreen,
		},
	}
}

// placeholder returns the colour for a cell whose artwork is missing
func (s *ColourScheme) placeholder(c Cell, cat *Catalog) color.Color {
	switch c.Kind {
	case Grass:
		return s.Grass
	case Road:
		return s.Roads
	case Sidewalk:
		return s.Sidewalks
	}

	a, err := cat.Lookup(c.Marker.Archetype)
	if err != nil {
		return s.Buildings
	}
	col, ok := s.Categories[a.Category]
	if !ok {
		return s.Buildings
	}
	return col
}

// Image draws the city with tileSize pixel square cells.
// Fragments the provider can't supply (ErrMissingAsset) are drawn as flat
// placeholder colours from scheme; any other error is returned. A nil
// provider draws placeholders only, a nil scheme uses DefaultScheme.
func (c *City) Image(provider AssetProvider, scheme *ColourScheme, tileSize int) (image.Image, error) {
	if tileSize < 1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "tile size %d must be at least 1", tileSize)
	}
	if scheme == nil {
		scheme = DefaultScheme()
	}

	ctx := gg.NewContext(c.Width*tileSize, c.Height*tileSize)

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			ref, err := c.Resolve(x, y)
			if err != nil {
				return nil, err
			}

			if provider != nil {
				im, err := provider.Fragment(ref)
				if err == nil {
					drawFragment(ctx, im, x*tileSize, y*tileSize, tileSize)
					continue
				}
				if !errors.Is(err, ErrMissingAsset) {
					return nil, errors.Wrapf(err, "fragment for (%d,%d)", x, y)
				}
			}

			ctx.SetColor(scheme.placeholder(c.grid.at(x, y), c.catalog))
			ctx.DrawRectangle(float64(x*tileSize), float64(y*tileSize), float64(tileSize), float64(tileSize))
			ctx.Fill()
		}
	}

	return ctx.Image(), nil
}

// drawFragment copies im into the tileSize square at px,py. Fragments of a
// different size are drawn from their top left & clipped.
func drawFragment(ctx *gg.Context, im image.Image, px, py, tileSize int) {
	dst, ok := ctx.Image().(draw.Image)
	if !ok {
		ctx.DrawImage(im, px, py)
		return
	}
	r := image.Rect(px, py, px+tileSize, py+tileSize)
	draw.Draw(dst, r, im, im.Bounds().Min, draw.Src)
}

// SavePNG draws the city (see Image) & writes it to fpath as a PNG.
func (c *City) SavePNG(fpath string, provider AssetProvider, scheme *ColourScheme, tileSize int) error {
	im, err := c.Image(provider, scheme, tileSize)
	if err != nil {
		return err
	}
	return savePNG(fpath, im)
}
