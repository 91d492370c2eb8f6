package citytiles

import (
	"image"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// subImager is met by all the stdlib image types gg.LoadPNG can return
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// SheetProvider is an AssetProvider reading sprite sheets from a directory.
// A fragment {Sheet: "ground", Col: 2, Row: 1} is the tileSize square at
// (2*tileSize, 1*tileSize) of <dir>/ground.png.
// Sheets are loaded on first use & kept; a SheetProvider is not safe for
// concurrent use.
type SheetProvider struct {
	dir      string
	tileSize int
	sheets   map[string]image.Image
	failed   map[string]error
}

// NewSheetProvider returns a provider for sheets in dir with tileSize pixel
// square fragments.
func NewSheetProvider(dir string, tileSize int) (*SheetProvider, error) {
	if tileSize < 1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "tile size %d must be at least 1", tileSize)
	}
	return &SheetProvider{
		dir:      dir,
		tileSize: tileSize,
		sheets:   map[string]image.Image{},
		failed:   map[string]error{},
	}, nil
}

// Fragment returns the image for ref, wrapping ErrMissingAsset if the sheet
// can't be read or ref lies outside it.
func (s *SheetProvider) Fragment(ref Fragment) (image.Image, error) {
	sheet, err := s.sheet(ref.Sheet)
	if err != nil {
		return nil, err
	}

	r := image.Rect(0, 0, s.tileSize, s.tileSize).Add(image.Pt(ref.Col*s.tileSize, ref.Row*s.tileSize))
	r = r.Add(sheet.Bounds().Min)
	if ref.Col < 0 || ref.Row < 0 || !r.In(sheet.Bounds()) {
		return nil, errors.Wrapf(ErrMissingAsset, "%s (%d,%d) outside sheet %v", ref.Sheet, ref.Col, ref.Row, sheet.Bounds())
	}

	sub, ok := sheet.(subImager)
	if !ok {
		return nil, errors.Wrapf(ErrMissingAsset, "sheet %s of type %T cannot be sliced", ref.Sheet, sheet)
	}
	return sub.SubImage(r), nil
}

// sheet returns the named sheet, loading it if needed. Failures are
// remembered so a missing file is only looked for once.
func (s *SheetProvider) sheet(name string) (image.Image, error) {
	if im, ok := s.sheets[name]; ok {
		return im, nil
	}
	if err, ok := s.failed[name]; ok {
		return nil, err
	}

	if name == "" || filepath.Base(name) != name {
		err := errors.Wrapf(ErrMissingAsset, "invalid sheet name %q", name)
		s.failed[name] = err
		return nil, err
	}

	im, err := gg.LoadPNG(filepath.Join(s.dir, name+".png"))
	if err != nil {
		err = errors.Wrapf(ErrMissingAsset, "sheet %s: %v", name, err)
		s.failed[name] = err
		return nil, err
	}

	s.sheets[name] = im
	return im, nil
}
