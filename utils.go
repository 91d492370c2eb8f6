package citytiles

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// savePNG to disk
func savePNG(fpath string, in image.Image) error {
	return errors.Wrapf(gg.SavePNG(fpath, in), "writing %s", fpath)
}

// maxint returns the highest of two ints
func maxint(a, b int) int {
	if a > b {
		return a
	}
	return b
}
