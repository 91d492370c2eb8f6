package citytiles

import (
	"image"
)

// RNG is the source of randomness for building placement.
// *math/rand.Rand satisfies it; pass one built from a fixed seed to get the
// same city twice.
type RNG interface {
	// Intn returns a value in [0,n), n > 0
	Intn(n int) int
}

// AssetProvider supplies artwork for fragments. It's only needed to draw a
// city; generation & resolution never touch it.
type AssetProvider interface {
	// Fragment returns the square image for ref. If the sheet or region
	// isn't available the error should wrap ErrMissingAsset, the renderer
	// then draws a placeholder colour instead.
	Fragment(ref Fragment) (image.Image, error)
}
