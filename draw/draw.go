// Package draw provides shape and text helpers for composing test patterns
// and overlays on any mutable image.
package draw

import (
	"image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image
