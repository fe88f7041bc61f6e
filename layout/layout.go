// Package layout composes one or more source images into a screen-sized
// raster ready for pixel encoding.
//
// Exactly one layout is active per render session. Each layout has a fixed
// source image count; composing with any other count is a precondition
// failure, not a recoverable state.
package layout

import (
	"fmt"
	"image"

	"github.com/BeatGlow/fbrender/pixel"
)

// Layout arranges source images onto a raster of the given screen size.
type Layout interface {
	// ImageCount is the number of source images the layout requires.
	ImageCount() int

	// Compose builds a screen-sized raster from the source images.
	Compose(images []image.Image, size image.Point) (*pixel.RGBImage, error)
}

// PreconditionError is returned when the number of source images does not
// match the layout's requirement.
type PreconditionError struct {
	Layout string
	Want   int
	Got    int
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("layout: %s layout wants %d images, got %d", e.Layout, e.Want, e.Got)
}

func check(name string, want int, images []image.Image) error {
	if len(images) != want {
		return &PreconditionError{Layout: name, Want: want, Got: len(images)}
	}
	return nil
}

// FullScreen stretches a single image to exactly the screen size. The
// aspect ratio is not preserved.
type FullScreen struct{}

func (FullScreen) ImageCount() int { return 1 }

func (FullScreen) Compose(images []image.Image, size image.Point) (*pixel.RGBImage, error) {
	if err := check("fullscreen", 1, images); err != nil {
		return nil, err
	}

	frame := pixel.NewRGBImage(size.X, size.Y)
	scaleTo(frame, frame.Bounds(), images[0])
	return frame, nil
}

// Dual shows the same image twice, side by side. The image is resized once
// to half the screen width, preserving its aspect ratio; if the resized
// height exceeds the screen the bottom is clipped by the canvas bounds.
type Dual struct{}

func (Dual) ImageCount() int { return 1 }

func (Dual) Compose(images []image.Image, size image.Point) (*pixel.RGBImage, error) {
	if err := check("dual", 1, images); err != nil {
		return nil, err
	}

	var (
		src  = images[0]
		sb   = src.Bounds()
		newW = size.X / 2
		newH = newW * sb.Dy() / sb.Dx()
		half = resize(src, newW, newH)
	)
	frame := pixel.NewRGBImage(size.X, size.Y)
	paste(frame, half, image.Pt(0, 0))
	paste(frame, half, image.Pt(newW, 0))
	return frame, nil
}
