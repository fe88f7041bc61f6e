package draw

import (
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// DefaultFontSize is the point size used by [Label].
const DefaultFontSize = 24

var regular struct {
	sync.Once
	face font.Face
	err  error
}

// regularFace returns a shared face built from the bundled Go Regular font.
func regularFace() (font.Face, error) {
	regular.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			regular.err = err
			return
		}
		regular.face = truetype.NewFace(f, &truetype.Options{
			Size: DefaultFontSize,
			DPI:  72,
		})
	})
	return regular.face, regular.err
}

// Label draws text onto dst with the baseline starting at p.
func Label(dst Image, p image.Point, c color.Color, text string) error {
	face, err := regularFace()
	if err != nil {
		return err
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(p.X, p.Y),
	}
	d.DrawString(text)
	return nil
}

// LabelWidth measures the advance of text as drawn by [Label], in pixels.
func LabelWidth(text string) (int, error) {
	face, err := regularFace()
	if err != nil {
		return 0, err
	}
	return font.MeasureString(face, text).Ceil(), nil
}
