package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestRGBImage(t *testing.T) {
	testCases := []image.Point{
		{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(256, 32),
		image.Pt(640, 480),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := NewRGBImage(test.X, test.Y)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}
			if v := i.ColorModel(); v != RGBModel {
				it.Errorf("expected color model %T, got %T", RGBModel, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := RGBModel.Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, i.At(x, y), v)
							return
						}
					}
				}
			})

			it.Run("out-of-bounds", func(itt *testing.T) {
				i.Set(-1, -1, RGB{R: 255})
				i.Set(test.X, test.Y, RGB{R: 255})
				if v := i.At(-1, -1); v != color.Transparent {
					itt.Errorf("expected transparent outside bounds, got %#+v", v)
				}
			})
		})
	}
}

func TestRGBImageBlack(t *testing.T) {
	i := NewRGBImage(16, 16)
	for _, b := range i.Pix {
		if b != 0 {
			t.Fatal("expected a new image to be solid black")
		}
	}
}

func TestRGBImageFill(t *testing.T) {
	i := NewRGBImage(8, 8)
	i.Fill(RGB{R: 0x10, G: 0x20, B: 0x30})
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if v := i.At(x, y); v != (RGB{R: 0x10, G: 0x20, B: 0x30}) {
				t.Fatalf("pixel (%d,%d) is %#+v after fill", x, y, v)
			}
		}
	}

	i.Clear()
	if v := i.At(3, 3); v != (RGB{}) {
		t.Errorf("expected black after clear, got %#+v", v)
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(256)),
		G: uint8(rand.Intn(256)),
		B: uint8(rand.Intn(256)),
		A: 0xff,
	}
}
