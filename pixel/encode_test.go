package pixel

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/BeatGlow/fbrender/fbdev"
)

func geom32(redOffset, blueOffset uint32) fbdev.Geometry {
	return fbdev.Geometry{
		Width:        4,
		Height:       2,
		BitsPerPixel: 32,
		Red:          fbdev.Channel{Offset: redOffset, Length: 8},
		Green:        fbdev.Channel{Offset: 8, Length: 8},
		Blue:         fbdev.Channel{Offset: blueOffset, Length: 8},
		Alpha:        fbdev.Channel{Offset: 24, Length: 8},
	}
}

func testFrame(w, h int) *RGBImage {
	frame := NewRGBImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			frame.Set(x, y, RGB{
				R: uint8(10 + x + y*16),
				G: uint8(100 + x),
				B: uint8(200 + y),
			})
		}
	}
	return frame
}

func TestEncode32BGR(t *testing.T) {
	// Blue channel at bit offset 0 means the device wants BGR byte order.
	frame := testFrame(4, 2)
	buf, err := Encode(frame, geom32(16, 0))
	if err != nil {
		t.Fatal(err)
	}
	if want := 4 * 2 * 4; len(buf) != want {
		t.Fatalf("expected %d bytes, got %d", want, len(buf))
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			var (
				c = frame.At(x, y).(RGB)
				p = buf[(y*4+x)*4:]
			)
			if p[0] != c.B || p[1] != c.G || p[2] != c.R {
				t.Fatalf("pixel (%d,%d): expected B,G,R = %d,%d,%d, got %d,%d,%d",
					x, y, c.B, c.G, c.R, p[0], p[1], p[2])
			}
			if p[3] != 0xff {
				t.Fatalf("pixel (%d,%d): expected alpha 255, got %d", x, y, p[3])
			}
		}
	}
}

func TestEncode32RGB(t *testing.T) {
	// Red channel at bit offset 0 keeps the source byte order.
	frame := testFrame(4, 2)
	buf, err := Encode(frame, geom32(0, 16))
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			var (
				c = frame.At(x, y).(RGB)
				p = buf[(y*4+x)*4:]
			)
			if p[0] != c.R || p[1] != c.G || p[2] != c.B {
				t.Fatalf("pixel (%d,%d): expected R,G,B = %d,%d,%d, got %d,%d,%d",
					x, y, c.R, c.G, c.B, p[0], p[1], p[2])
			}
			if p[3] != 0xff {
				t.Fatalf("pixel (%d,%d): expected alpha 255, got %d", x, y, p[3])
			}
		}
	}
}

func TestEncode32RoundTrip(t *testing.T) {
	frame := testFrame(8, 8)

	for _, test := range []struct {
		name       string
		geom       fbdev.Geometry
		ri, gi, bi int
	}{
		{"bgr", geom32(16, 0), 2, 1, 0},
		{"rgb", geom32(0, 16), 0, 1, 2},
	} {
		t.Run(test.name, func(it *testing.T) {
			buf, err := Encode(frame, test.geom)
			if err != nil {
				it.Fatal(err)
			}
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					var (
						c = frame.At(x, y).(RGB)
						p = buf[(y*8+x)*4:]
					)
					if p[test.ri] != c.R || p[test.gi] != c.G || p[test.bi] != c.B {
						it.Fatalf("pixel (%d,%d) did not round-trip exactly", x, y)
					}
				}
			}
		})
	}
}

func TestEncode16(t *testing.T) {
	frame := testFrame(4, 2)
	buf, err := Encode(frame, fbdev.Geometry{
		Width:        4,
		Height:       2,
		BitsPerPixel: 16,
		Red:          fbdev.Channel{Offset: 11, Length: 5},
		Green:        fbdev.Channel{Offset: 5, Length: 6},
		Blue:         fbdev.Channel{Offset: 0, Length: 5},
	})
	if err != nil {
		t.Fatal(err)
	}
	if want := 2 * 4 * 2; len(buf) != want {
		t.Fatalf("expected %d bytes, got %d", want, len(buf))
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			var (
				c = frame.At(x, y).(RGB)
				v = binary.LittleEndian.Uint16(buf[(y*4+x)*2:])
			)
			if got := uint8(v >> 11); got != c.R>>3 {
				t.Fatalf("pixel (%d,%d): expected red bits %05b, got %05b", x, y, c.R>>3, got)
			}
			if got := uint8(v >> 5 & 0x3f); got != c.G>>2 {
				t.Fatalf("pixel (%d,%d): expected green bits %06b, got %06b", x, y, c.G>>2, got)
			}
			if got := uint8(v & 0x1f); got != c.B>>3 {
				t.Fatalf("pixel (%d,%d): expected blue bits %05b, got %05b", x, y, c.B>>3, got)
			}
		}
	}
}

func TestEncode16RoundTrip(t *testing.T) {
	// Truncation loses the bottom 3 bits of red and blue and the bottom
	// 2 bits of green.
	frame := testFrame(16, 16)
	buf, err := Encode(frame, fbdev.Geometry{Width: 16, Height: 16, BitsPerPixel: 16})
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			var (
				c = frame.At(x, y).(RGB)
				v = binary.LittleEndian.Uint16(buf[(y*16+x)*2:])
				r = uint8(v>>11) << 3
				g = uint8(v>>5&0x3f) << 2
				b = uint8(v&0x1f) << 3
			)
			if d := int(c.R) - int(r); d < 0 || d > 7 {
				t.Fatalf("pixel (%d,%d): red error %d out of range", x, y, d)
			}
			if d := int(c.G) - int(g); d < 0 || d > 3 {
				t.Fatalf("pixel (%d,%d): green error %d out of range", x, y, d)
			}
			if d := int(c.B) - int(b); d < 0 || d > 7 {
				t.Fatalf("pixel (%d,%d): blue error %d out of range", x, y, d)
			}
		}
	}
}

func TestEncodeUnsupported(t *testing.T) {
	frame := testFrame(4, 2)

	for _, test := range []struct {
		name string
		geom fbdev.Geometry
	}{
		{"24bpp", fbdev.Geometry{Width: 4, Height: 2, BitsPerPixel: 24}},
		{"8bpp", fbdev.Geometry{Width: 4, Height: 2, BitsPerPixel: 8}},
		{"odd 32-bit layout", fbdev.Geometry{
			Width:        4,
			Height:       2,
			BitsPerPixel: 32,
			Red:          fbdev.Channel{Offset: 8, Length: 8},
			Green:        fbdev.Channel{Offset: 16, Length: 8},
			Blue:         fbdev.Channel{Offset: 24, Length: 8},
		}},
	} {
		t.Run(test.name, func(it *testing.T) {
			buf, err := Encode(frame, test.geom)
			if buf != nil {
				it.Error("expected no output buffer")
			}
			var formatErr *UnsupportedFormatError
			if !errors.As(err, &formatErr) {
				it.Fatalf("expected UnsupportedFormatError, got %v", err)
			}
			if formatErr.BitsPerPixel != test.geom.BitsPerPixel {
				it.Errorf("expected %d bpp in error, got %d", test.geom.BitsPerPixel, formatErr.BitsPerPixel)
			}
		})
	}
}
