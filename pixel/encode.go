package pixel

import (
	"encoding/binary"
	"fmt"

	"github.com/BeatGlow/fbrender/fbdev"
)

// UnsupportedFormatError is returned when the device reports a pixel depth
// or channel layout this package cannot encode.
type UnsupportedFormatError struct {
	BitsPerPixel     int
	Red, Green, Blue fbdev.Channel
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("pixel: unsupported %d bpp format (red@%d green@%d blue@%d)",
		e.BitsPerPixel, e.Red.Offset, e.Green.Offset, e.Blue.Offset)
}

// Encode converts an RGB raster into a byte buffer matching the device's
// reported pixel encoding, row-major and tightly packed.
//
// At 32 bpp a blue channel at bit offset 0 means the pixel bytes go out in
// BGR order, otherwise a red channel at bit offset 0 keeps them in RGB
// order; either way a fixed alpha byte of 255 follows. At 16 bpp each pixel
// is quantized to RGB565 by truncation and stored little-endian.
func Encode(frame *RGBImage, geom fbdev.Geometry) ([]byte, error) {
	switch geom.BitsPerPixel {
	case 32:
		switch {
		case geom.Blue.Offset == 0:
			return encode32(frame, 2, 1, 0), nil
		case geom.Red.Offset == 0:
			return encode32(frame, 0, 1, 2), nil
		default:
			return nil, &UnsupportedFormatError{
				BitsPerPixel: geom.BitsPerPixel,
				Red:          geom.Red,
				Green:        geom.Green,
				Blue:         geom.Blue,
			}
		}
	case 16:
		return encode16(frame), nil
	default:
		return nil, &UnsupportedFormatError{
			BitsPerPixel: geom.BitsPerPixel,
			Red:          geom.Red,
			Green:        geom.Green,
			Blue:         geom.Blue,
		}
	}
}

// encode32 packs 4 bytes per pixel with the red, green and blue source
// values at byte positions ri, gi and bi, and alpha fixed at 255.
func encode32(frame *RGBImage, ri, gi, bi int) []byte {
	var (
		w   = frame.Rect.Dx()
		h   = frame.Rect.Dy()
		out = make([]byte, w*h*4)
	)
	for y := 0; y < h; y++ {
		var (
			src = frame.Pix[y*frame.Stride:]
			dst = out[y*w*4:]
		)
		for x := 0; x < w; x++ {
			var (
				s = src[x*3 : x*3+3]
				d = dst[x*4 : x*4+4]
			)
			d[ri] = s[0]
			d[gi] = s[1]
			d[bi] = s[2]
			d[3] = 0xff
		}
	}
	return out
}

// encode16 packs each pixel as a little-endian RGB565 word. The channels
// are truncated, not rounded; repeatability requires bit-exact truncation.
func encode16(frame *RGBImage) []byte {
	var (
		w   = frame.Rect.Dx()
		h   = frame.Rect.Dy()
		out = make([]byte, w*h*2)
	)
	for y := 0; y < h; y++ {
		var (
			src = frame.Pix[y*frame.Stride:]
			dst = out[y*w*2:]
		)
		for x := 0; x < w; x++ {
			s := src[x*3 : x*3+3]
			v := uint16(s[0]>>3)<<11 | uint16(s[1]>>2)<<5 | uint16(s[2]>>3)
			binary.LittleEndian.PutUint16(dst[x*2:], v)
		}
	}
	return out
}
