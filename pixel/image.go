package pixel

import (
	"image"
	"image/color"
)

// Buffer holds the pixel values and is the container used by the image
// types in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// RGBImage is a 24-bit 8-8-8 RGB image, 3 bytes per pixel, row-major with a
// top-left origin. A new image is solid black.
type RGBImage struct {
	Buffer
}

func NewRGBImage(w, h int) *RGBImage {
	stride := w * 3
	return &RGBImage{
		Buffer: makeBuffer(w, h, stride, stride*h),
	}
}

func (p *RGBImage) ColorModel() color.Model {
	return RGBModel
}

func (p *RGBImage) PixOffset(x, y int) int {
	return y*p.Stride + x*3
}

func (p *RGBImage) At(x, y int) color.Color {
	if !(image.Point{x, y}).In(p.Rect) {
		return color.Transparent
	}

	pix := p.Pix[p.PixOffset(x, y):]
	return RGB{R: pix[0], G: pix[1], B: pix[2]}
}

func (p *RGBImage) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}

	var (
		pix   = p.Pix[p.PixOffset(x, y):]
		color = rgbModel(c).(RGB)
	)
	pix[0] = color.R
	pix[1] = color.G
	pix[2] = color.B
}

func (p *RGBImage) Fill(c color.Color) {
	color := rgbModel(c).(RGB)
	for i := 0; i < len(p.Pix); i += 3 {
		p.Pix[i+0] = color.R
		p.Pix[i+1] = color.G
		p.Pix[i+2] = color.B
	}
}
