package layout

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// resize scales src to w×h with the Catmull-Rom kernel.
func resize(src image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// scaleTo draws src stretched over r in dst.
func scaleTo(dst draw.Image, r image.Rectangle, src image.Image) {
	xdraw.CatmullRom.Scale(dst, r, src, src.Bounds(), xdraw.Src, nil)
}

// paste draws src onto dst with its top-left corner at p, clipped to the
// dst bounds.
func paste(dst draw.Image, src image.Image, p image.Point) {
	sb := src.Bounds()
	draw.Draw(dst, sb.Sub(sb.Min).Add(p), src, sb.Min, draw.Src)
}
