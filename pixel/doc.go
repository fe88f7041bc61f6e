// Package pixel implements the composite raster and the packed pixel
// encoders used to scan frames out to a framebuffer device.
//
// [RGBImage] is compatible with Go's native [image.Image] and
// [image/draw.Image] interfaces, so the standard library and
// golang.org/x/image compositing operate on it directly.
package pixel
