// Package fbrender renders still images and simple animations onto a raw
// linear-framebuffer display device.
//
// A [Session] owns the open device handle and the geometry snapshot read
// from it. Each frame goes through the same pipeline: a layout composes the
// source images into a screen-sized RGB raster, the raster is encoded into
// the device's native pixel format, and the encoded buffer is written to
// the device. Nothing is shared between frames; every tick allocates fresh
// buffers and discards them after the write.
package fbrender

// DefaultDevice is the framebuffer device used when no path is configured.
const DefaultDevice = "/dev/fb0"

// Config is the render session configuration.
type Config struct {
	// Device is the framebuffer device path. Empty means DefaultDevice.
	Device string
}
