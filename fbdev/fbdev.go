// Package fbdev provides access to the operating system's native framebuffer
// device (fbdev).
//
// A device is opened with [Open], which reads the fixed and variable screen
// descriptors and keeps them as an immutable [Geometry] snapshot. Frames are
// scanned out with [Device.WriteFrame]. The geometry is valid for the lifetime
// of the open device only; display modes can change between opens.
package fbdev

import (
	"fmt"
	"os"
)

// Channel describes where a color channel's bits sit within a packed pixel
// word, as reported by the device.
type Channel struct {
	// Offset is the position of the channel's least significant bit.
	Offset uint32

	// Length is the number of bits in the channel.
	Length uint32
}

// Geometry is a snapshot of the framebuffer geometry and pixel encoding.
type Geometry struct {
	// Width and Height are the visible resolution in pixels.
	Width, Height int

	// VirtualWidth and VirtualHeight are the virtual resolution.
	VirtualWidth, VirtualHeight int

	// BitsPerPixel is the depth of a packed pixel word.
	BitsPerPixel int

	// Red, Green, Blue and Alpha describe the channel layout within a
	// packed pixel word.
	Red, Green, Blue, Alpha Channel

	// LineLength is the number of bytes per scanline, which may exceed
	// Width * BitsPerPixel / 8 on devices that pad their rows.
	LineLength int

	// SmemLen is the total addressable framebuffer memory in bytes.
	SmemLen int
}

// RowBytes is the tightly packed size of one scanline in bytes.
func (g Geometry) RowBytes() int {
	return g.Width * g.BitsPerPixel / 8
}

// FrameBytes is the tightly packed size of one full frame in bytes.
func (g Geometry) FrameBytes() int {
	return g.RowBytes() * g.Height
}

// Padded reports whether the device pads its scanlines beyond the visible
// pixel data.
func (g Geometry) Padded() bool {
	return g.LineLength > g.RowBytes()
}

// QueryError is returned when a framebuffer descriptor query is rejected.
type QueryError struct {
	Path  string
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("fbdev: %s query on %s: %v", e.Query, e.Path, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// WriteError is returned when a frame write fails or comes up short.
type WriteError struct {
	Written int
	Size    int
	Err     error
}

func (e *WriteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fbdev: frame write failed after %d of %d bytes: %v", e.Written, e.Size, e.Err)
	}
	return fmt.Sprintf("fbdev: short frame write: %d of %d bytes", e.Written, e.Size)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Device is an open framebuffer device.
type Device struct {
	f    *os.File
	geom Geometry
}

// Geometry returns the geometry snapshot taken when the device was opened.
func (d *Device) Geometry() Geometry {
	return d.geom
}

// WriteFrame scans out one encoded frame, starting at offset 0.
//
// The frame must be tightly packed at Geometry.RowBytes per row. On devices
// with padded scanlines each row is written at LineLength intervals;
// otherwise the frame goes out in a single sequential write. A short write
// is a hard failure, never retried or resumed.
func (d *Device) WriteFrame(frame []byte) error {
	size := d.geom.FrameBytes()
	if len(frame) != size {
		return &WriteError{
			Written: 0,
			Size:    size,
			Err:     fmt.Errorf("frame is %d bytes, geometry wants %d", len(frame), size),
		}
	}
	if d.geom.SmemLen > 0 && d.geom.LineLength*d.geom.Height > d.geom.SmemLen {
		return &WriteError{
			Size: size,
			Err:  fmt.Errorf("frame exceeds device memory (%d bytes)", d.geom.SmemLen),
		}
	}

	if !d.geom.Padded() {
		n, err := d.f.WriteAt(frame, 0)
		if err != nil {
			return &WriteError{Written: n, Size: size, Err: err}
		}
		if n != size {
			return &WriteError{Written: n, Size: size}
		}
		return nil
	}

	row := d.geom.RowBytes()
	for y := 0; y < d.geom.Height; y++ {
		n, err := d.f.WriteAt(frame[y*row:(y+1)*row], int64(y*d.geom.LineLength))
		if err != nil {
			return &WriteError{Written: y*row + n, Size: size, Err: err}
		}
		if n != row {
			return &WriteError{Written: y*row + n, Size: size}
		}
	}
	return nil
}

// Close releases the device handle.
func (d *Device) Close() error {
	return d.f.Close()
}
