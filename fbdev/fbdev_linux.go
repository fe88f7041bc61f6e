package fbdev

import (
	"os"
	"unsafe"

	"github.com/BeatGlow/fbrender/internal/ioctl"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

// Open a Linux framebuffer device (fbdev) by name, typically /dev/fb[0..x].
//
// Both screen descriptors are read once; the resulting geometry snapshot is
// fixed for the lifetime of the returned Device.
func Open(name string) (*Device, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	var (
		fd   = f.Fd()
		fix  fixScreenInfo
		vari varScreenInfo
	)
	if err = ioctl.Read(fd, fbioGetFScreenInfo, unsafe.Pointer(&fix)); err != nil {
		_ = f.Close()
		return nil, &QueryError{Path: name, Query: "fixed descriptor", Err: err}
	}
	if err = ioctl.Read(fd, fbioGetVScreenInfo, unsafe.Pointer(&vari)); err != nil {
		_ = f.Close()
		return nil, &QueryError{Path: name, Query: "variable descriptor", Err: err}
	}

	return &Device{
		f:    f,
		geom: geometryFrom(&fix, &vari),
	}, nil
}

func geometryFrom(fix *fixScreenInfo, vari *varScreenInfo) Geometry {
	return Geometry{
		Width:         int(vari.Xres),
		Height:        int(vari.Yres),
		VirtualWidth:  int(vari.XresVirtual),
		VirtualHeight: int(vari.YresVirtual),
		BitsPerPixel:  int(vari.BitsPerPixel),
		Red:           Channel{Offset: vari.Red.Offset, Length: vari.Red.Length},
		Green:         Channel{Offset: vari.Green.Offset, Length: vari.Green.Length},
		Blue:          Channel{Offset: vari.Blue.Offset, Length: vari.Blue.Length},
		Alpha:         Channel{Offset: vari.Alpha.Offset, Length: vari.Alpha.Length},
		LineLength:    int(fix.LineLength),
		SmemLen:       int(fix.SmemLen),
	}
}

// fixScreenInfo mirrors struct fb_fix_screeninfo from <linux/fb.h>.
type fixScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// bitField mirrors struct fb_bitfield from <linux/fb.h>.
type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// varScreenInfo mirrors struct fb_var_screeninfo from <linux/fb.h>. It holds
// device independent changeable information about a frame buffer device and
// a specific video mode.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}
