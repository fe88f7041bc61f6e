package fbrender

import (
	"image"

	"github.com/BeatGlow/fbrender/fbdev"
	"github.com/BeatGlow/fbrender/layout"
	"github.com/BeatGlow/fbrender/pixel"
)

// Session is a render session. It exclusively owns the open framebuffer
// device and the geometry snapshot taken on open; the snapshot is not
// refreshed, because the display mode is assumed stable for the session's
// lifetime.
type Session struct {
	dev  *fbdev.Device
	geom fbdev.Geometry
}

// Open opens the configured framebuffer device and reads its geometry.
func Open(config *Config) (*Session, error) {
	device := DefaultDevice
	if config != nil && config.Device != "" {
		device = config.Device
	}

	dev, err := fbdev.Open(device)
	if err != nil {
		return nil, err
	}
	return &Session{
		dev:  dev,
		geom: dev.Geometry(),
	}, nil
}

// Geometry returns the session's geometry snapshot.
func (s *Session) Geometry() fbdev.Geometry {
	return s.geom
}

// Render composes the source images with the given layout, encodes the
// frame for the device and scans it out. All pipeline errors surface here;
// none are retried.
func (s *Session) Render(l layout.Layout, images ...image.Image) error {
	frame, err := l.Compose(images, s.size())
	if err != nil {
		return err
	}
	return s.Display(frame)
}

// Display encodes a composed raster and writes it to the device.
func (s *Session) Display(frame *pixel.RGBImage) error {
	buf, err := pixel.Encode(frame, s.geom)
	if err != nil {
		return err
	}
	return s.dev.WriteFrame(buf)
}

// Close releases the device handle.
func (s *Session) Close() error {
	return s.dev.Close()
}

func (s *Session) size() image.Point {
	return image.Pt(s.geom.Width, s.geom.Height)
}
