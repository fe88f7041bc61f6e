package layout

import (
	"image"
	"math"
	"time"

	"github.com/BeatGlow/fbrender/pixel"
)

// DefaultOrbitPeriod is the time for one full revolution.
const DefaultOrbitPeriod = 5 * time.Second

// orbitMaxFraction limits the sprite to half of each screen dimension.
const orbitMaxFraction = 0.5

// Orbit translates a single image along a circular path around the screen
// center. The orbit radius is a quarter of the smaller screen dimension.
//
// The sprite is scaled once, on the first composition; every tick pastes it
// onto a fresh black canvas so previous positions leave no trail.
type Orbit struct {
	// Period is the time for one full revolution. Zero means
	// DefaultOrbitPeriod.
	Period time.Duration

	sprite image.Image
}

func (o *Orbit) ImageCount() int { return 1 }

// Compose renders the orbit frame at elapsed time zero.
func (o *Orbit) Compose(images []image.Image, size image.Point) (*pixel.RGBImage, error) {
	return o.ComposeAt(images, size, 0)
}

// ComposeAt renders the orbit frame for elapsed time t.
func (o *Orbit) ComposeAt(images []image.Image, size image.Point, t time.Duration) (*pixel.RGBImage, error) {
	if err := check("orbit", 1, images); err != nil {
		return nil, err
	}

	if o.sprite == nil {
		var (
			sb    = images[0].Bounds()
			scale = math.Min(
				orbitMaxFraction*float64(size.X)/float64(sb.Dx()),
				orbitMaxFraction*float64(size.Y)/float64(sb.Dy()),
			)
		)
		o.sprite = resize(images[0],
			int(float64(sb.Dx())*scale),
			int(float64(sb.Dy())*scale))
	}

	frame := pixel.NewRGBImage(size.X, size.Y)
	paste(frame, o.sprite, o.anchor(size, t))
	return frame, nil
}

// anchor is the sprite's top-left corner at elapsed time t.
func (o *Orbit) anchor(size image.Point, t time.Duration) image.Point {
	period := o.Period
	if period <= 0 {
		period = DefaultOrbitPeriod
	}

	var (
		cx     = float64(size.X / 2)
		cy     = float64(size.Y / 2)
		radius = 0.25 * math.Min(float64(size.X), float64(size.Y))
		angle  = t.Seconds() * 2 * math.Pi / period.Seconds()
		sb     = o.sprite.Bounds()
	)
	return image.Pt(
		int(cx+radius*math.Cos(angle)-float64(sb.Dx())/2),
		int(cy+radius*math.Sin(angle)-float64(sb.Dy())/2),
	)
}
