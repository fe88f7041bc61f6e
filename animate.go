package fbrender

import (
	"context"
	"image"
	"time"

	"github.com/BeatGlow/fbrender/layout"
)

// Animation defaults.
const (
	DefaultDuration = 30 * time.Second
	DefaultFPS      = 30
)

// Animation configures the orbit animation loop.
type Animation struct {
	// Duration is the total run time. Zero means DefaultDuration.
	Duration time.Duration

	// FPS is the target frame rate. Zero means DefaultFPS.
	FPS int
}

// Animate runs the orbit layout until the configured duration elapses or
// ctx is cancelled.
//
// Each tick composes the orbit frame for the elapsed time, writes it to the
// device and sleeps for whatever remains of the frame interval. Ticks are
// never skipped or coalesced; a tick that overruns its interval starts the
// next one immediately. Cancellation is observed between ticks, never
// mid-write, so a frame is always written completely or cleanly failed.
func (s *Session) Animate(ctx context.Context, orbit *layout.Orbit, img image.Image, anim Animation) error {
	var (
		duration = anim.Duration
		fps      = anim.FPS
	)
	if duration <= 0 {
		duration = DefaultDuration
	}
	if fps <= 0 {
		fps = DefaultFPS
	}

	var (
		interval = time.Second / time.Duration(fps)
		images   = []image.Image{img}
		start    = time.Now()
	)
	for {
		elapsed := time.Since(start)
		if elapsed >= duration {
			return nil
		}

		frame, err := orbit.ComposeAt(images, s.size(), elapsed)
		if err != nil {
			return err
		}
		if err = s.Display(frame); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pace(interval, time.Since(start)-elapsed)):
		}
	}
}

// pace returns the time left in the frame interval after spent, floored at
// zero.
func pace(interval, spent time.Duration) time.Duration {
	if spent >= interval {
		return 0
	}
	return interval - spent
}
