// Command fbshow renders one or more images onto a framebuffer device.
//
// Layouts: single (full-screen stretch), dual (side by side), grid (six
// images in a 3×2 grid) and orbit (one image circling the screen center).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/BeatGlow/fbrender"
	"github.com/BeatGlow/fbrender/fbdev"
	"github.com/BeatGlow/fbrender/layout"
)

func main() {
	var (
		deviceFlag   = flag.String("fb", fbrender.DefaultDevice, "framebuffer device")
		layoutFlag   = flag.String("layout", "single", "layout: single, dual, grid or orbit")
		marginFlag   = flag.Int("margin", layout.DefaultGridMargin, "grid margin in percent of the screen size")
		durationFlag = flag.Duration("duration", fbrender.DefaultDuration, "orbit animation duration")
		fpsFlag      = flag.Int("fps", fbrender.DefaultFPS, "orbit target frame rate")
		debugFlag    = flag.Bool("debug", false, "print device geometry")
		waitFlag     = flag.Bool("wait", true, "stay resident after rendering")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <image> [image ...]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	for _, name := range flag.Args() {
		if _, err := os.Stat(name); err != nil {
			fmt.Fprintf(os.Stderr, "Error: image file %q not found.\n", name)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, *deviceFlag, *layoutFlag, *marginFlag, *durationFlag, *fpsFlag, *debugFlag, flag.Args())
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		// interrupted mid-animation, nothing to report
	default:
		// Render errors are reported but do not exit non-zero; the
		// process stays resident so the display keeps its last state.
		fmt.Fprintln(os.Stderr, "Error:", err)
	}

	if *waitFlag && ctx.Err() == nil {
		fmt.Println("Press Ctrl+C to exit.")
		<-ctx.Done()
	}
}

func run(ctx context.Context, device, name string, margin int, duration time.Duration, fps int, debug bool, paths []string) error {
	session, err := fbrender.Open(&fbrender.Config{Device: device})
	if err != nil {
		return err
	}
	defer session.Close()

	if debug {
		printGeometry(session.Geometry())
	}

	images, err := loadImages(paths)
	if err != nil {
		return err
	}

	switch name {
	case "single":
		return session.Render(layout.FullScreen{}, images...)
	case "dual":
		return session.Render(layout.Dual{}, images...)
	case "grid":
		return session.Render(layout.Grid{MarginPercent: margin}, images...)
	case "orbit":
		return session.Animate(ctx, &layout.Orbit{}, images[0], fbrender.Animation{
			Duration: duration,
			FPS:      fps,
		})
	default:
		return fmt.Errorf("unsupported layout %q", name)
	}
}

func loadImages(paths []string) ([]image.Image, error) {
	images := make([]image.Image, 0, len(paths))
	for _, name := range paths {
		img, err := loadImage(name)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

func loadImage(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

func printGeometry(g fbdev.Geometry) {
	fmt.Printf("Screen resolution: %dx%d\n", g.Width, g.Height)
	fmt.Printf("Virtual resolution: %dx%d\n", g.VirtualWidth, g.VirtualHeight)
	fmt.Printf("Bits per pixel: %d\n", g.BitsPerPixel)
	fmt.Printf("RGB offsets: red=%d green=%d blue=%d alpha=%d\n",
		g.Red.Offset, g.Green.Offset, g.Blue.Offset, g.Alpha.Offset)
	fmt.Printf("Line length: %d\n", g.LineLength)
	fmt.Printf("FB memory length: %d\n", g.SmemLen)
}
