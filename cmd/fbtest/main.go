// Command fbtest prints the framebuffer geometry and renders a test
// pattern: color bars, a grayscale ramp, a border and a mode readout.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/BeatGlow/fbrender"
	"github.com/BeatGlow/fbrender/draw"
	"github.com/BeatGlow/fbrender/pixel"
)

// The classic bar order: white, yellow, cyan, green, magenta, red, blue,
// black.
var bars = []pixel.RGB{
	{R: 255, G: 255, B: 255},
	{R: 255, G: 255, B: 0},
	{R: 0, G: 255, B: 255},
	{R: 0, G: 255, B: 0},
	{R: 255, G: 0, B: 255},
	{R: 255, G: 0, B: 0},
	{R: 0, G: 0, B: 255},
	{R: 0, G: 0, B: 0},
}

func main() {
	deviceFlag := flag.String("fb", fbrender.DefaultDevice, "framebuffer device")
	flag.Parse()

	if err := run(*deviceFlag); err != nil {
		fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
		os.Exit(1)
	}
}

func run(device string) error {
	session, err := fbrender.Open(&fbrender.Config{Device: device})
	if err != nil {
		return err
	}
	defer session.Close()

	var (
		g = session.Geometry()
		w = g.Width
		h = g.Height
	)
	fmt.Printf("%s: %dx%d (virtual %dx%d), %d bpp, red@%d green@%d blue@%d, stride %d, %d bytes\n",
		device, w, h, g.VirtualWidth, g.VirtualHeight, g.BitsPerPixel,
		g.Red.Offset, g.Green.Offset, g.Blue.Offset, g.LineLength, g.SmemLen)

	frame := pixel.NewRGBImage(w, h)

	// Color bars over the top two thirds.
	barH := h * 2 / 3
	for i, c := range bars {
		draw.Box(frame, image.Rect(i*w/len(bars), 0, (i+1)*w/len(bars), barH), c)
	}

	// Grayscale ramp below the bars.
	for x := 0; x < w; x++ {
		v := uint8(x * 255 / (w - 1))
		draw.VerticalLine(frame, x, barH, h-barH, pixel.RGB{R: v, G: v, B: v})
	}

	draw.Rectangle(frame, frame.Bounds(), pixel.RGB{R: 255, G: 255, B: 255})

	label := fmt.Sprintf("%dx%d %dbpp", w, h, g.BitsPerPixel)
	tw, err := draw.LabelWidth(label)
	if err != nil {
		return err
	}
	if err = draw.Label(frame, image.Pt((w-tw)/2, h/2), pixel.RGB{R: 255, G: 255, B: 255}, label); err != nil {
		return err
	}

	return session.Display(frame)
}
