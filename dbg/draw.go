// Package dbg renders pixel sets to PNGs (and straight into iTerm2 via
// imgcat) for eyeballing rasterization output. It is for debugging
// purposes only.
package dbg

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	shapes "github.com/emmabritton/graphics-shapes"
)

const drawPadding = 8

// Draw renders the pixels to a PNG at path, each pixel drawn as a
// scale x scale square on a black background.
func Draw(pixels []shapes.Coord, scale int, path string) error {
	if len(pixels) == 0 {
		return errors.New("nothing to draw")
	}
	if scale < 1 {
		scale = 1
	}

	minX, minY := pixels[0].X, pixels[0].Y
	maxX, maxY := minX, minY
	for _, p := range pixels[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	// Set up the context
	width := scale*(maxX-minX+1) + drawPadding*2
	height := scale*(maxY-minY+1) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Translate for padding, then to the pixel bounds
	c.Translate(drawPadding, drawPadding)
	c.Scale(float64(scale), float64(scale))
	c.Translate(float64(-minX), float64(-minY))

	c.SetRGB(0, 1, 1)
	for _, p := range pixels {
		c.DrawRectangle(float64(p.X), float64(p.Y), 1, 1)
	}
	c.Fill()

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Show draws the pixels to a temp file and cats it to stdout.
func Show(pixels []shapes.Coord, scale int) error {
	const path = "/tmp/shapes_debug.png"
	if err := Draw(pixels, scale, path); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
