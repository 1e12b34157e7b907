package main

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	shapes "github.com/emmabritton/graphics-shapes"
	"github.com/emmabritton/graphics-shapes/dbg"
)

// Demo of shape rasterization: builds a shape from the command line,
// rasterizes its outline or interior, and renders the pixels to a PNG
// (and the terminal, with --show).

var (
	kind    = kingpin.Arg("kind", "Shape to draw.").Required().Enum("line", "rect", "circle", "triangle", "ellipse", "polygon")
	params  = kingpin.Arg("params", "Shape geometry, e.g. 10,10 40,25 for a line or 50,50 30 for a circle.").Required().Strings()
	rotate  = kingpin.Flag("rotate", "Degrees to rotate the shape clockwise around its center.").Default("0").Int()
	scale   = kingpin.Flag("scale", "Scale factor applied around the shape's center.").Default("1.0").Float64()
	filled  = kingpin.Flag("filled", "Rasterize the interior instead of the outline.").Bool()
	pxScale = kingpin.Flag("pixel-size", "Size of each pixel in the output image.").Default("8").Int()
	out     = kingpin.Flag("out", "Output PNG path.").Default("shape.png").String()
	show    = kingpin.Flag("show", "Also cat the image to the terminal (iTerm2).").Bool()
)

func main() {
	kingpin.Parse()

	shape, err := buildShape(*kind, *params)
	if err != nil {
		kingpin.Fatalf("%s", err)
	}

	box := shape.Rotate(*rotate).Scale(*scale)
	pixels := box.OutlinePixels()
	if *filled {
		pixels = box.FilledPixels()
	}

	if err := dbg.Draw(pixels, *pxScale, *out); err != nil {
		kingpin.Fatalf("%s", err)
	}
	fmt.Printf("%s: %d pixels -> %s\n", box.Kind(), len(pixels), *out)

	if *show {
		if err := dbg.Show(pixels, *pxScale); err != nil {
			kingpin.Fatalf("%s", err)
		}
	}
}

func buildShape(kind string, params []string) (shapes.ShapeBox, error) {
	switch kind {
	case "line":
		pts, err := parseCoords(params, 2)
		if err != nil {
			return shapes.ShapeBox{}, err
		}
		return shapes.LineFromPoints(pts).ToShapeBox(), nil
	case "rect":
		pts, err := parseCoords(params, 2)
		if err != nil {
			return shapes.ShapeBox{}, err
		}
		return shapes.RectFromPoints(pts).ToShapeBox(), nil
	case "circle":
		if len(params) != 2 {
			return shapes.ShapeBox{}, fmt.Errorf("circle needs a center and a radius, got %d params", len(params))
		}
		center, err := parseCoord(params[0])
		if err != nil {
			return shapes.ShapeBox{}, err
		}
		radius, err := strconv.Atoi(params[1])
		if err != nil {
			return shapes.ShapeBox{}, fmt.Errorf("bad radius %q", params[1])
		}
		return shapes.NewCircle(center, radius).ToShapeBox(), nil
	case "triangle":
		pts, err := parseCoords(params, 3)
		if err != nil {
			return shapes.ShapeBox{}, err
		}
		return shapes.TriangleFromPoints(pts).ToShapeBox(), nil
	case "ellipse":
		if len(params) != 3 {
			return shapes.ShapeBox{}, fmt.Errorf("ellipse needs a center, width and height, got %d params", len(params))
		}
		center, err := parseCoord(params[0])
		if err != nil {
			return shapes.ShapeBox{}, err
		}
		width, err := strconv.Atoi(params[1])
		if err != nil {
			return shapes.ShapeBox{}, fmt.Errorf("bad width %q", params[1])
		}
		height, err := strconv.Atoi(params[2])
		if err != nil {
			return shapes.ShapeBox{}, fmt.Errorf("bad height %q", params[2])
		}
		return shapes.NewEllipse(center, width, height).ToShapeBox(), nil
	default: // polygon
		if len(params) < 3 {
			return shapes.ShapeBox{}, fmt.Errorf("polygon needs at least 3 points, got %d", len(params))
		}
		pts, err := parseCoords(params, len(params))
		if err != nil {
			return shapes.ShapeBox{}, err
		}
		return shapes.NewPolygon(pts).ToShapeBox(), nil
	}
}

func parseCoords(params []string, want int) ([]shapes.Coord, error) {
	if len(params) != want {
		return nil, fmt.Errorf("expected %d points, got %d", want, len(params))
	}
	out := make([]shapes.Coord, want)
	for i, p := range params {
		c, err := parseCoord(p)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

func parseCoord(s string) (shapes.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return shapes.Coord{}, fmt.Errorf("bad point %q, expected x,y", s)
	}
	x, errX := strconv.Atoi(parts[0])
	y, errY := strconv.Atoi(parts[1])
	if errX != nil || errY != nil {
		return shapes.Coord{}, fmt.Errorf("bad point %q, expected x,y", s)
	}
	return shapes.NewCoord(x, y), nil
}
