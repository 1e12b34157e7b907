package shapes

import "math"

// Rect is an axis-aligned rectangle stored as two opposite corners.
type Rect struct {
	topLeft     Coord
	bottomRight Coord
}

func NewRect(topLeft, bottomRight Coord) Rect {
	return Rect{topLeft: topLeft, bottomRight: bottomRight}
}

// NewRectSized builds a rect from its top-left corner and size.
func NewRectSized(topLeft Coord, width, height int) Rect {
	assertNonNegative("Rect", "width", width)
	assertNonNegative("Rect", "height", height)
	return Rect{
		topLeft:     topLeft,
		bottomRight: Coord{X: topLeft.X + width, Y: topLeft.Y + height},
	}
}

// RectFromPoints builds a rect from [topLeft, bottomRight].
func RectFromPoints(points []Coord) Rect {
	assertPointCount("Rect", points, 2)
	return NewRect(points[0], points[1])
}

func (r Rect) TopLeft() Coord { return r.topLeft }

func (r Rect) BottomRight() Coord { return r.bottomRight }

func (r Rect) Width() int { return absInt(r.bottomRight.X - r.topLeft.X) }

func (r Rect) Height() int { return absInt(r.bottomRight.Y - r.topLeft.Y) }

func (r Rect) IsSquare() bool {
	diff := r.bottomRight.Sub(r.topLeft)
	return diff.X == diff.Y
}

func (r Rect) Points() []Coord {
	return []Coord{r.topLeft, r.bottomRight}
}

// Contains is half open: the left and top edges are inside, the right
// and bottom edges are not. This keeps adjacent rects tiling without
// double-claiming pixels.
func (r Rect) Contains(point Coord) bool {
	return r.topLeft.X <= point.X && point.X < r.bottomRight.X &&
		r.topLeft.Y <= point.Y && point.Y < r.bottomRight.Y
}

func (r Rect) Center() Coord {
	return r.topLeft.MidPoint(r.bottomRight)
}

func (r Rect) Left() int { return minInt(r.topLeft.X, r.bottomRight.X) }

func (r Rect) Right() int { return maxInt(r.topLeft.X, r.bottomRight.X) }

func (r Rect) Top() int { return minInt(r.topLeft.Y, r.bottomRight.Y) }

func (r Rect) Bottom() int { return maxInt(r.topLeft.Y, r.bottomRight.Y) }

func (r Rect) TranslateBy(delta Coord) Rect {
	return NewRect(r.topLeft.Add(delta), r.bottomRight.Add(delta))
}

func (r Rect) MoveTo(point Coord) Rect {
	return r.TranslateBy(moveToDelta(r, point))
}

func (r Rect) MoveCenterTo(point Coord) Rect {
	return r.TranslateBy(point.Sub(r.Center()))
}

func (r Rect) Rotate(degrees int) Rect {
	return r.RotateAround(degrees, r.Center())
}

// RotateAround snaps degrees to the nearest multiple of 90 before
// rotating. A rect can't represent an angled rectangle, so arbitrary
// angles are rounded to the nearest quarter turn instead of warping
// the shape.
func (r Rect) RotateAround(degrees int, pivot Coord) Rect {
	quarters := int(math.Round(float64(degrees) / 90.0))
	return RectFromPoints(rotatePoints(pivot, r.Points(), quarters*90))
}

func (r Rect) Scale(factor float64) Rect {
	return r.ScaleAround(factor, r.Center())
}

func (r Rect) ScaleAround(factor float64, pivot Coord) Rect {
	return RectFromPoints(scalePoints(pivot, r.Points(), factor))
}

func (r Rect) OutlinePixels() []Coord {
	set := newCoordSet()
	set.insertAll(horizontalPixels(r.Left(), r.Right(), r.Top()))
	set.insertAll(horizontalPixels(r.Left(), r.Right(), r.Bottom()))
	set.insertAll(verticalPixels(r.Left(), r.Top(), r.Bottom()))
	set.insertAll(verticalPixels(r.Right(), r.Top(), r.Bottom()))
	return set.slice()
}

func (r Rect) FilledPixels() []Coord {
	out := make([]Coord, 0, (r.Width()+1)*(r.Height()+1))
	for y := r.Top(); y <= r.Bottom(); y++ {
		for x := r.Left(); x <= r.Right(); x++ {
			out = append(out, Coord{X: x, Y: y})
		}
	}
	return out
}

func (r Rect) ToShapeBox() ShapeBox {
	return BoxRect(r)
}

// AsSmallestCircle creates a circle around the center reaching the
// closest edge.
func (r Rect) AsSmallestCircle() Circle {
	return NewCircle(r.Center(), minInt(r.Width()/2, r.Height()/2))
}

// AsBiggestCircle creates a circle around the center reaching the
// farthest edge.
func (r Rect) AsBiggestCircle() Circle {
	return NewCircle(r.Center(), maxInt(r.Width()/2, r.Height()/2))
}

// AsEllipse creates the inscribed axis-aligned ellipse.
func (r Rect) AsEllipse() Ellipse {
	return NewEllipse(r.Center(), r.Width(), r.Height())
}

// corners returns the four corners clockwise from the normalized
// top-left, regardless of the order the rect was built in.
func (r Rect) corners() [4]Coord {
	return [4]Coord{
		{X: r.Left(), Y: r.Top()},
		{X: r.Right(), Y: r.Top()},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Left(), Y: r.Bottom()},
	}
}

// AsTriangles splits the rect in two along the top-right to
// bottom-left diagonal.
func (r Rect) AsTriangles() (Triangle, Triangle) {
	c := r.corners()
	return NewTriangle(c[0], c[1], c[3]), NewTriangle(c[2], c[1], c[3])
}

func (r Rect) AsPolygon() Polygon {
	c := r.corners()
	return NewPolygon(c[:])
}

// AsLines returns the four edges.
func (r Rect) AsLines() []Line {
	c := r.corners()
	return []Line{
		NewLine(c[0], c[1]),
		NewLine(c[1], c[2]),
		NewLine(c[2], c[3]),
		NewLine(c[3], c[0]),
	}
}
