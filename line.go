package shapes

// LineType classifies a line by its endpoints. It is a pure function
// of start and end, recomputed whenever a line is built.
type LineType int

const (
	// LinePoint is a degenerate line whose endpoints are equal.
	LinePoint LineType = iota
	LineHorizontal
	LineVertical
	LineAngled
)

func (t LineType) String() string {
	switch t {
	case LinePoint:
		return "Point"
	case LineHorizontal:
		return "Horizontal"
	case LineVertical:
		return "Vertical"
	default:
		return "Angled"
	}
}

// Line is a segment between two coords.
type Line struct {
	start    Coord
	end      Coord
	length   int
	lineType LineType
	angle    int
}

func NewLine(start, end Coord) Line {
	lineType := LineAngled
	switch {
	case start == end:
		lineType = LinePoint
	case start.Y == end.Y:
		lineType = LineHorizontal
	case start.X == end.X:
		lineType = LineVertical
	}
	return Line{
		start:    start,
		end:      end,
		length:   start.Distance(end),
		lineType: lineType,
		angle:    start.AngleTo(end),
	}
}

// LineFromPoints builds a line from [start, end].
func LineFromPoints(points []Coord) Line {
	assertPointCount("Line", points, 2)
	return NewLine(points[0], points[1])
}

func (l Line) Start() Coord { return l.start }

func (l Line) End() Coord { return l.end }

// Len is the rounded length of the line. Zero only for LinePoint.
func (l Line) Len() int { return l.length }

// Angle is the signed angle in degrees from start to end (0 up,
// clockwise).
func (l Line) Angle() int { return l.angle }

func (l Line) Type() LineType { return l.lineType }

func (l Line) Points() []Coord {
	return []Coord{l.start, l.end}
}

func (l Line) Contains(point Coord) bool {
	switch l.lineType {
	case LinePoint:
		return l.start == point
	case LineHorizontal:
		return point.Y == l.start.Y && l.Left() <= point.X && point.X <= l.Right()
	case LineVertical:
		return point.X == l.start.X && l.Top() <= point.Y && point.Y <= l.Bottom()
	default:
		// Rounded distances, so points within half a pixel of the
		// segment count as on it.
		return l.start.Distance(point)+l.end.Distance(point) == l.length
	}
}

func (l Line) Center() Coord {
	return l.start.MidPoint(l.end)
}

func (l Line) Left() int { return minInt(l.start.X, l.end.X) }

func (l Line) Right() int { return maxInt(l.start.X, l.end.X) }

func (l Line) Top() int { return minInt(l.start.Y, l.end.Y) }

func (l Line) Bottom() int { return maxInt(l.start.Y, l.end.Y) }

func (l Line) TranslateBy(delta Coord) Line {
	return NewLine(l.start.Add(delta), l.end.Add(delta))
}

// MoveTo moves the line's start to point, keeping its length and
// angle.
func (l Line) MoveTo(point Coord) Line {
	return l.TranslateBy(moveToDelta(l, point))
}

func (l Line) MoveCenterTo(point Coord) Line {
	return l.TranslateBy(point.Sub(l.Center()))
}

func (l Line) Rotate(degrees int) Line {
	return l.RotateAround(degrees, l.Center())
}

func (l Line) RotateAround(degrees int, pivot Coord) Line {
	return LineFromPoints(rotatePoints(pivot, l.Points(), degrees))
}

func (l Line) Scale(factor float64) Line {
	return l.ScaleAround(factor, l.Center())
}

func (l Line) ScaleAround(factor float64, pivot Coord) Line {
	return LineFromPoints(scalePoints(pivot, l.Points(), factor))
}

// OutlinePixels rasterizes the line. Horizontal and vertical lines
// short-circuit to a direct range fill; anything else runs Bresenham.
// Both endpoints are always included.
func (l Line) OutlinePixels() []Coord {
	switch l.lineType {
	case LinePoint:
		return []Coord{l.start}
	case LineHorizontal:
		return horizontalPixels(l.start.X, l.end.X, l.start.Y)
	case LineVertical:
		return verticalPixels(l.start.X, l.start.Y, l.end.Y)
	default:
		return bresenham(l.start, l.end)
	}
}

// FilledPixels is the same as OutlinePixels; a line has no interior.
func (l Line) FilledPixels() []Coord {
	return l.OutlinePixels()
}

func (l Line) ToShapeBox() ShapeBox {
	return BoxLine(l)
}

// AsRect builds the rect with the line's endpoints as opposite
// corners.
func (l Line) AsRect() Rect {
	return NewRect(l.start, l.end)
}

// AsCircle builds the circle centered on start that passes through
// end.
func (l Line) AsCircle() Circle {
	return NewCircle(l.start, l.length)
}
