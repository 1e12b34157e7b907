package shapes

import "math"

// Ellipse is stored as its center plus two auxiliary points: "top" at
// the un-rotated (0, -height/2) position and "right" at (width/2, 0),
// both rotated around the center by the ellipse's angle. The rotation
// is therefore encoded in the points themselves and the canonical
// [center, top, right] list reconstructs the ellipse exactly.
type Ellipse struct {
	center Coord
	top    Coord
	right  Coord
}

// NewEllipse builds an axis-aligned ellipse with the given full width
// and height.
func NewEllipse(center Coord, width, height int) Ellipse {
	return NewEllipseRotated(center, width, height, 0)
}

// NewEllipseRotated builds an ellipse rotated clockwise by degrees.
func NewEllipseRotated(center Coord, width, height, degrees int) Ellipse {
	assertNonNegative("Ellipse", "width", width)
	assertNonNegative("Ellipse", "height", height)
	return Ellipse{
		center: center,
		top:    CoordFromAngle(center, height/2, degrees),
		right:  CoordFromAngle(center, width/2, degrees+90),
	}
}

// EllipseFromPoints builds an ellipse from [center, top, right].
func EllipseFromPoints(points []Coord) Ellipse {
	assertPointCount("Ellipse", points, 3)
	return Ellipse{center: points[0], top: points[1], right: points[2]}
}

// semi axes and rotation in float precision, used by the algorithms.

func (e Ellipse) semiX() float64 {
	return math.Hypot(float64(e.right.X-e.center.X), float64(e.right.Y-e.center.Y))
}

func (e Ellipse) semiY() float64 {
	return math.Hypot(float64(e.top.X-e.center.X), float64(e.top.Y-e.center.Y))
}

func (e Ellipse) rotationRads() float64 {
	dx := float64(e.top.X - e.center.X)
	dy := float64(e.top.Y - e.center.Y)
	if dx == 0 && dy == 0 {
		// Height zero leaves the angle to the top point undefined;
		// fall back to the right point.
		rx := float64(e.right.X - e.center.X)
		ry := float64(e.right.Y - e.center.Y)
		if rx == 0 && ry == 0 {
			return 0
		}
		return math.Atan2(rx, -ry) - math.Pi/2
	}
	return math.Atan2(dx, -dy)
}

// toLocal maps a world offset from the center into the ellipse's own
// axis-aligned frame.
func (e Ellipse) toLocal(dx, dy float64) (float64, float64) {
	sin, cos := math.Sincos(e.rotationRads())
	return cos*dx + sin*dy, -sin*dx + cos*dy
}

// toWorld maps a point in the ellipse's frame back to world pixels.
func (e Ellipse) toWorld(lx, ly float64) Coord {
	sin, cos := math.Sincos(e.rotationRads())
	return Coord{
		X: e.center.X + int(math.Round(cos*lx-sin*ly)),
		Y: e.center.Y + int(math.Round(sin*lx+cos*ly)),
	}
}

// Rotation is the clockwise angle of the ellipse in degrees, in
// [0, 360).
func (e Ellipse) Rotation() int {
	degrees := int(math.Round(e.rotationRads() * 180 / math.Pi))
	return ((degrees % 360) + 360) % 360
}

// Width is the horizontal extent of the (possibly rotated) ellipse.
func (e Ellipse) Width() int {
	return e.Right() - e.Left()
}

// Height is the vertical extent of the (possibly rotated) ellipse.
func (e Ellipse) Height() int {
	return e.Bottom() - e.Top()
}

func (e Ellipse) halfExtents() (float64, float64) {
	a, b := e.semiX(), e.semiY()
	sin, cos := math.Sincos(e.rotationRads())
	return math.Hypot(a*cos, b*sin), math.Hypot(a*sin, b*cos)
}

// Points returns [center, top, right].
func (e Ellipse) Points() []Coord {
	return []Coord{e.center, e.top, e.right}
}

func (e Ellipse) Contains(point Coord) bool {
	a, b := e.semiX(), e.semiY()
	lx, ly := e.toLocal(float64(point.X-e.center.X), float64(point.Y-e.center.Y))
	if a == 0 && b == 0 {
		return point == e.center
	}
	if a == 0 {
		return math.Abs(lx) < 0.5 && math.Abs(ly) <= b
	}
	if b == 0 {
		return math.Abs(ly) < 0.5 && math.Abs(lx) <= a
	}
	return (lx*lx)/(a*a)+(ly*ly)/(b*b) <= 1
}

func (e Ellipse) Center() Coord { return e.center }

func (e Ellipse) Left() int {
	hw, _ := e.halfExtents()
	return e.center.X - int(math.Round(hw))
}

func (e Ellipse) Right() int {
	hw, _ := e.halfExtents()
	return e.center.X + int(math.Round(hw))
}

func (e Ellipse) Top() int {
	_, hh := e.halfExtents()
	return e.center.Y - int(math.Round(hh))
}

func (e Ellipse) Bottom() int {
	_, hh := e.halfExtents()
	return e.center.Y + int(math.Round(hh))
}

func (e Ellipse) TranslateBy(delta Coord) Ellipse {
	return Ellipse{
		center: e.center.Add(delta),
		top:    e.top.Add(delta),
		right:  e.right.Add(delta),
	}
}

// MoveTo moves the center to point (the center is the first canonical
// point).
func (e Ellipse) MoveTo(point Coord) Ellipse {
	return e.TranslateBy(point.Sub(e.center))
}

func (e Ellipse) MoveCenterTo(point Coord) Ellipse {
	return e.MoveTo(point)
}

func (e Ellipse) Rotate(degrees int) Ellipse {
	return e.RotateAround(degrees, e.center)
}

func (e Ellipse) RotateAround(degrees int, pivot Coord) Ellipse {
	return EllipseFromPoints(rotatePoints(pivot, e.Points(), degrees))
}

func (e Ellipse) Scale(factor float64) Ellipse {
	return e.ScaleAround(factor, e.center)
}

func (e Ellipse) ScaleAround(factor float64, pivot Coord) Ellipse {
	return EllipseFromPoints(scalePoints(pivot, e.Points(), factor))
}

// OutlinePixels runs the two-region midpoint ellipse algorithm in the
// ellipse's own frame and rotates each generated point back into
// place.
func (e Ellipse) OutlinePixels() []Coord {
	rx := math.Round(e.semiX())
	ry := math.Round(e.semiY())
	if rx == 0 {
		// Degenerate axis collapses the outline to a line (or a
		// point).
		return e.AsVerticalLine().OutlinePixels()
	}
	if ry == 0 {
		return e.AsHorizontalLine().OutlinePixels()
	}

	set := newCoordSet()
	emit := func(x, y int) {
		set.insert(e.toWorld(float64(x), float64(y)))
		set.insert(e.toWorld(float64(-x), float64(y)))
		set.insert(e.toWorld(float64(x), float64(-y)))
		set.insert(e.toWorld(float64(-x), float64(-y)))
	}

	// Region 1: slope below 1.
	x, y := 0, int(ry)
	p1 := ry*ry - rx*rx*ry + 0.25*rx*rx
	dx := 0.0
	dy := 2 * rx * rx * float64(y)
	for dx < dy {
		emit(x, y)
		x++
		dx = 2 * ry * ry * float64(x)
		if p1 < 0 {
			p1 += dx + ry*ry
		} else {
			y--
			dy = 2 * rx * rx * float64(y)
			p1 += dx - dy + ry*ry
		}
	}

	// Region 2: slope 1 and above.
	p2 := ry*ry*(float64(x)+0.5)*(float64(x)+0.5) +
		rx*rx*(float64(y)-1)*(float64(y)-1) - rx*rx*ry*ry
	for y >= 0 {
		emit(x, y)
		y--
		dy = 2 * rx * rx * float64(y)
		if p2 > 0 {
			p2 += rx*rx - dy
		} else {
			x++
			dx = 2 * ry * ry * float64(x)
			p2 += dx - dy + rx*rx
		}
	}
	return set.slice()
}

// FilledPixels scans the local-frame bounding box testing the ellipse
// equation, mapping accepted pixels back to world space. The outline
// is unioned in so the boundary stays closed after rotation.
func (e Ellipse) FilledPixels() []Coord {
	a, b := e.semiX(), e.semiY()
	if a == 0 || b == 0 {
		return e.OutlinePixels()
	}
	set := newCoordSet()
	rx := int(math.Round(a))
	ry := int(math.Round(b))
	for ly := -ry; ly <= ry; ly++ {
		for lx := -rx; lx <= rx; lx++ {
			fx, fy := float64(lx), float64(ly)
			if (fx*fx)/(a*a)+(fy*fy)/(b*b) <= 1 {
				set.insert(e.toWorld(fx, fy))
			}
		}
	}
	set.insertAll(e.OutlinePixels())
	return set.slice()
}

func (e Ellipse) ToShapeBox() ShapeBox {
	return BoxEllipse(e)
}

// AsRect returns the bounding box.
func (e Ellipse) AsRect() Rect {
	return NewRect(Coord{X: e.Left(), Y: e.Top()}, Coord{X: e.Right(), Y: e.Bottom()})
}

// AsHorizontalLine is the full major-axis line through the center
// (local x axis, so it follows the rotation).
func (e Ellipse) AsHorizontalLine() Line {
	opposite := e.center.Add(e.center.Sub(e.right))
	return NewLine(opposite, e.right)
}

// AsVerticalLine is the full minor-axis line through the center
// (local y axis, so it follows the rotation).
func (e Ellipse) AsVerticalLine() Line {
	opposite := e.center.Add(e.center.Sub(e.top))
	return NewLine(opposite, e.top)
}

// AsRadiusLine is the line from the center to the top point.
func (e Ellipse) AsRadiusLine() Line {
	return NewLine(e.center, e.top)
}

// AsCircle returns the equivalent circle if both axes are equal.
func (e Ellipse) AsCircle() (Circle, bool) {
	rx := int(math.Round(e.semiX()))
	ry := int(math.Round(e.semiY()))
	if rx != ry {
		return Circle{}, false
	}
	return NewCircle(e.center, rx), true
}

// AsPolygon approximates the ellipse with segments points sampled at
// regular angular intervals.
func (e Ellipse) AsPolygon(segments int) Polygon {
	if segments < 3 {
		segments = 3
	}
	a, b := e.semiX(), e.semiY()
	points := make([]Coord, segments)
	for i := 0; i < segments; i++ {
		ang := 2 * math.Pi * float64(i) / float64(segments)
		points[i] = e.toWorld(a*math.Cos(ang), b*math.Sin(ang))
	}
	return NewPolygon(points)
}
