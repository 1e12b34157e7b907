package shapes

import "math"

// Circle is a center and a non-negative radius.
type Circle struct {
	center Coord
	radius int
}

func NewCircle(center Coord, radius int) Circle {
	assertNonNegative("Circle", "radius", radius)
	return Circle{center: center, radius: radius}
}

// CircleFromPoints builds a circle from [center, edge]; the radius is
// the distance between them.
func CircleFromPoints(points []Coord) Circle {
	assertPointCount("Circle", points, 2)
	return NewCircle(points[0], points[0].Distance(points[1]))
}

// Radius is the distance from center to edge.
func (c Circle) Radius() int { return c.radius }

// Points returns [center, edge at 0 degrees] (the top of the circle).
func (c Circle) Points() []Coord {
	return []Coord{c.center, CoordFromAngle(c.center, c.radius, 0)}
}

func (c Circle) Contains(point Coord) bool {
	return c.center.Distance(point) <= c.radius
}

func (c Circle) Center() Coord { return c.center }

func (c Circle) Left() int { return c.center.X - c.radius }

func (c Circle) Right() int { return c.center.X + c.radius }

func (c Circle) Top() int { return c.center.Y - c.radius }

func (c Circle) Bottom() int { return c.center.Y + c.radius }

func (c Circle) TranslateBy(delta Coord) Circle {
	return Circle{center: c.center.Add(delta), radius: c.radius}
}

// MoveTo moves the center to point (the center is the first canonical
// point).
func (c Circle) MoveTo(point Coord) Circle {
	return Circle{center: point, radius: c.radius}
}

func (c Circle) MoveCenterTo(point Coord) Circle {
	return c.MoveTo(point)
}

func (c Circle) Rotate(degrees int) Circle {
	return c.RotateAround(degrees, c.center)
}

func (c Circle) RotateAround(degrees int, pivot Coord) Circle {
	return CircleFromPoints(rotatePoints(pivot, c.Points(), degrees))
}

func (c Circle) Scale(factor float64) Circle {
	return c.ScaleAround(factor, c.center)
}

func (c Circle) ScaleAround(factor float64, pivot Coord) Circle {
	return CircleFromPoints(scalePoints(pivot, c.Points(), factor))
}

// OutlinePixels rasterizes the boundary with the midpoint circle
// algorithm, emitting the 8-way symmetric point set per step.
func (c Circle) OutlinePixels() []Coord {
	set := newCoordSet()
	cx, cy := c.center.X, c.center.Y
	x, y := c.radius, 0
	d := 1 - c.radius
	for x >= y {
		set.insert(Coord{X: cx + x, Y: cy + y})
		set.insert(Coord{X: cx - x, Y: cy + y})
		set.insert(Coord{X: cx + x, Y: cy - y})
		set.insert(Coord{X: cx - x, Y: cy - y})
		set.insert(Coord{X: cx + y, Y: cy + x})
		set.insert(Coord{X: cx - y, Y: cy + x})
		set.insert(Coord{X: cx + y, Y: cy - x})
		set.insert(Coord{X: cx - y, Y: cy - x})
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
	return set.slice()
}

// FilledPixels scans each row's half width and mirrors it across both
// axes. The outline is unioned in because the midpoint algorithm and
// the row rounding can disagree by a pixel near the poles.
func (c Circle) FilledPixels() []Coord {
	set := newCoordSet()
	r := float64(c.radius)
	for dy := 0; dy <= c.radius; dy++ {
		half := int(math.Round(math.Sqrt(r*r - float64(dy*dy))))
		for dx := -half; dx <= half; dx++ {
			set.insert(Coord{X: c.center.X + dx, Y: c.center.Y + dy})
			set.insert(Coord{X: c.center.X + dx, Y: c.center.Y - dy})
		}
	}
	set.insertAll(c.OutlinePixels())
	return set.slice()
}

func (c Circle) ToShapeBox() ShapeBox {
	return BoxCircle(c)
}

// AsRect returns the bounding box.
func (c Circle) AsRect() Rect {
	return NewRect(Coord{X: c.Left(), Y: c.Top()}, Coord{X: c.Right(), Y: c.Bottom()})
}

func (c Circle) AsEllipse() Ellipse {
	return NewEllipse(c.center, c.radius*2, c.radius*2)
}

// AsPolygon approximates the circle with segments points at regular
// angular intervals.
func (c Circle) AsPolygon(segments int) Polygon {
	return c.AsEllipse().AsPolygon(segments)
}
