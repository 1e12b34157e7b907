package shapes

// ContainsShape is the pairwise containment contract. A shape contains
// another when the other lies entirely inside it; touching the
// boundary from the outside is not containment, and for intersecting
// pairs (boundaries crossing) neither contains the other.
type ContainsShape interface {
	ContainsLine(line Line) bool
	ContainsRect(rect Rect) bool
	ContainsCircle(circle Circle) bool
	ContainsTriangle(triangle Triangle) bool
	ContainsEllipse(ellipse Ellipse) bool
	ContainsPolygon(polygon Polygon) bool
}

// containsPoints is the default containment test: every canonical
// point of other lies inside s. For convex containers and shapes whose
// canonical points bound them this is exact; curved and concave cases
// override it below.
func containsPoints(s Shape, other Shape) bool {
	for _, p := range other.Points() {
		if !s.Contains(p) {
			return false
		}
	}
	return true
}

// Line
//
// A line only contains shapes that are degenerate enough to lie on it
// exactly; everything with area is out.

func (l Line) ContainsLine(line Line) bool {
	return (l.start == line.start || l.start == line.end) &&
		(l.end == line.start || l.end == line.end)
}

func (l Line) ContainsRect(rect Rect) bool {
	tl := rect.TopLeft()
	br := rect.BottomRight()
	switch l.Type() {
	case LinePoint:
		return l.start == tl && l.start == br
	case LineHorizontal, LineVertical:
		// A zero-width or zero-height rect is a segment; it must span
		// the same endpoints.
		return (l.start == tl && l.end == br) || (l.end == tl && l.start == br)
	default:
		return false
	}
}

func (l Line) ContainsCircle(circle Circle) bool { return false }

func (l Line) ContainsTriangle(triangle Triangle) bool { return false }

func (l Line) ContainsEllipse(ellipse Ellipse) bool { return false }

func (l Line) ContainsPolygon(polygon Polygon) bool { return false }

// Rect

func (r Rect) ContainsLine(line Line) bool { return containsPoints(r, line) }

func (r Rect) ContainsRect(rect Rect) bool { return containsPoints(r, rect) }

// ContainsCircle holds when the center is inside and the circle's
// boundary never reaches an edge.
func (r Rect) ContainsCircle(circle Circle) bool {
	return r.Contains(circle.Center()) && !r.IntersectsCircle(circle)
}

func (r Rect) ContainsTriangle(triangle Triangle) bool { return containsPoints(r, triangle) }

func (r Rect) ContainsEllipse(ellipse Ellipse) bool {
	return r.Contains(ellipse.Center()) && !r.IntersectsEllipse(ellipse)
}

func (r Rect) ContainsPolygon(polygon Polygon) bool { return containsPoints(r, polygon) }

// Circle

func (c Circle) ContainsLine(line Line) bool { return containsPoints(c, line) }

func (c Circle) ContainsRect(rect Rect) bool { return containsPoints(c, rect) }

// ContainsCircle is strict: the inner boundary must stay clear of the
// outer one, so touching internally does not count.
func (c Circle) ContainsCircle(circle Circle) bool {
	return c.Center().Distance(circle.Center()) < absInt(c.Radius()-circle.Radius())
}

func (c Circle) ContainsTriangle(triangle Triangle) bool { return containsPoints(c, triangle) }

func (c Circle) ContainsEllipse(ellipse Ellipse) bool {
	return containsPoints(c, ellipse.AsPolygon(ellipsePolygonSegments))
}

func (c Circle) ContainsPolygon(polygon Polygon) bool { return containsPoints(c, polygon) }

// Triangle

func (t Triangle) ContainsLine(line Line) bool { return containsPoints(t, line) }

func (t Triangle) ContainsRect(rect Rect) bool { return containsPoints(t, rect) }

func (t Triangle) ContainsCircle(circle Circle) bool {
	return t.Contains(circle.Center()) && !t.IntersectsCircle(circle)
}

func (t Triangle) ContainsTriangle(triangle Triangle) bool { return containsPoints(t, triangle) }

func (t Triangle) ContainsEllipse(ellipse Ellipse) bool {
	return t.Contains(ellipse.Center()) && !t.IntersectsEllipse(ellipse)
}

func (t Triangle) ContainsPolygon(polygon Polygon) bool { return containsPoints(t, polygon) }

// Ellipse

func (e Ellipse) ContainsLine(line Line) bool { return containsPoints(e, line) }

func (e Ellipse) ContainsRect(rect Rect) bool {
	// The rect's canonical points are two opposite corners; test all
	// four.
	return containsPoints(e, rect.AsPolygon())
}

func (e Ellipse) ContainsCircle(circle Circle) bool {
	return e.Contains(circle.Center()) && !e.IntersectsCircle(circle)
}

func (e Ellipse) ContainsTriangle(triangle Triangle) bool { return containsPoints(e, triangle) }

func (e Ellipse) ContainsEllipse(ellipse Ellipse) bool {
	return containsPoints(e, ellipse.AsPolygon(ellipsePolygonSegments)) &&
		!e.IntersectsEllipse(ellipse)
}

func (e Ellipse) ContainsPolygon(polygon Polygon) bool { return containsPoints(e, polygon) }

// Polygon
//
// A concave polygon can contain every corner of a shape whose edges
// still leave it, so the corner test is paired with an edge
// intersection check.

func (p Polygon) ContainsLine(line Line) bool {
	return containsPoints(p, line) && !p.IntersectsLine(line)
}

func (p Polygon) ContainsRect(rect Rect) bool {
	return containsPoints(p, rect.AsPolygon()) && !p.IntersectsRect(rect)
}

func (p Polygon) ContainsCircle(circle Circle) bool {
	return p.Contains(circle.Center()) && !p.IntersectsCircle(circle)
}

func (p Polygon) ContainsTriangle(triangle Triangle) bool {
	return containsPoints(p, triangle) && !p.IntersectsTriangle(triangle)
}

func (p Polygon) ContainsEllipse(ellipse Ellipse) bool {
	return p.Contains(ellipse.Center()) && !p.IntersectsEllipse(ellipse)
}

func (p Polygon) ContainsPolygon(polygon Polygon) bool {
	return containsPoints(p, polygon) && !p.IntersectsPolygon(polygon)
}
