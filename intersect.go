package shapes

import "math"

// IntersectsShape is the pairwise boundary-intersection contract. Two
// shapes intersect when their boundaries touch or cross; a shape
// strictly inside another does not intersect it (see ContainsShape for
// that relation). The relation is symmetric for every pair of kinds.
type IntersectsShape interface {
	IntersectsLine(line Line) bool
	IntersectsRect(rect Rect) bool
	IntersectsCircle(circle Circle) bool
	IntersectsTriangle(triangle Triangle) bool
	IntersectsEllipse(ellipse Ellipse) bool
	IntersectsPolygon(polygon Polygon) bool
}

// ellipsePolygonSegments is the sampling density used when a curved
// predicate has to fall back to a discretized polygon.
const ellipsePolygonSegments = 36

// ellipseRefineLevels bounds the polygon refinement of the
// ellipse-circle test.
const ellipseRefineLevels = 10

// Segment-segment is the common denominator almost every composite
// pair reduces to: the classic four-orientation test plus
// collinear-overlap handling.

func orientation(p, q, r Coord) int {
	value := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case value > 0:
		return 1
	case value < 0:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether q, known to be collinear with p and r,
// lies within their span.
func onSegment(p, q, r Coord) bool {
	return minInt(p.X, r.X) <= q.X && q.X <= maxInt(p.X, r.X) &&
		minInt(p.Y, r.Y) <= q.Y && q.Y <= maxInt(p.Y, r.Y)
}

func segmentsIntersect(lhs, rhs Line) bool {
	p1, q1 := lhs.Start(), lhs.End()
	p2, q2 := rhs.Start(), rhs.End()

	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}
	// Collinear cases: an endpoint of one segment lies on the other.
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}
	return false
}

// lineCircle solves the quadratic formed by substituting the
// parametrized segment into the circle equation; the segment crosses
// the boundary iff a root lies in the half-open unit parameter
// interval.
func lineCircle(line Line, circle Circle) bool {
	if line.Type() == LinePoint {
		return circle.Contains(line.Start())
	}
	start := line.Start().Sub(circle.Center())
	delta := line.End().Sub(line.Start())

	a := float64(delta.Dot(delta))
	b := 2 * float64(start.Dot(delta))
	c := float64(start.Dot(start)) - float64(circle.Radius()*circle.Radius())

	disc := b*b - 4*a*c
	if disc < 0 {
		return false
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	return (t1 >= 0 && t1 < 1) || (t2 >= 0 && t2 < 1)
}

// lineEllipse translates and rotates the segment into the ellipse's
// own frame, then solves the same quadratic against the canonical
// ellipse equation.
func lineEllipse(line Line, ellipse Ellipse) bool {
	a := ellipse.semiX()
	b := ellipse.semiY()
	if a < 0.5 {
		// Width collapsed: the ellipse is just its minor-axis line.
		return segmentsIntersect(line, ellipse.AsVerticalLine())
	}
	if b < 0.5 {
		return segmentsIntersect(line, ellipse.AsHorizontalLine())
	}
	if line.Type() == LinePoint {
		return ellipse.Contains(line.Start())
	}

	center := ellipse.Center()
	sx, sy := ellipse.toLocal(float64(line.Start().X-center.X), float64(line.Start().Y-center.Y))
	ex, ey := ellipse.toLocal(float64(line.End().X-center.X), float64(line.End().Y-center.Y))
	dx := ex - sx
	dy := ey - sy

	qa := dx*dx/(a*a) + dy*dy/(b*b)
	qb := 2 * (sx*dx/(a*a) + sy*dy/(b*b))
	qc := sx*sx/(a*a) + sy*sy/(b*b) - 1

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return false
	}
	sq := math.Sqrt(disc)
	t1 := (-qb - sq) / (2 * qa)
	t2 := (-qb + sq) / (2 * qa)
	return (t1 >= 0 && t1 < 1) || (t2 >= 0 && t2 < 1)
}

// linesLines reports whether any segment of lhs intersects any segment
// of rhs.
func linesLines(lhs, rhs []Line) bool {
	for _, l := range lhs {
		for _, r := range rhs {
			if segmentsIntersect(l, r) {
				return true
			}
		}
	}
	return false
}

func lineAgainst(lines []Line, line Line) bool {
	for _, l := range lines {
		if segmentsIntersect(l, line) {
			return true
		}
	}
	return false
}

func linesCircle(lines []Line, circle Circle) bool {
	for _, l := range lines {
		if lineCircle(l, circle) {
			return true
		}
	}
	return false
}

func linesEllipse(lines []Line, ellipse Ellipse) bool {
	for _, l := range lines {
		if lineEllipse(l, ellipse) {
			return true
		}
	}
	return false
}

// circleCircle is intentionally the "one circle reaches into or over
// the other" predicate, not the classical sum-of-radii disk overlap:
// the distance between centers is compared against the larger radius
// alone. Two disjoint circles of similar size whose gap is smaller
// than either radius therefore do not intersect.
func circleCircle(lhs, rhs Circle) bool {
	return lhs.Center().Distance(rhs.Center()) <= maxInt(lhs.Radius(), rhs.Radius())
}

// ellipseCircle combines distance-based fast accept/reject bands with
// a bounded polygon-refinement fallback for the ambiguous band.
func ellipseCircle(ellipse Ellipse, circle Circle) bool {
	a := ellipse.semiX()
	b := ellipse.semiY()
	rMax := math.Max(a, b)
	rMin := math.Min(a, b)
	ec := ellipse.Center()
	cc := circle.Center()
	dist := math.Hypot(float64(cc.X-ec.X), float64(cc.Y-ec.Y))
	r := float64(circle.Radius())

	if dist > rMax+r {
		// Too far apart to touch.
		return false
	}
	if dist+r < rMin {
		// Circle fully inside the ellipse's inscribed circle.
		return false
	}
	if dist+rMax < r {
		// Ellipse fully inside the circle.
		return false
	}
	for level := 1; level <= ellipseRefineLevels; level++ {
		if linesCircle(ellipse.AsPolygon(8*level).AsLines(), circle) {
			return true
		}
	}
	return false
}

// Line

func (l Line) IntersectsLine(line Line) bool { return segmentsIntersect(l, line) }

func (l Line) IntersectsRect(rect Rect) bool { return lineAgainst(rect.AsLines(), l) }

func (l Line) IntersectsCircle(circle Circle) bool { return lineCircle(l, circle) }

func (l Line) IntersectsTriangle(triangle Triangle) bool {
	return lineAgainst(triangle.AsLines(), l)
}

func (l Line) IntersectsEllipse(ellipse Ellipse) bool { return lineEllipse(l, ellipse) }

func (l Line) IntersectsPolygon(polygon Polygon) bool {
	return lineAgainst(polygon.AsLines(), l)
}

// Rect

func (r Rect) IntersectsLine(line Line) bool { return lineAgainst(r.AsLines(), line) }

func (r Rect) IntersectsRect(rect Rect) bool {
	// Edge-decomposed like every other composite pair; coincident
	// rects hit the collinear-overlap branch of the segment test.
	return linesLines(r.AsLines(), rect.AsLines())
}

func (r Rect) IntersectsCircle(circle Circle) bool { return linesCircle(r.AsLines(), circle) }

func (r Rect) IntersectsTriangle(triangle Triangle) bool {
	return linesLines(r.AsLines(), triangle.AsLines())
}

func (r Rect) IntersectsEllipse(ellipse Ellipse) bool { return linesEllipse(r.AsLines(), ellipse) }

func (r Rect) IntersectsPolygon(polygon Polygon) bool {
	return linesLines(r.AsLines(), polygon.AsLines())
}

// Circle

func (c Circle) IntersectsLine(line Line) bool { return lineCircle(line, c) }

func (c Circle) IntersectsRect(rect Rect) bool { return linesCircle(rect.AsLines(), c) }

func (c Circle) IntersectsCircle(circle Circle) bool { return circleCircle(c, circle) }

func (c Circle) IntersectsTriangle(triangle Triangle) bool {
	return linesCircle(triangle.AsLines(), c)
}

func (c Circle) IntersectsEllipse(ellipse Ellipse) bool { return ellipseCircle(ellipse, c) }

func (c Circle) IntersectsPolygon(polygon Polygon) bool {
	return linesCircle(polygon.AsLines(), c)
}

// Triangle

func (t Triangle) IntersectsLine(line Line) bool { return lineAgainst(t.AsLines(), line) }

func (t Triangle) IntersectsRect(rect Rect) bool {
	return linesLines(t.AsLines(), rect.AsLines())
}

func (t Triangle) IntersectsCircle(circle Circle) bool { return linesCircle(t.AsLines(), circle) }

func (t Triangle) IntersectsTriangle(triangle Triangle) bool {
	return linesLines(t.AsLines(), triangle.AsLines())
}

func (t Triangle) IntersectsEllipse(ellipse Ellipse) bool {
	return linesEllipse(t.AsLines(), ellipse)
}

func (t Triangle) IntersectsPolygon(polygon Polygon) bool {
	return linesLines(t.AsLines(), polygon.AsLines())
}

// Ellipse

func (e Ellipse) IntersectsLine(line Line) bool { return lineEllipse(line, e) }

func (e Ellipse) IntersectsRect(rect Rect) bool { return linesEllipse(rect.AsLines(), e) }

func (e Ellipse) IntersectsCircle(circle Circle) bool { return ellipseCircle(e, circle) }

func (e Ellipse) IntersectsTriangle(triangle Triangle) bool {
	return linesEllipse(triangle.AsLines(), e)
}

func (e Ellipse) IntersectsEllipse(ellipse Ellipse) bool {
	return linesLines(
		e.AsPolygon(ellipsePolygonSegments).AsLines(),
		ellipse.AsPolygon(ellipsePolygonSegments).AsLines(),
	)
}

func (e Ellipse) IntersectsPolygon(polygon Polygon) bool {
	return linesEllipse(polygon.AsLines(), e)
}

// Polygon

func (p Polygon) IntersectsLine(line Line) bool { return lineAgainst(p.AsLines(), line) }

func (p Polygon) IntersectsRect(rect Rect) bool {
	return linesLines(p.AsLines(), rect.AsLines())
}

func (p Polygon) IntersectsCircle(circle Circle) bool { return linesCircle(p.AsLines(), circle) }

func (p Polygon) IntersectsTriangle(triangle Triangle) bool {
	return linesLines(p.AsLines(), triangle.AsLines())
}

func (p Polygon) IntersectsEllipse(ellipse Ellipse) bool { return linesEllipse(p.AsLines(), ellipse) }

func (p Polygon) IntersectsPolygon(polygon Polygon) bool {
	return linesLines(p.AsLines(), polygon.AsLines())
}
