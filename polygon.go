package shapes

import (
	"math"
	"sort"
)

// Polygon is an ordered list of at least three points with an implicit
// closing edge from the last point back to the first. Convexity and
// regularity are computed once at construction; a polygon is never
// mutated, so any transform rebuilds a new polygon with fresh flags.
type Polygon struct {
	points    []Coord
	center    Coord
	isConvex  bool
	isRegular bool
}

func NewPolygon(points []Coord) Polygon {
	assertPointCount("Polygon", points, 3)
	copied := make([]Coord, len(points))
	copy(copied, points)
	p := Polygon{
		points:   copied,
		isConvex: isConvex(copied),
	}
	p.center = Coord{X: p.Left(), Y: p.Top()}.MidPoint(Coord{X: p.Right(), Y: p.Bottom()})
	p.isRegular = isRegular(copied, p.center)
	return p
}

// PolygonFromPoints is NewPolygon; the canonical points are the corner
// list itself.
func PolygonFromPoints(points []Coord) Polygon {
	return NewPolygon(points)
}

func isConvex(points []Coord) bool {
	prev := 0
	n := len(points)
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[circularIndex(i+1, n)]
		c := points[circularIndex(i+2, n)]
		product := b.Sub(a).Cross(c.Sub(a))
		if product != 0 {
			if product*prev < 0 {
				return false
			}
			prev = product
		}
	}
	return true
}

func isRegular(points []Coord, center Coord) bool {
	first := points[0].Distance(center)
	for _, p := range points[1:] {
		if p.Distance(center) != first {
			return false
		}
	}
	return true
}

// IsConvex reports whether every corner turns the same way.
func (p Polygon) IsConvex() bool { return p.isConvex }

// IsRegular reports whether all corners are equidistant from the
// center.
func (p Polygon) IsRegular() bool { return p.isRegular }

// PointClosestToCenter returns the corner nearest the center.
func (p Polygon) PointClosestToCenter() Coord {
	best := p.points[0]
	bestDist := best.Distance(p.center)
	for _, pt := range p.points[1:] {
		if d := pt.Distance(p.center); d < bestDist {
			best, bestDist = pt, d
		}
	}
	return best
}

// PointFarthestFromCenter returns the corner farthest from the center.
func (p Polygon) PointFarthestFromCenter() Coord {
	best := p.points[0]
	bestDist := best.Distance(p.center)
	for _, pt := range p.points[1:] {
		if d := pt.Distance(p.center); d > bestDist {
			best, bestDist = pt, d
		}
	}
	return best
}

func (p Polygon) Points() []Coord {
	out := make([]Coord, len(p.points))
	copy(out, p.points)
	return out
}

// Contains uses the even-odd crossing rule.
func (p Polygon) Contains(point Coord) bool {
	px := float64(point.X)
	py := float64(point.Y)
	n := len(p.points)
	j := n - 1
	inside := false
	for i := 0; i < n; i++ {
		ix := float64(p.points[i].X)
		iy := float64(p.points[i].Y)
		jx := float64(p.points[j].X)
		jy := float64(p.points[j].Y)
		if (iy < py && jy >= py || jy < py && iy >= py) && (ix <= px || jx <= px) {
			if ix+(py-iy)/(jy-iy)*(jx-ix) < px {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

func (p Polygon) Center() Coord { return p.center }

func (p Polygon) Left() int { return pointsLeft(p.points) }

func (p Polygon) Right() int { return pointsRight(p.points) }

func (p Polygon) Top() int { return pointsTop(p.points) }

func (p Polygon) Bottom() int { return pointsBottom(p.points) }

func (p Polygon) TranslateBy(delta Coord) Polygon {
	return NewPolygon(translatePoints(delta, p.points))
}

// MoveTo moves the polygon's first point to point.
func (p Polygon) MoveTo(point Coord) Polygon {
	return p.TranslateBy(moveToDelta(p, point))
}

func (p Polygon) MoveCenterTo(point Coord) Polygon {
	return p.TranslateBy(point.Sub(p.center))
}

func (p Polygon) Rotate(degrees int) Polygon {
	return p.RotateAround(degrees, p.center)
}

func (p Polygon) RotateAround(degrees int, pivot Coord) Polygon {
	return NewPolygon(rotatePoints(pivot, p.points, degrees))
}

func (p Polygon) Scale(factor float64) Polygon {
	return p.ScaleAround(factor, p.center)
}

func (p Polygon) ScaleAround(factor float64, pivot Coord) Polygon {
	return NewPolygon(scalePoints(pivot, p.points, factor))
}

func (p Polygon) OutlinePixels() []Coord {
	set := newCoordSet()
	for _, line := range p.AsLines() {
		set.insertAll(line.OutlinePixels())
	}
	return set.slice()
}

// FilledPixels runs a scan-line fill: for every integer scanline the x
// crossings of each edge are collected, sorted, and filled pairwise.
// The outline is unioned in to keep the boundary closed.
func (p Polygon) FilledPixels() []Coord {
	set := newCoordSet()
	top, bottom := p.Top(), p.Bottom()
	n := len(p.points)
	for y := top; y <= bottom; y++ {
		fy := float64(y)
		var crossings []float64
		for i := 0; i < n; i++ {
			a := p.points[i]
			b := p.points[circularIndex(i+1, n)]
			if a.Y == b.Y {
				continue
			}
			ay, by := float64(a.Y), float64(b.Y)
			// Half-open span so a scanline through a vertex counts
			// the crossing exactly once.
			if fy >= math.Min(ay, by) && fy < math.Max(ay, by) {
				t := (fy - ay) / (by - ay)
				crossings = append(crossings, float64(a.X)+t*float64(b.X-a.X))
			}
		}
		sort.Float64s(crossings)
		for i := 0; i+1 < len(crossings); i += 2 {
			start := int(math.Round(crossings[i]))
			end := int(math.Round(crossings[i+1]))
			set.insertAll(horizontalPixels(start, end, y))
		}
	}
	set.insertAll(p.OutlinePixels())
	return set.slice()
}

func (p Polygon) ToShapeBox() ShapeBox {
	return BoxPolygon(p)
}

// AsLines returns every edge including the closing edge.
func (p Polygon) AsLines() []Line {
	n := len(p.points)
	lines := make([]Line, n)
	for i := 0; i < n; i++ {
		lines[i] = NewLine(p.points[i], p.points[circularIndex(i+1, n)])
	}
	return lines
}

// AsInnerCircle creates a circle from the center to the closest
// corner.
func (p Polygon) AsInnerCircle() Circle {
	return CircleFromPoints([]Coord{p.center, p.PointClosestToCenter()})
}

// AsOuterCircle creates a circle from the center to the farthest
// corner.
func (p Polygon) AsOuterCircle() Circle {
	return CircleFromPoints([]Coord{p.center, p.PointFarthestFromCenter()})
}

// AsAvgCircle creates a circle using the average corner distance from
// the center.
func (p Polygon) AsAvgCircle() Circle {
	total := 0
	for _, pt := range p.points {
		total += pt.Distance(p.center)
	}
	return NewCircle(p.center, total/len(p.points))
}

// AsCircle returns a circle from the center to the first corner if the
// polygon is regular.
func (p Polygon) AsCircle() (Circle, bool) {
	if !p.isRegular {
		return Circle{}, false
	}
	return CircleFromPoints([]Coord{p.center, p.points[0]}), true
}

// AsRect returns the bounding box.
func (p Polygon) AsRect() Rect {
	return NewRect(Coord{X: p.Left(), Y: p.Top()}, Coord{X: p.Right(), Y: p.Bottom()})
}

// AsTriangles cuts a convex polygon into a fan of triangles from the
// center to each edge. Non-convex polygons are not decomposed.
func (p Polygon) AsTriangles() ([]Triangle, bool) {
	if !p.isConvex {
		return nil, false
	}
	n := len(p.points)
	out := make([]Triangle, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, NewTriangle(p.points[i], p.points[circularIndex(i+1, n)], p.center))
	}
	return out, true
}
