package shapes

import (
	"math"
	"sort"
)

// TriangleAngleType classifies a triangle by its angles.
type TriangleAngleType int

const (
	AngleAcute TriangleAngleType = iota
	AngleRight
	AngleObtuse
	AngleEquiangular
	AngleOther
)

func (t TriangleAngleType) String() string {
	switch t {
	case AngleAcute:
		return "Acute"
	case AngleRight:
		return "Right"
	case AngleObtuse:
		return "Obtuse"
	case AngleEquiangular:
		return "Equiangular"
	default:
		return "Other"
	}
}

// TriangleSideType classifies a triangle by its side lengths.
type TriangleSideType int

const (
	SideEquilateral TriangleSideType = iota
	SideIsosceles
	SideScalene
)

func (t TriangleSideType) String() string {
	switch t {
	case SideEquilateral:
		return "Equilateral"
	case SideIsosceles:
		return "Isosceles"
	default:
		return "Scalene"
	}
}

// AnglePosition positions the right angle of RightAngleTriangle.
type AnglePosition int

const (
	PositionTopLeft AnglePosition = iota
	PositionTopRight
	PositionBottomRight
	PositionBottomLeft
	PositionTop
	PositionRight
	PositionBottom
	PositionLeft
)

// FlatSide positions the flat edge of EquilateralTriangle.
type FlatSide int

const (
	FlatTop FlatSide = iota
	FlatBottom
	FlatLeft
	FlatRight
)

// Triangle is three corner points with their classification computed
// at construction.
type Triangle struct {
	points    [3]Coord
	angles    [3]int
	angleType TriangleAngleType
	sideType  TriangleSideType
	center    Coord
}

func NewTriangle(p1, p2, p3 Coord) Triangle {
	points := [3]Coord{p1, p2, p3}
	angles := [3]int{
		points[0].AngleTo(points[1]),
		points[1].AngleTo(points[2]),
		points[2].AngleTo(points[0]),
	}
	t := Triangle{
		points:    points,
		angles:    angles,
		angleType: classifyAngles(angles),
		sideType:  classifySides(points),
	}
	t.center = Coord{X: t.Left(), Y: t.Top()}.MidPoint(Coord{X: t.Right(), Y: t.Bottom()})
	return t
}

// TriangleFromPoints builds a triangle from its three corners.
func TriangleFromPoints(points []Coord) Triangle {
	assertPointCount("Triangle", points, 3)
	return NewTriangle(points[0], points[1], points[2])
}

func classifyAngles(angles [3]int) TriangleAngleType {
	abs := [3]int{absInt(angles[0]), absInt(angles[1]), absInt(angles[2])}
	switch {
	case abs[0] == 90 || abs[1] == 90 || abs[2] == 90:
		return AngleRight
	case abs[0] < 90 && abs[1] < 90 && abs[2] < 90:
		return AngleAcute
	case abs[0] == abs[1] && abs[1] == abs[2]:
		return AngleEquiangular
	case abs[0] > 90 || abs[1] > 90 || abs[2] > 90:
		return AngleObtuse
	default:
		return AngleOther
	}
}

func classifySides(points [3]Coord) TriangleSideType {
	ab := points[0].Distance(points[1])
	bc := points[1].Distance(points[2])
	ca := points[2].Distance(points[0])
	switch {
	case ab == bc && bc == ca:
		return SideEquilateral
	case ab == bc || bc == ca || ca == ab:
		return SideIsosceles
	default:
		return SideScalene
	}
}

// RightAngleTriangle creates an isosceles right-angle triangle with
// the right angle at angleCoord, pointed per position.
func RightAngleTriangle(angleCoord Coord, size int, position AnglePosition) Triangle {
	assertNonNegative("Triangle", "size", size)
	p := angleCoord
	left := p.X - size
	right := p.X + size
	top := p.Y - size
	bottom := p.Y + size
	half := size / 2
	switch position {
	case PositionTopLeft:
		return NewTriangle(p, Coord{X: right, Y: p.Y}, Coord{X: p.X, Y: bottom})
	case PositionTopRight:
		return NewTriangle(p, Coord{X: left, Y: p.Y}, Coord{X: p.X, Y: bottom})
	case PositionBottomRight:
		return NewTriangle(p, Coord{X: left, Y: p.Y}, Coord{X: p.X, Y: top})
	case PositionBottomLeft:
		return NewTriangle(p, Coord{X: right, Y: p.Y}, Coord{X: p.X, Y: top})
	case PositionTop:
		return NewTriangle(p, p.Add(Coord{X: -half, Y: half}), p.Add(Coord{X: half, Y: half}))
	case PositionRight:
		return NewTriangle(p, p.Sub(Coord{X: half, Y: half}), p.Add(Coord{X: -half, Y: half}))
	case PositionBottom:
		return NewTriangle(p, p.Sub(Coord{X: half, Y: half}), p.Add(Coord{X: half, Y: -half}))
	default: // PositionLeft
		return NewTriangle(p, p.Add(Coord{X: half, Y: -half}), p.Add(Coord{X: half, Y: half}))
	}
}

// EquilateralTriangle creates a triangle with width and height of size
// around center, with its flat edge on the given side.
func EquilateralTriangle(center Coord, size int, side FlatSide) Triangle {
	assertNonNegative("Triangle", "size", size)
	dist := size / 2
	left := center.X - dist
	right := center.X + dist
	top := center.Y - dist
	bottom := center.Y + dist
	switch side {
	case FlatTop:
		return NewTriangle(Coord{X: left, Y: top}, Coord{X: right, Y: top}, Coord{X: center.X, Y: bottom})
	case FlatBottom:
		return NewTriangle(Coord{X: left, Y: bottom}, Coord{X: right, Y: bottom}, Coord{X: center.X, Y: top})
	case FlatLeft:
		return NewTriangle(Coord{X: left, Y: top}, Coord{X: left, Y: bottom}, Coord{X: right, Y: center.Y})
	default: // FlatRight
		return NewTriangle(Coord{X: right, Y: top}, Coord{X: right, Y: bottom}, Coord{X: left, Y: center.Y})
	}
}

// Angles returns the stored angle of each edge, corner to corner.
func (t Triangle) Angles() [3]int { return t.angles }

func (t Triangle) AngleType() TriangleAngleType { return t.angleType }

func (t Triangle) SideType() TriangleSideType { return t.sideType }

func (t Triangle) Points() []Coord {
	return []Coord{t.points[0], t.points[1], t.points[2]}
}

// Contains uses the barycentric sign test; boundary points are inside.
func (t Triangle) Contains(point Coord) bool {
	p1 := t.points[1].Sub(t.points[0])
	p2 := t.points[2].Sub(t.points[0])
	q := point.Sub(t.points[0])

	denom := float64(p1.Cross(p2))
	// Collinear corners have no interior; NaN comparisons below stay
	// false for the denom == 0 case as well, but be explicit.
	if denom == 0 {
		return false
	}
	s := float64(q.Cross(p2)) / denom
	u := float64(p1.Cross(q)) / denom
	return s >= 0 && u >= 0 && s+u <= 1
}

func (t Triangle) Center() Coord { return t.center }

func (t Triangle) Left() int { return pointsLeft(t.points[:]) }

func (t Triangle) Right() int { return pointsRight(t.points[:]) }

func (t Triangle) Top() int { return pointsTop(t.points[:]) }

func (t Triangle) Bottom() int { return pointsBottom(t.points[:]) }

func (t Triangle) TranslateBy(delta Coord) Triangle {
	return TriangleFromPoints(translatePoints(delta, t.Points()))
}

// MoveTo moves the triangle's first corner to point.
func (t Triangle) MoveTo(point Coord) Triangle {
	return t.TranslateBy(moveToDelta(t, point))
}

func (t Triangle) MoveCenterTo(point Coord) Triangle {
	return t.TranslateBy(point.Sub(t.center))
}

func (t Triangle) Rotate(degrees int) Triangle {
	return t.RotateAround(degrees, t.center)
}

func (t Triangle) RotateAround(degrees int, pivot Coord) Triangle {
	return TriangleFromPoints(rotatePoints(pivot, t.Points(), degrees))
}

func (t Triangle) Scale(factor float64) Triangle {
	return t.ScaleAround(factor, t.center)
}

func (t Triangle) ScaleAround(factor float64, pivot Coord) Triangle {
	return TriangleFromPoints(scalePoints(pivot, t.Points(), factor))
}

func (t Triangle) OutlinePixels() []Coord {
	set := newCoordSet()
	for _, line := range t.AsLines() {
		set.insertAll(line.OutlinePixels())
	}
	return set.slice()
}

// FilledPixels splits the triangle into a flat-bottom and a flat-top
// half and walks the edges of each. The outline is unioned in so the
// corners and edges are always present regardless of slope rounding.
func (t Triangle) FilledPixels() []Coord {
	set := newCoordSet()
	pts := t.Points()
	sortByY(pts)
	p0 := fpoint{float64(pts[0].X), float64(pts[0].Y)}
	p1 := fpoint{float64(pts[1].X), float64(pts[1].Y)}
	p2 := fpoint{float64(pts[2].X), float64(pts[2].Y)}
	switch {
	case p1.y == p2.y:
		fillFlatBottom(set, p0, p1, p2)
	case p0.y == p1.y:
		fillFlatTop(set, p0, p1, p2)
	default:
		// Split at the long edge's crossing of the middle point's
		// scanline.
		mid := fpoint{
			x: p0.x + (p1.y-p0.y)/(p2.y-p0.y)*(p2.x-p0.x),
			y: p1.y,
		}
		fillFlatBottom(set, p0, p1, mid)
		fillFlatTop(set, p1, mid, p2)
	}
	set.insertAll(t.OutlinePixels())
	return set.slice()
}

type fpoint struct {
	x, y float64
}

// fillFlatBottom walks from the apex down to the flat edge shared by b
// and c.
func fillFlatBottom(set coordSet, apex, b, c fpoint) {
	slope1 := (b.x - apex.x) / (b.y - apex.y)
	slope2 := (c.x - apex.x) / (c.y - apex.y)
	x1, x2 := apex.x, apex.x
	for y := int(apex.y); y <= int(b.y); y++ {
		set.insertAll(horizontalPixels(int(math.Round(math.Min(x1, x2))), int(math.Round(math.Max(x1, x2))), y))
		x1 += slope1
		x2 += slope2
	}
}

// fillFlatTop walks from the bottom apex up to the flat edge shared by
// a and b.
func fillFlatTop(set coordSet, a, b, apex fpoint) {
	slope1 := (apex.x - a.x) / (apex.y - a.y)
	slope2 := (apex.x - b.x) / (apex.y - b.y)
	x1, x2 := apex.x, apex.x
	for y := int(apex.y); y >= int(a.y); y-- {
		set.insertAll(horizontalPixels(int(math.Round(math.Min(x1, x2))), int(math.Round(math.Max(x1, x2))), y))
		x1 -= slope1
		x2 -= slope2
	}
}

func sortByY(points []Coord) {
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y == points[j].Y {
			return points[i].X < points[j].X
		}
		return points[i].Y < points[j].Y
	})
}

func (t Triangle) ToShapeBox() ShapeBox {
	return BoxTriangle(t)
}

// AsRect returns the bounding box.
func (t Triangle) AsRect() Rect {
	return NewRect(Coord{X: t.Left(), Y: t.Top()}, Coord{X: t.Right(), Y: t.Bottom()})
}

// AsLines returns the three edges.
func (t Triangle) AsLines() []Line {
	return []Line{
		NewLine(t.points[0], t.points[1]),
		NewLine(t.points[1], t.points[2]),
		NewLine(t.points[2], t.points[0]),
	}
}

func (t Triangle) AsPolygon() Polygon {
	return NewPolygon(t.Points())
}
