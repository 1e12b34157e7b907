package shapes

// Shape is the capability contract every concrete kind implements.
//
// Points returns the canonical point list: the minimal ordered set of
// coords from which the shape can be reconstructed with the kind's
// FromPoints constructor (LineFromPoints, RectFromPoints, and so on).
// The round-trip law holds for every kind:
//
//	LineFromPoints(line.Points()) == line
//
// Contains is boundary inclusive except where a kind documents
// otherwise (Rect is half open on its far edges).
//
// Transform methods (TranslateBy, Rotate, Scale, ...) are typed per
// concrete kind so they can return the concrete type; they are all
// pure and built from the shared point-transform helpers below.
type Shape interface {
	// Points returns the canonical points the shape is made of.
	Points() []Coord
	// Contains returns true if point is within or on the shape.
	Contains(point Coord) bool
	// Center of the shape.
	Center() Coord
	// Left returns the x of the left-most point.
	Left() int
	// Right returns the x of the right-most point.
	Right() int
	// Top returns the y of the top-most point.
	Top() int
	// Bottom returns the y of the bottom-most point.
	Bottom() int
	// OutlinePixels returns the pixels of the shape's boundary. The
	// result is deduplicated and unordered.
	OutlinePixels() []Coord
	// FilledPixels returns the pixels of the whole shape, boundary
	// included. The result is deduplicated and unordered.
	FilledPixels() []Coord
	// ToShapeBox wraps a copy of the shape in the tagged union.
	ToShapeBox() ShapeBox
}

// Generic algorithms shared by the concrete kinds. Each kind's
// transform calls these and rebuilds itself via its FromPoints
// constructor, unless it has a specialized form (Rect snaps rotation
// to quarter turns, Circle and Ellipse translate directly).

func translatePoints(delta Coord, points []Coord) []Coord {
	out := make([]Coord, len(points))
	for i, p := range points {
		out[i] = p.Add(delta)
	}
	return out
}

// rotatePoints rotates points around center by degrees (clockwise).
// Distances and angles are rounded to integers, so repeated rotation
// accumulates rounding; rotating by a multiple of 90 on axis-aligned
// geometry is exact.
func rotatePoints(center Coord, points []Coord, degrees int) []Coord {
	out := make([]Coord, len(points))
	for i, p := range points {
		dist := center.Distance(p)
		angle := center.AngleTo(p)
		out[i] = CoordFromAngle(center, dist, angle+degrees)
	}
	return out
}

// scalePoints moves points towards or away from center by factor. The
// resulting distances are center.Distance(p) * factor at the same
// angle.
func scalePoints(center Coord, points []Coord, factor float64) []Coord {
	out := make([]Coord, len(points))
	for i, p := range points {
		dist := float64(center.Distance(p)) * factor
		if dist < 0 {
			dist = 0
		}
		angle := center.AngleTo(p)
		out[i] = CoordFromAngle(center, int(dist+0.5), angle)
	}
	return out
}

// moveToDelta gives the translation that puts the first canonical
// point at target.
func moveToDelta(s Shape, target Coord) Coord {
	return target.Sub(s.Points()[0])
}

// Bounding extent over a point list; kinds without a closed form for
// their bounds use these.

func pointsLeft(points []Coord) int {
	min := points[0].X
	for _, p := range points[1:] {
		if p.X < min {
			min = p.X
		}
	}
	return min
}

func pointsRight(points []Coord) int {
	max := points[0].X
	for _, p := range points[1:] {
		if p.X > max {
			max = p.X
		}
	}
	return max
}

func pointsTop(points []Coord) int {
	min := points[0].Y
	for _, p := range points[1:] {
		if p.Y < min {
			min = p.Y
		}
	}
	return min
}

func pointsBottom(points []Coord) int {
	max := points[0].Y
	for _, p := range points[1:] {
		if p.Y > max {
			max = p.Y
		}
	}
	return max
}
