// Package shapes provides 2D geometry primitives for simple graphics:
// points, lines, rects, circles, ellipses, triangles and polygons, with
// transforms, containment and intersection predicates, and pixel
// rasterization.
//
// All geometry is stored as integer coordinates. Floats appear only
// inside algorithms and are rounded back to integers before they are
// returned, so every shape value is exact, hashable and cheap to copy.
package shapes

import "math"

// Coord is an integer 2D coordinate. It is an immutable value type; all
// methods return new values.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoord(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// CoordFromAngle projects from center by distance at the given angle.
// Angles are in degrees, 0 is up (negative y) and they increase
// clockwise, so 90 is right, 180 is down and 270 is left.
func CoordFromAngle(center Coord, distance, degrees int) Coord {
	rads := float64(degrees) * math.Pi / 180
	dx := int(math.Round(float64(distance) * math.Sin(rads)))
	dy := int(math.Round(float64(distance) * math.Cos(rads)))
	return Coord{X: center.X + dx, Y: center.Y - dy}
}

// Add returns the component-wise sum of c and rhs.
func (c Coord) Add(rhs Coord) Coord {
	return Coord{X: c.X + rhs.X, Y: c.Y + rhs.Y}
}

// Sub returns the component-wise difference of c and rhs.
func (c Coord) Sub(rhs Coord) Coord {
	return Coord{X: c.X - rhs.X, Y: c.Y - rhs.Y}
}

// Mul returns the component-wise product of c and rhs.
func (c Coord) Mul(rhs Coord) Coord {
	return Coord{X: c.X * rhs.X, Y: c.Y * rhs.Y}
}

// MulScalar scales both components by factor, rounding to the nearest
// integer.
func (c Coord) MulScalar(factor float64) Coord {
	return Coord{
		X: int(math.Round(float64(c.X) * factor)),
		Y: int(math.Round(float64(c.Y) * factor)),
	}
}

func (c Coord) Neg() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}

func (c Coord) Abs() Coord {
	return Coord{X: absInt(c.X), Y: absInt(c.Y)}
}

// Perpendicular returns c rotated a quarter turn.
func (c Coord) Perpendicular() Coord {
	return Coord{X: c.Y, Y: -c.X}
}

// Cross returns the 2D cross product (the z component of the 3D cross
// product). Its sign gives the winding of the turn from c to rhs.
func (c Coord) Cross(rhs Coord) int {
	return c.X*rhs.Y - c.Y*rhs.X
}

// Dot returns the dot product of c and rhs.
func (c Coord) Dot(rhs Coord) int {
	return c.X*rhs.X + c.Y*rhs.Y
}

// Distance returns the Euclidean distance between c and rhs, rounded to
// the nearest integer.
func (c Coord) Distance(rhs Coord) int {
	return int(math.Round(math.Hypot(float64(rhs.X-c.X), float64(rhs.Y-c.Y))))
}

// MidPoint returns the point midway between c and rhs. Use Lerp for
// other positions.
func (c Coord) MidPoint(rhs Coord) Coord {
	return Coord{X: (c.X + rhs.X) / 2, Y: (c.Y + rhs.Y) / 2}
}

// AngleTo returns the angle in degrees from c to rhs, using the same
// convention as CoordFromAngle: 0 is up, clockwise positive. The result
// is in (-180, 180].
func (c Coord) AngleTo(rhs Coord) int {
	dx := float64(rhs.X - c.X)
	dy := float64(rhs.Y - c.Y)
	return int(math.Round(math.Atan2(dx, -dy) * 180 / math.Pi))
}

// Collinear reports whether a, b and c lie on one line.
func Collinear(a, b, c Coord) bool {
	return b.Sub(a).Cross(c.Sub(a)) == 0
}

// IsBetween reports whether c lies on the segment from a to b,
// endpoints included.
func (c Coord) IsBetween(a, b Coord) bool {
	if !Collinear(a, b, c) {
		return false
	}
	return minInt(a.X, b.X) <= c.X && c.X <= maxInt(a.X, b.X) &&
		minInt(a.Y, b.Y) <= c.Y && c.Y <= maxInt(a.Y, b.Y)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
