package shapes

import "math"

// FLerp calculates the value at percent between start and end.
func FLerp(start, end, percent float64) float64 {
	return start + (end-start)*percent
}

// InvFLerp calculates the percent for point between start and end.
func InvFLerp(start, end, point float64) float64 {
	if point == start {
		return 0
	}
	if point == end {
		return 1
	}
	return (point - start) / (end - start)
}

// Lerp calculates the integer value at percent between start and end,
// rounded to the nearest integer.
func Lerp(start, end int, percent float64) int {
	return int(math.Round(FLerp(float64(start), float64(end), percent)))
}

// InvLerp calculates the percent for point between start and end.
func InvLerp(start, end, point int) float64 {
	return InvFLerp(float64(start), float64(end), float64(point))
}

// Lerp calculates the coord at percent between c and end.
func (c Coord) Lerp(end Coord, percent float64) Coord {
	return Coord{
		X: Lerp(c.X, end.X, percent),
		Y: Lerp(c.Y, end.Y, percent),
	}
}

// InvLerp calculates the percent for point between c and end, averaged
// over both axes.
func (c Coord) InvLerp(end, point Coord) float64 {
	return (InvLerp(c.X, end.X, point.X) + InvLerp(c.Y, end.Y, point.Y)) / 2
}
