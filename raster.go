package shapes

// bresenham returns the integer points on the segment from start to
// end using Bresenham's line algorithm. The result always includes
// both endpoints.
func bresenham(start, end Coord) []Coord {
	dx := absInt(end.X - start.X)
	dy := absInt(end.Y - start.Y)
	sx := 1
	if start.X > end.X {
		sx = -1
	}
	sy := 1
	if start.Y > end.Y {
		sy = -1
	}
	err := dx - dy
	x, y := start.X, start.Y

	out := make([]Coord, 0, dx+dy+1)
	for {
		out = append(out, Coord{X: x, Y: y})
		if x == end.X && y == end.Y {
			return out
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// horizontalPixels fills the row y from x1 to x2 in either order.
func horizontalPixels(x1, x2, y int) []Coord {
	lo, hi := minInt(x1, x2), maxInt(x1, x2)
	out := make([]Coord, 0, hi-lo+1)
	for x := lo; x <= hi; x++ {
		out = append(out, Coord{X: x, Y: y})
	}
	return out
}

// verticalPixels fills the column x from y1 to y2 in either order.
func verticalPixels(x, y1, y2 int) []Coord {
	lo, hi := minInt(y1, y2), maxInt(y1, y2)
	out := make([]Coord, 0, hi-lo+1)
	for y := lo; y <= hi; y++ {
		out = append(out, Coord{X: x, Y: y})
	}
	return out
}
