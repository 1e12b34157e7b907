package shapes

// Rasterizers produce unordered, deduplicated pixel sets. coordSet is
// the working representation; the public API hands out slices with an
// unspecified order, so callers (and tests) must compare as sets.
type coordSet map[Coord]struct{}

func newCoordSet() coordSet {
	return make(coordSet)
}

func (s coordSet) insert(c Coord) {
	s[c] = struct{}{}
}

func (s coordSet) insertAll(coords []Coord) {
	for _, c := range coords {
		s.insert(c)
	}
}

func (s coordSet) slice() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	return out
}

// Often we want to treat a point list as a circular buffer. This gives
// the modular index for length n, but unlike the raw modulo operator it
// only gives positive values.
func circularIndex(i, n int) int {
	return (i%n + n) % n
}
