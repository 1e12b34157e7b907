package shapes

import "github.com/pkg/errors"

// Constructor preconditions (enough points for the kind being built,
// non-negative radius) are programmer errors, not recoverable runtime
// errors. Threading error returns through every constructor and
// transform would add a ton of noise for conditions that indicate a
// bug, so we panic with an error instead.

func assertPointCount(kind string, points []Coord, min int) {
	if len(points) < min {
		panic(errors.Errorf("%s needs at least %d points, got %d", kind, min, len(points)))
	}
}

func assertNonNegative(kind, field string, value int) {
	if value < 0 {
		panic(errors.Errorf("%s %s must not be negative, got %d", kind, field, value))
	}
}
