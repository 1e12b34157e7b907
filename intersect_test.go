package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineLineIntersects(t *testing.T) {
	crossA := NewLine(NewCoord(0, 0), NewCoord(10, 10))
	crossB := NewLine(NewCoord(0, 10), NewCoord(10, 0))
	assert.True(t, crossA.IntersectsLine(crossB))
	assert.True(t, crossB.IntersectsLine(crossA))

	parallelA := NewLine(NewCoord(0, 0), NewCoord(10, 0))
	parallelB := NewLine(NewCoord(0, 1), NewCoord(10, 1))
	assert.False(t, parallelA.IntersectsLine(parallelB))

	// Collinear overlap counts, collinear gap doesn't
	assert.True(t, parallelA.IntersectsLine(NewLine(NewCoord(5, 0), NewCoord(15, 0))))
	assert.False(t, parallelA.IntersectsLine(NewLine(NewCoord(11, 0), NewCoord(20, 0))))

	// Endpoint touch counts
	assert.True(t, NewLine(NewCoord(0, 0), NewCoord(5, 5)).
		IntersectsLine(NewLine(NewCoord(5, 5), NewCoord(10, 0))))
}

func TestLineCircleIntersects(t *testing.T) {
	circle := NewCircle(NewCoord(50, 40), 20)

	through := NewLine(NewCoord(0, 40), NewCoord(100, 40))
	assert.True(t, through.IntersectsCircle(circle))
	assert.True(t, circle.IntersectsLine(through))

	above := NewLine(NewCoord(0, 0), NewCoord(100, 0))
	assert.False(t, above.IntersectsCircle(circle))

	// Stops short of the circle
	short := NewLine(NewCoord(0, 40), NewCoord(20, 40))
	assert.False(t, short.IntersectsCircle(circle))

	// Entirely inside: no boundary crossing
	inside := NewLine(NewCoord(45, 40), NewCoord(55, 40))
	assert.False(t, inside.IntersectsCircle(circle))

	// A point line intersects when it's within the circle
	dot := NewLine(NewCoord(50, 40), NewCoord(50, 40))
	assert.True(t, dot.IntersectsCircle(circle))
}

func TestLineEllipseIntersects(t *testing.T) {
	ellipse := NewEllipse(NewCoord(50, 50), 40, 20)

	through := NewLine(NewCoord(0, 50), NewCoord(100, 50))
	assert.True(t, through.IntersectsEllipse(ellipse))
	assert.True(t, ellipse.IntersectsLine(through))

	above := NewLine(NewCoord(0, 20), NewCoord(100, 20))
	assert.False(t, above.IntersectsEllipse(ellipse))

	// y=35 misses the flat ellipse but hits it once it's rotated tall
	grazing := NewLine(NewCoord(0, 35), NewCoord(100, 35))
	assert.False(t, grazing.IntersectsEllipse(ellipse))
	tall := NewEllipseRotated(NewCoord(50, 50), 40, 20, 90)
	assert.True(t, grazing.IntersectsEllipse(tall))
	assert.True(t, NewLine(NewCoord(0, 50), NewCoord(100, 50)).IntersectsEllipse(tall))
}

func TestRectRectIntersects(t *testing.T) {
	a := NewRect(NewCoord(0, 0), NewCoord(10, 10))

	assert.True(t, a.IntersectsRect(NewRect(NewCoord(5, 5), NewCoord(15, 15))))
	assert.False(t, a.IntersectsRect(NewRect(NewCoord(20, 20), NewCoord(30, 30))))

	// Coincident rects intersect
	assert.True(t, a.IntersectsRect(NewRect(NewCoord(0, 0), NewCoord(10, 10))))

	// A rect strictly inside another has no boundary contact
	outer := NewRect(NewCoord(0, 0), NewCoord(20, 20))
	inner := NewRect(NewCoord(5, 5), NewCoord(10, 10))
	assert.False(t, outer.IntersectsRect(inner))
	assert.False(t, inner.IntersectsRect(outer))

	// Shared edge counts
	assert.True(t, a.IntersectsRect(NewRect(NewCoord(10, 0), NewCoord(20, 10))))
}

func TestRectCircleIntersects(t *testing.T) {
	rect := NewRect(NewCoord(0, 0), NewCoord(20, 20))

	crossing := NewCircle(NewCoord(15, 15), 10)
	assert.True(t, rect.IntersectsCircle(crossing))
	assert.True(t, crossing.IntersectsRect(rect))

	inside := NewCircle(NewCoord(10, 10), 3)
	assert.False(t, rect.IntersectsCircle(inside))

	far := NewCircle(NewCoord(100, 100), 5)
	assert.False(t, rect.IntersectsCircle(far))
}

func TestCircleCircleReachTest(t *testing.T) {
	big := NewCircle(NewCoord(0, 0), 10)

	// The gap is smaller than the radii sum but bigger than either
	// radius alone, so this pair does not intersect
	near := NewCircle(NewCoord(12, 0), 3)
	assert.False(t, big.IntersectsCircle(near))
	assert.False(t, near.IntersectsCircle(big))

	// Within the bigger circle's reach
	assert.True(t, big.IntersectsCircle(NewCircle(NewCoord(9, 0), 2)))
	assert.True(t, big.IntersectsCircle(NewCircle(NewCoord(3, 0), 1)))
	assert.True(t, big.IntersectsCircle(NewCircle(NewCoord(10, 0), 10)))
	assert.False(t, big.IntersectsCircle(NewCircle(NewCoord(21, 0), 10)))
}

func TestEllipseCircleIntersects(t *testing.T) {
	ellipse := NewEllipse(NewCoord(0, 0), 40, 20)

	assert.False(t, ellipse.IntersectsCircle(NewCircle(NewCoord(100, 0), 5)))
	// Small circle deep inside
	assert.False(t, ellipse.IntersectsCircle(NewCircle(NewCoord(0, 0), 3)))
	// Huge circle the ellipse sits inside
	assert.False(t, ellipse.IntersectsCircle(NewCircle(NewCoord(0, 0), 50)))
	// Boundary overlap
	crossing := NewCircle(NewCoord(20, 0), 5)
	assert.True(t, ellipse.IntersectsCircle(crossing))
	assert.True(t, crossing.IntersectsEllipse(ellipse))
}

func TestEllipseEllipseIntersects(t *testing.T) {
	a := NewEllipse(NewCoord(0, 0), 40, 20)
	assert.True(t, a.IntersectsEllipse(NewEllipse(NewCoord(30, 0), 40, 20)))
	assert.False(t, a.IntersectsEllipse(NewEllipse(NewCoord(100, 0), 40, 20)))
	// Nested ellipses have no boundary contact
	assert.False(t, a.IntersectsEllipse(NewEllipse(NewCoord(0, 0), 10, 6)))
}

func TestTriangleIntersects(t *testing.T) {
	tri := NewTriangle(NewCoord(0, 0), NewCoord(10, 0), NewCoord(0, 10))

	crossing := NewLine(NewCoord(-5, 2), NewCoord(5, 2))
	assert.True(t, tri.IntersectsLine(crossing))
	assert.True(t, crossing.IntersectsTriangle(tri))
	assert.False(t, tri.IntersectsLine(NewLine(NewCoord(20, 20), NewCoord(30, 30))))

	assert.True(t, tri.IntersectsRect(NewRect(NewCoord(-5, -5), NewCoord(5, 5))))
	assert.True(t, tri.IntersectsTriangle(NewTriangle(NewCoord(5, -5), NewCoord(5, 15), NewCoord(15, 5))))
}

func TestPolygonIntersects(t *testing.T) {
	sq := square()

	rect := NewRect(NewCoord(5, 5), NewCoord(15, 15))
	assert.True(t, sq.IntersectsRect(rect))
	assert.True(t, rect.IntersectsPolygon(sq))

	assert.False(t, sq.IntersectsCircle(NewCircle(NewCoord(5, 5), 2)))
	assert.True(t, sq.IntersectsCircle(NewCircle(NewCoord(10, 5), 3)))

	far := NewPolygon([]Coord{{X: 50, Y: 50}, {X: 60, Y: 50}, {X: 55, Y: 60}})
	assert.False(t, sq.IntersectsPolygon(far))
}

func TestIntersectionSymmetry(t *testing.T) {
	line := NewLine(NewCoord(-5, 5), NewCoord(25, 5))
	rect := NewRect(NewCoord(0, 0), NewCoord(10, 10))
	circle := NewCircle(NewCoord(8, 8), 6)
	tri := NewTriangle(NewCoord(2, 2), NewCoord(18, 2), NewCoord(2, 18))
	ellipse := NewEllipse(NewCoord(10, 5), 30, 10)
	poly := square()

	assert.Equal(t, line.IntersectsRect(rect), rect.IntersectsLine(line))
	assert.Equal(t, line.IntersectsCircle(circle), circle.IntersectsLine(line))
	assert.Equal(t, line.IntersectsTriangle(tri), tri.IntersectsLine(line))
	assert.Equal(t, line.IntersectsEllipse(ellipse), ellipse.IntersectsLine(line))
	assert.Equal(t, rect.IntersectsCircle(circle), circle.IntersectsRect(rect))
	assert.Equal(t, rect.IntersectsTriangle(tri), tri.IntersectsRect(rect))
	assert.Equal(t, rect.IntersectsEllipse(ellipse), ellipse.IntersectsRect(rect))
	assert.Equal(t, circle.IntersectsTriangle(tri), tri.IntersectsCircle(circle))
	assert.Equal(t, circle.IntersectsEllipse(ellipse), ellipse.IntersectsCircle(circle))
	assert.Equal(t, tri.IntersectsEllipse(ellipse), ellipse.IntersectsTriangle(tri))
	assert.Equal(t, poly.IntersectsRect(rect), rect.IntersectsPolygon(poly))
	assert.Equal(t, poly.IntersectsCircle(circle), circle.IntersectsPolygon(poly))
	assert.Equal(t, poly.IntersectsEllipse(ellipse), ellipse.IntersectsPolygon(poly))
	assert.Equal(t, poly.IntersectsTriangle(tri), tri.IntersectsPolygon(poly))
	assert.Equal(t, poly.IntersectsLine(line), line.IntersectsPolygon(poly))
}
