package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectBasics(t *testing.T) {
	r := NewRectSized(NewCoord(10, 10), 5, 8)
	assert.Equal(t, NewCoord(10, 10), r.TopLeft())
	assert.Equal(t, NewCoord(15, 18), r.BottomRight())
	assert.Equal(t, 5, r.Width())
	assert.Equal(t, 8, r.Height())
	assert.False(t, r.IsSquare())
	assert.True(t, NewRectSized(NewCoord(0, 0), 7, 7).IsSquare())
}

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := NewRect(NewCoord(10, 10), NewCoord(20, 20))
	// Left and top edges are inside
	assert.True(t, r.Contains(NewCoord(10, 10)))
	assert.True(t, r.Contains(NewCoord(10, 15)))
	assert.True(t, r.Contains(NewCoord(15, 10)))
	assert.True(t, r.Contains(NewCoord(15, 15)))
	assert.True(t, r.Contains(NewCoord(19, 19)))
	// Right and bottom edges are not
	assert.False(t, r.Contains(NewCoord(20, 15)))
	assert.False(t, r.Contains(NewCoord(15, 20)))
	assert.False(t, r.Contains(NewCoord(20, 20)))
	assert.False(t, r.Contains(NewCoord(9, 15)))
}

func TestRectBounds(t *testing.T) {
	// Corner order doesn't matter for the bounds
	r := NewRect(NewCoord(20, 20), NewCoord(10, 10))
	assert.Equal(t, 10, r.Left())
	assert.Equal(t, 20, r.Right())
	assert.Equal(t, 10, r.Top())
	assert.Equal(t, 20, r.Bottom())
	assert.Equal(t, NewCoord(15, 15), r.Center())
}

func TestRectRotateSnapsToQuarterTurns(t *testing.T) {
	r := NewRect(NewCoord(10, 10), NewCoord(20, 20))
	// Under 45 degrees snaps to no rotation at all
	assert.Equal(t, r, r.RotateAround(40, r.TopLeft()))
	// 45 and up snaps to a quarter turn
	quarter := r.RotateAround(90, NewCoord(10, 10))
	assert.Equal(t, 0, quarter.Left())
	assert.Equal(t, 10, quarter.Right())
	assert.Equal(t, 10, quarter.Top())
	assert.Equal(t, 20, quarter.Bottom())
	assert.Equal(t, quarter, r.RotateAround(50, NewCoord(10, 10)))
	// Size survives the turn
	assert.Equal(t, r.Width(), quarter.Width())
	assert.Equal(t, r.Height(), quarter.Height())
}

func TestRectMove(t *testing.T) {
	r := NewRect(NewCoord(10, 10), NewCoord(20, 20))
	moved := r.MoveTo(NewCoord(0, 0))
	assert.Equal(t, NewCoord(0, 0), moved.TopLeft())
	assert.Equal(t, NewCoord(10, 10), moved.BottomRight())
	centered := r.MoveCenterTo(NewCoord(50, 50))
	assert.Equal(t, NewCoord(50, 50), centered.Center())
	assert.Equal(t, r.Width(), centered.Width())
}

func TestRectConversions(t *testing.T) {
	r := NewRect(NewCoord(0, 0), NewCoord(20, 10))
	assert.Equal(t, NewCircle(NewCoord(10, 5), 5), r.AsSmallestCircle())
	assert.Equal(t, NewCircle(NewCoord(10, 5), 10), r.AsBiggestCircle())
	assert.Equal(t, NewEllipse(NewCoord(10, 5), 20, 10), r.AsEllipse())

	poly := r.AsPolygon()
	assert.Equal(t, []Coord{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10}, {X: 0, Y: 10},
	}, poly.Points())

	lines := r.AsLines()
	assert.Len(t, lines, 4)
	assert.Equal(t, NewLine(NewCoord(0, 0), NewCoord(20, 0)), lines[0])

	t1, t2 := r.AsTriangles()
	assert.ElementsMatch(t,
		append(t1.Points(), t2.Points()...),
		[]Coord{
			{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 0, Y: 10},
			{X: 20, Y: 10}, {X: 20, Y: 0}, {X: 0, Y: 10},
		})
}

func TestRectConversionsNormalizeCorners(t *testing.T) {
	// A rect built with reversed corners still converts from its
	// normalized top-left
	r := NewRect(NewCoord(20, 10), NewCoord(0, 0))
	assert.Equal(t, []Coord{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10}, {X: 0, Y: 10},
	}, r.AsPolygon().Points())
}

func TestRectRoundTrip(t *testing.T) {
	r := NewRect(NewCoord(3, 4), NewCoord(17, 9))
	assert.Equal(t, r, RectFromPoints(r.Points()))
}
