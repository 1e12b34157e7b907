package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircleBasics(t *testing.T) {
	c := NewCircle(NewCoord(50, 50), 20)
	assert.Equal(t, 20, c.Radius())
	assert.Equal(t, NewCoord(50, 50), c.Center())
	assert.Equal(t, 30, c.Left())
	assert.Equal(t, 70, c.Right())
	assert.Equal(t, 30, c.Top())
	assert.Equal(t, 70, c.Bottom())
	assert.Equal(t, []Coord{{X: 50, Y: 50}, {X: 50, Y: 30}}, c.Points())
}

func TestCircleNegativeRadiusPanics(t *testing.T) {
	assert.Panics(t, func() { NewCircle(NewCoord(0, 0), -1) })
}

func TestCircleContains(t *testing.T) {
	c := NewCircle(NewCoord(50, 50), 20)
	assert.True(t, c.Contains(NewCoord(50, 50)))
	assert.True(t, c.Contains(NewCoord(70, 50)))
	assert.True(t, c.Contains(NewCoord(50, 30)))
	assert.False(t, c.Contains(NewCoord(71, 50)))
	assert.False(t, c.Contains(NewCoord(70, 70)))
}

func TestCircleMove(t *testing.T) {
	c := NewCircle(NewCoord(10, 10), 5)
	assert.Equal(t, NewCircle(NewCoord(3, 4), 5), c.MoveTo(NewCoord(3, 4)))
	assert.Equal(t, NewCircle(NewCoord(3, 4), 5), c.MoveCenterTo(NewCoord(3, 4)))
	assert.Equal(t, NewCircle(NewCoord(12, 13), 5), c.TranslateBy(NewCoord(2, 3)))
}

func TestCircleScale(t *testing.T) {
	c := NewCircle(NewCoord(10, 10), 5)
	assert.Equal(t, NewCircle(NewCoord(10, 10), 10), c.Scale(2))
	// 2.5 rounds up
	assert.Equal(t, NewCircle(NewCoord(10, 10), 3), c.Scale(0.5))
	assert.Equal(t, c, c.Scale(1))
}

func TestCircleRotateIsIdentityAroundCenter(t *testing.T) {
	c := NewCircle(NewCoord(10, 10), 5)
	assert.Equal(t, c, c.Rotate(90))
	assert.Equal(t, c, c.Rotate(123))
}

func TestCircleOutlinePixels(t *testing.T) {
	tiny := NewCircle(NewCoord(0, 0), 1)
	assert.ElementsMatch(t, []Coord{
		{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
	}, tiny.OutlinePixels())

	small := NewCircle(NewCoord(0, 0), 2)
	assert.ElementsMatch(t, []Coord{
		{X: 2, Y: 0}, {X: -2, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: -2},
		{X: 2, Y: 1}, {X: -2, Y: 1}, {X: 2, Y: -1}, {X: -2, Y: -1},
		{X: 1, Y: 2}, {X: -1, Y: 2}, {X: 1, Y: -2}, {X: -1, Y: -2},
	}, small.OutlinePixels())
}

func TestCircleFilledPixels(t *testing.T) {
	tiny := NewCircle(NewCoord(0, 0), 1)
	assert.ElementsMatch(t, []Coord{
		{X: 0, Y: 0},
		{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
	}, tiny.FilledPixels())

	dot := NewCircle(NewCoord(7, 7), 0)
	assert.ElementsMatch(t, []Coord{{X: 7, Y: 7}}, dot.FilledPixels())
}

func TestCircleConversions(t *testing.T) {
	c := NewCircle(NewCoord(0, 0), 5)
	assert.Equal(t, NewRect(NewCoord(-5, -5), NewCoord(5, 5)), c.AsRect())
	assert.Equal(t, NewEllipse(NewCoord(0, 0), 10, 10), c.AsEllipse())

	poly := c.AsPolygon(4)
	assert.ElementsMatch(t, []Coord{
		{X: 5, Y: 0}, {X: 0, Y: 5}, {X: -5, Y: 0}, {X: 0, Y: -5},
	}, poly.Points())
	assert.True(t, poly.IsRegular())

	back, ok := poly.AsCircle()
	assert.True(t, ok)
	assert.Equal(t, c, back)
}

func TestCircleRoundTrip(t *testing.T) {
	c := NewCircle(NewCoord(9, -3), 12)
	assert.Equal(t, c, CircleFromPoints(c.Points()))
}
