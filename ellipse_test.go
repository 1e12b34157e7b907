package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEllipseBasics(t *testing.T) {
	e := NewEllipse(NewCoord(100, 100), 30, 60)
	assert.Equal(t, NewCoord(100, 100), e.Center())
	assert.Equal(t, 30, e.Width())
	assert.Equal(t, 60, e.Height())
	assert.Equal(t, 0, e.Rotation())
	assert.Equal(t, []Coord{{X: 100, Y: 100}, {X: 100, Y: 70}, {X: 115, Y: 100}}, e.Points())
	assert.Equal(t, 85, e.Left())
	assert.Equal(t, 115, e.Right())
	assert.Equal(t, 70, e.Top())
	assert.Equal(t, 130, e.Bottom())
}

func TestEllipseRotationSwapsExtents(t *testing.T) {
	e := NewEllipse(NewCoord(100, 100), 30, 60)
	rotated := e.Rotate(90)
	assert.Equal(t, 90, rotated.Rotation())
	assert.Equal(t, 60, rotated.Width())
	assert.Equal(t, 30, rotated.Height())
	assert.Equal(t, NewCoord(100, 100), rotated.Center())
	assert.Equal(t, NewCoord(130, 100), rotated.Points()[1])
	assert.Equal(t, NewCoord(100, 115), rotated.Points()[2])
}

func TestEllipseRotatedConstructor(t *testing.T) {
	a := NewEllipse(NewCoord(100, 100), 30, 60).Rotate(90)
	b := NewEllipseRotated(NewCoord(100, 100), 30, 60, 90)
	assert.Equal(t, a, b)
}

func TestEllipseContains(t *testing.T) {
	e := NewEllipse(NewCoord(50, 50), 40, 20)
	assert.True(t, e.Contains(NewCoord(50, 50)))
	assert.True(t, e.Contains(NewCoord(69, 50)))
	// Boundary is inside
	assert.True(t, e.Contains(NewCoord(70, 50)))
	assert.True(t, e.Contains(NewCoord(50, 60)))
	assert.False(t, e.Contains(NewCoord(71, 50)))
	assert.False(t, e.Contains(NewCoord(50, 61)))
	assert.False(t, e.Contains(NewCoord(65, 57)))
}

func TestEllipseContainsRotated(t *testing.T) {
	// Tall after a quarter turn, so the old width no longer holds
	e := NewEllipseRotated(NewCoord(50, 50), 40, 20, 90)
	assert.True(t, e.Contains(NewCoord(50, 69)))
	assert.False(t, e.Contains(NewCoord(69, 50)))
	assert.True(t, e.Contains(NewCoord(59, 50)))
}

func TestEllipseMove(t *testing.T) {
	e := NewEllipse(NewCoord(50, 50), 40, 20)
	moved := e.MoveTo(NewCoord(0, 0))
	assert.Equal(t, NewCoord(0, 0), moved.Center())
	assert.Equal(t, 40, moved.Width())
	assert.Equal(t, 20, moved.Height())
	assert.Equal(t, moved, e.MoveCenterTo(NewCoord(0, 0)))
}

func TestEllipseScale(t *testing.T) {
	e := NewEllipse(NewCoord(50, 50), 40, 20)
	scaled := e.Scale(2)
	assert.Equal(t, 80, scaled.Width())
	assert.Equal(t, 40, scaled.Height())
	assert.Equal(t, NewCoord(50, 50), scaled.Center())
}

func TestEllipseConversions(t *testing.T) {
	e := NewEllipse(NewCoord(50, 50), 40, 20)
	assert.Equal(t, NewRect(NewCoord(30, 40), NewCoord(70, 60)), e.AsRect())
	assert.Equal(t, NewLine(NewCoord(30, 50), NewCoord(70, 50)), e.AsHorizontalLine())
	assert.Equal(t, NewLine(NewCoord(50, 60), NewCoord(50, 40)), e.AsVerticalLine())
	assert.Equal(t, NewLine(NewCoord(50, 50), NewCoord(50, 40)), e.AsRadiusLine())

	_, ok := e.AsCircle()
	assert.False(t, ok)
	c, ok := NewEllipse(NewCoord(50, 50), 20, 20).AsCircle()
	assert.True(t, ok)
	assert.Equal(t, NewCircle(NewCoord(50, 50), 10), c)
}

func TestEllipseAsPolygon(t *testing.T) {
	e := NewEllipse(NewCoord(0, 0), 20, 10)
	poly := e.AsPolygon(4)
	assert.ElementsMatch(t, []Coord{
		{X: 10, Y: 0}, {X: 0, Y: 5}, {X: -10, Y: 0}, {X: 0, Y: -5},
	}, poly.Points())
	// Too few segments are clamped up to a valid polygon
	assert.Len(t, e.AsPolygon(1).Points(), 3)
}

func TestEllipseDegenerate(t *testing.T) {
	flat := NewEllipse(NewCoord(10, 10), 0, 6)
	assert.ElementsMatch(t, []Coord{
		{X: 10, Y: 7}, {X: 10, Y: 8}, {X: 10, Y: 9}, {X: 10, Y: 10},
		{X: 10, Y: 11}, {X: 10, Y: 12}, {X: 10, Y: 13},
	}, flat.OutlinePixels())

	wide := NewEllipse(NewCoord(10, 10), 6, 0)
	assert.ElementsMatch(t, []Coord{
		{X: 7, Y: 10}, {X: 8, Y: 10}, {X: 9, Y: 10}, {X: 10, Y: 10},
		{X: 11, Y: 10}, {X: 12, Y: 10}, {X: 13, Y: 10},
	}, wide.OutlinePixels())
}

func TestEllipseRoundTrip(t *testing.T) {
	e := NewEllipseRotated(NewCoord(7, 9), 24, 12, 45)
	assert.Equal(t, e, EllipseFromPoints(e.Points()))
}
