package shapes

// ShapeKind tags the concrete shape held by a ShapeBox. The set of
// kinds is closed; dispatch helpers report failure for anything else.
type ShapeKind int

const (
	KindLine ShapeKind = iota
	KindRect
	KindCircle
	KindTriangle
	KindEllipse
	KindPolygon
)

func (k ShapeKind) String() string {
	switch k {
	case KindLine:
		return "Line"
	case KindRect:
		return "Rect"
	case KindCircle:
		return "Circle"
	case KindTriangle:
		return "Triangle"
	case KindEllipse:
		return "Ellipse"
	case KindPolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// ShapeBox holds exactly one of the six shape kinds, letting
// heterogeneous shapes travel through one concrete type. It implements
// Shape itself, and its transforms rebox the transformed shape, so a
// boxed shape can be used anywhere an unboxed one can.
type ShapeBox struct {
	kind     ShapeKind
	line     Line
	rect     Rect
	circle   Circle
	triangle Triangle
	ellipse  Ellipse
	polygon  Polygon
}

func BoxLine(line Line) ShapeBox { return ShapeBox{kind: KindLine, line: line} }

func BoxRect(rect Rect) ShapeBox { return ShapeBox{kind: KindRect, rect: rect} }

func BoxCircle(circle Circle) ShapeBox { return ShapeBox{kind: KindCircle, circle: circle} }

func BoxTriangle(triangle Triangle) ShapeBox {
	return ShapeBox{kind: KindTriangle, triangle: triangle}
}

func BoxEllipse(ellipse Ellipse) ShapeBox { return ShapeBox{kind: KindEllipse, ellipse: ellipse} }

func BoxPolygon(polygon Polygon) ShapeBox { return ShapeBox{kind: KindPolygon, polygon: polygon} }

// NewShapeBox boxes any of the six concrete kinds (or copies an
// existing box). The second return is false for any other Shape
// implementation.
func NewShapeBox(shape Shape) (ShapeBox, bool) {
	switch s := shape.(type) {
	case Line:
		return BoxLine(s), true
	case Rect:
		return BoxRect(s), true
	case Circle:
		return BoxCircle(s), true
	case Triangle:
		return BoxTriangle(s), true
	case Ellipse:
		return BoxEllipse(s), true
	case Polygon:
		return BoxPolygon(s), true
	case ShapeBox:
		return s, true
	default:
		return ShapeBox{}, false
	}
}

func (b ShapeBox) Kind() ShapeKind { return b.kind }

func (b ShapeBox) Line() (Line, bool) { return b.line, b.kind == KindLine }

func (b ShapeBox) Rect() (Rect, bool) { return b.rect, b.kind == KindRect }

func (b ShapeBox) Circle() (Circle, bool) { return b.circle, b.kind == KindCircle }

func (b ShapeBox) Triangle() (Triangle, bool) { return b.triangle, b.kind == KindTriangle }

func (b ShapeBox) Ellipse() (Ellipse, bool) { return b.ellipse, b.kind == KindEllipse }

func (b ShapeBox) Polygon() (Polygon, bool) { return b.polygon, b.kind == KindPolygon }

// shape returns the boxed value behind the Shape interface.
func (b ShapeBox) shape() Shape {
	switch b.kind {
	case KindLine:
		return b.line
	case KindRect:
		return b.rect
	case KindCircle:
		return b.circle
	case KindTriangle:
		return b.triangle
	case KindEllipse:
		return b.ellipse
	default:
		return b.polygon
	}
}

// Shape

func (b ShapeBox) Points() []Coord { return b.shape().Points() }

func (b ShapeBox) Contains(point Coord) bool { return b.shape().Contains(point) }

func (b ShapeBox) Center() Coord { return b.shape().Center() }

func (b ShapeBox) Left() int { return b.shape().Left() }

func (b ShapeBox) Right() int { return b.shape().Right() }

func (b ShapeBox) Top() int { return b.shape().Top() }

func (b ShapeBox) Bottom() int { return b.shape().Bottom() }

func (b ShapeBox) OutlinePixels() []Coord { return b.shape().OutlinePixels() }

func (b ShapeBox) FilledPixels() []Coord { return b.shape().FilledPixels() }

func (b ShapeBox) ToShapeBox() ShapeBox { return b }

// Transforms rebuild the boxed shape of the same kind.

func (b ShapeBox) TranslateBy(delta Coord) ShapeBox {
	switch b.kind {
	case KindLine:
		return BoxLine(b.line.TranslateBy(delta))
	case KindRect:
		return BoxRect(b.rect.TranslateBy(delta))
	case KindCircle:
		return BoxCircle(b.circle.TranslateBy(delta))
	case KindTriangle:
		return BoxTriangle(b.triangle.TranslateBy(delta))
	case KindEllipse:
		return BoxEllipse(b.ellipse.TranslateBy(delta))
	default:
		return BoxPolygon(b.polygon.TranslateBy(delta))
	}
}

func (b ShapeBox) MoveTo(point Coord) ShapeBox {
	return b.TranslateBy(moveToDelta(b, point))
}

func (b ShapeBox) MoveCenterTo(point Coord) ShapeBox {
	return b.TranslateBy(point.Sub(b.Center()))
}

func (b ShapeBox) Rotate(degrees int) ShapeBox {
	return b.RotateAround(degrees, b.Center())
}

func (b ShapeBox) RotateAround(degrees int, pivot Coord) ShapeBox {
	switch b.kind {
	case KindLine:
		return BoxLine(b.line.RotateAround(degrees, pivot))
	case KindRect:
		return BoxRect(b.rect.RotateAround(degrees, pivot))
	case KindCircle:
		return BoxCircle(b.circle.RotateAround(degrees, pivot))
	case KindTriangle:
		return BoxTriangle(b.triangle.RotateAround(degrees, pivot))
	case KindEllipse:
		return BoxEllipse(b.ellipse.RotateAround(degrees, pivot))
	default:
		return BoxPolygon(b.polygon.RotateAround(degrees, pivot))
	}
}

func (b ShapeBox) Scale(factor float64) ShapeBox {
	return b.ScaleAround(factor, b.Center())
}

func (b ShapeBox) ScaleAround(factor float64, pivot Coord) ShapeBox {
	switch b.kind {
	case KindLine:
		return BoxLine(b.line.ScaleAround(factor, pivot))
	case KindRect:
		return BoxRect(b.rect.ScaleAround(factor, pivot))
	case KindCircle:
		return BoxCircle(b.circle.ScaleAround(factor, pivot))
	case KindTriangle:
		return BoxTriangle(b.triangle.ScaleAround(factor, pivot))
	case KindEllipse:
		return BoxEllipse(b.ellipse.ScaleAround(factor, pivot))
	default:
		return BoxPolygon(b.polygon.ScaleAround(factor, pivot))
	}
}

// IntersectsShape

func (b ShapeBox) intersector() IntersectsShape {
	return b.shape().(IntersectsShape)
}

func (b ShapeBox) IntersectsLine(line Line) bool { return b.intersector().IntersectsLine(line) }

func (b ShapeBox) IntersectsRect(rect Rect) bool { return b.intersector().IntersectsRect(rect) }

func (b ShapeBox) IntersectsCircle(circle Circle) bool {
	return b.intersector().IntersectsCircle(circle)
}

func (b ShapeBox) IntersectsTriangle(triangle Triangle) bool {
	return b.intersector().IntersectsTriangle(triangle)
}

func (b ShapeBox) IntersectsEllipse(ellipse Ellipse) bool {
	return b.intersector().IntersectsEllipse(ellipse)
}

func (b ShapeBox) IntersectsPolygon(polygon Polygon) bool {
	return b.intersector().IntersectsPolygon(polygon)
}

// ContainsShape

func (b ShapeBox) container() ContainsShape {
	return b.shape().(ContainsShape)
}

func (b ShapeBox) ContainsLine(line Line) bool { return b.container().ContainsLine(line) }

func (b ShapeBox) ContainsRect(rect Rect) bool { return b.container().ContainsRect(rect) }

func (b ShapeBox) ContainsCircle(circle Circle) bool { return b.container().ContainsCircle(circle) }

func (b ShapeBox) ContainsTriangle(triangle Triangle) bool {
	return b.container().ContainsTriangle(triangle)
}

func (b ShapeBox) ContainsEllipse(ellipse Ellipse) bool {
	return b.container().ContainsEllipse(ellipse)
}

func (b ShapeBox) ContainsPolygon(polygon Polygon) bool {
	return b.container().ContainsPolygon(polygon)
}

// IntersectsAny resolves the other shape's kind at runtime. The second
// return is false when other is not one of the six boxed kinds.
func (b ShapeBox) IntersectsAny(other Shape) (bool, bool) {
	box, ok := NewShapeBox(other)
	if !ok {
		return false, false
	}
	switch box.kind {
	case KindLine:
		return b.IntersectsLine(box.line), true
	case KindRect:
		return b.IntersectsRect(box.rect), true
	case KindCircle:
		return b.IntersectsCircle(box.circle), true
	case KindTriangle:
		return b.IntersectsTriangle(box.triangle), true
	case KindEllipse:
		return b.IntersectsEllipse(box.ellipse), true
	default:
		return b.IntersectsPolygon(box.polygon), true
	}
}

// ContainsAny resolves the other shape's kind at runtime. The second
// return is false when other is not one of the six boxed kinds.
func (b ShapeBox) ContainsAny(other Shape) (bool, bool) {
	box, ok := NewShapeBox(other)
	if !ok {
		return false, false
	}
	switch box.kind {
	case KindLine:
		return b.ContainsLine(box.line), true
	case KindRect:
		return b.ContainsRect(box.rect), true
	case KindCircle:
		return b.ContainsCircle(box.circle), true
	case KindTriangle:
		return b.ContainsTriangle(box.triangle), true
	case KindEllipse:
		return b.ContainsEllipse(box.ellipse), true
	default:
		return b.ContainsPolygon(box.polygon), true
	}
}

// ShapesIntersect boxes both shapes and dispatches; ok is false when
// either is not a known kind.
func ShapesIntersect(a, b Shape) (intersects bool, ok bool) {
	boxA, okA := NewShapeBox(a)
	if !okA {
		return false, false
	}
	return boxA.IntersectsAny(b)
}

// ShapeContains boxes both shapes and dispatches; ok is false when
// either is not a known kind.
func ShapeContains(outer, inner Shape) (contains bool, ok bool) {
	box, okO := NewShapeBox(outer)
	if !okO {
		return false, false
	}
	return box.ContainsAny(inner)
}
