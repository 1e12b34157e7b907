package shapes

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Shapes serialize their canonical fields only; derived data (line
// length, triangle classification, polygon convexity) is rebuilt by
// the constructors on the way back in, so every decode revalidates.

type lineJSON struct {
	Start Coord `json:"start"`
	End   Coord `json:"end"`
}

func (l Line) MarshalJSON() ([]byte, error) {
	return json.Marshal(lineJSON{Start: l.start, End: l.end})
}

func (l *Line) UnmarshalJSON(data []byte) error {
	var raw lineJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decoding line")
	}
	*l = NewLine(raw.Start, raw.End)
	return nil
}

type rectJSON struct {
	TopLeft     Coord `json:"top_left"`
	BottomRight Coord `json:"bottom_right"`
}

func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal(rectJSON{TopLeft: r.topLeft, BottomRight: r.bottomRight})
}

func (r *Rect) UnmarshalJSON(data []byte) error {
	var raw rectJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decoding rect")
	}
	*r = NewRect(raw.TopLeft, raw.BottomRight)
	return nil
}

type circleJSON struct {
	Center Coord `json:"center"`
	Radius int   `json:"radius"`
}

func (c Circle) MarshalJSON() ([]byte, error) {
	return json.Marshal(circleJSON{Center: c.center, Radius: c.radius})
}

func (c *Circle) UnmarshalJSON(data []byte) error {
	var raw circleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decoding circle")
	}
	if raw.Radius < 0 {
		return errors.Errorf("decoding circle: negative radius %d", raw.Radius)
	}
	*c = NewCircle(raw.Center, raw.Radius)
	return nil
}

type triangleJSON struct {
	Points [3]Coord `json:"points"`
}

func (t Triangle) MarshalJSON() ([]byte, error) {
	return json.Marshal(triangleJSON{Points: t.points})
}

func (t *Triangle) UnmarshalJSON(data []byte) error {
	var raw triangleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decoding triangle")
	}
	*t = NewTriangle(raw.Points[0], raw.Points[1], raw.Points[2])
	return nil
}

type ellipseJSON struct {
	Center Coord `json:"center"`
	Top    Coord `json:"top"`
	Right  Coord `json:"right"`
}

func (e Ellipse) MarshalJSON() ([]byte, error) {
	return json.Marshal(ellipseJSON{Center: e.center, Top: e.top, Right: e.right})
}

func (e *Ellipse) UnmarshalJSON(data []byte) error {
	var raw ellipseJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decoding ellipse")
	}
	*e = EllipseFromPoints([]Coord{raw.Center, raw.Top, raw.Right})
	return nil
}

type polygonJSON struct {
	Points []Coord `json:"points"`
}

func (p Polygon) MarshalJSON() ([]byte, error) {
	return json.Marshal(polygonJSON{Points: p.points})
}

func (p *Polygon) UnmarshalJSON(data []byte) error {
	var raw polygonJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decoding polygon")
	}
	if len(raw.Points) < 3 {
		return errors.Errorf("decoding polygon: need at least 3 points, got %d", len(raw.Points))
	}
	*p = NewPolygon(raw.Points)
	return nil
}

// ShapeBox serializes externally tagged, e.g. {"Line":{"start":...}}.
// Exactly one kind key must be present.

func (b ShapeBox) MarshalJSON() ([]byte, error) {
	inner, err := json.Marshal(b.shape())
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]json.RawMessage{
		b.kind.String(): inner,
	})
}

func (b *ShapeBox) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decoding shape box")
	}
	if len(raw) != 1 {
		return errors.Errorf("decoding shape box: expected exactly one kind key, got %d", len(raw))
	}
	for key, inner := range raw {
		switch key {
		case KindLine.String():
			var l Line
			if err := json.Unmarshal(inner, &l); err != nil {
				return err
			}
			*b = BoxLine(l)
		case KindRect.String():
			var r Rect
			if err := json.Unmarshal(inner, &r); err != nil {
				return err
			}
			*b = BoxRect(r)
		case KindCircle.String():
			var c Circle
			if err := json.Unmarshal(inner, &c); err != nil {
				return err
			}
			*b = BoxCircle(c)
		case KindTriangle.String():
			var t Triangle
			if err := json.Unmarshal(inner, &t); err != nil {
				return err
			}
			*b = BoxTriangle(t)
		case KindEllipse.String():
			var e Ellipse
			if err := json.Unmarshal(inner, &e); err != nil {
				return err
			}
			*b = BoxEllipse(e)
		case KindPolygon.String():
			var p Polygon
			if err := json.Unmarshal(inner, &p); err != nil {
				return err
			}
			*b = BoxPolygon(p)
		default:
			return errors.Errorf("decoding shape box: unknown kind %q", key)
		}
	}
	return nil
}
