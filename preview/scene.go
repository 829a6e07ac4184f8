// Package preview implements the interactive rect-mapping preview window.
package preview

import "github.com/cricklet/speedscope/geom"

// Scene is the geometry shown by the preview: a source rect mapped onto a
// target rect, and a cursor probed against the target.
type Scene struct {
	Source geom.Rect
	Target geom.Rect
	Cursor geom.Vec2 // World space
}

// Transform returns the BetweenRects transform from Source to Target.
func (s Scene) Transform() geom.AffineTransform {
	return geom.BetweenRects(s.Source, s.Target)
}

// MappedSource returns Source's corners pushed through Transform, in
// top-left, top-right, bottom-right, bottom-left order.
func (s Scene) MappedSource() [4]geom.Vec2 {
	t := s.Transform()
	return [4]geom.Vec2{
		t.TransformPosition(s.Source.TopLeft()),
		t.TransformPosition(s.Source.TopRight()),
		t.TransformPosition(s.Source.BottomRight()),
		t.TransformPosition(s.Source.BottomLeft()),
	}
}

// Closest returns the point of Target nearest to Cursor.
func (s Scene) Closest() geom.Vec2 {
	return s.Target.ClosestPointTo(s.Cursor)
}

// MappedCursor returns Cursor pushed through Transform.
func (s Scene) MappedCursor() geom.Vec2 {
	return s.Transform().TransformPosition(s.Cursor)
}

// Bounds returns the smallest rect containing Source, Target and the mapped corners.
func (s Scene) Bounds() geom.Rect {
	lo := geom.Min(s.Source.TopLeft(), s.Source.BottomRight())
	hi := geom.Max(s.Source.TopLeft(), s.Source.BottomRight())
	points := []geom.Vec2{s.Target.TopLeft(), s.Target.BottomRight()}
	mapped := s.MappedSource()
	points = append(points, mapped[:]...)
	for _, p := range points {
		lo = geom.Min(lo, p)
		hi = geom.Max(hi, p)
	}
	return geom.NewRect(lo, hi.Minus(lo))
}
