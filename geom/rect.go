package geom

import "fmt"

// Rect is an axis-aligned rectangle given by its top-left origin and size.
// Size is not required to be positive; a negative size puts Right left of
// Left (or Bottom above Top) and nothing normalizes it.
type Rect struct {
	Origin Vec2
	Size   Vec2
}

// NewRect creates a rect from an origin and a size.
func NewRect(origin, size Vec2) Rect {
	return Rect{Origin: origin, Size: size}
}

func (r Rect) Width() float64 { return r.Size.X }
func (r Rect) Height() float64 { return r.Size.Y }

func (r Rect) Left() float64 { return r.Origin.X }
func (r Rect) Right() float64 { return r.Left() + r.Width() }
func (r Rect) Top() float64 { return r.Origin.Y }
func (r Rect) Bottom() float64 { return r.Top() + r.Height() }

func (r Rect) TopLeft() Vec2 { return r.Origin }
func (r Rect) TopRight() Vec2 { return r.Origin.Plus(Vec2{X: r.Width()}) }
func (r Rect) BottomRight() Vec2 { return r.Origin.Plus(r.Size) }
func (r Rect) BottomLeft() Vec2 { return r.Origin.Plus(Vec2{Y: r.Height()}) }

// WithOrigin returns a copy of r moved to origin.
func (r Rect) WithOrigin(origin Vec2) Rect {
	return Rect{Origin: origin, Size: r.Size}
}

// WithSize returns a copy of r resized to size.
func (r Rect) WithSize(size Vec2) Rect {
	return Rect{Origin: r.Origin, Size: size}
}

// ClosestPointTo projects p onto r, clamping each axis to the rect's edges.
// With a negative size the clamp bounds are inverted and Clamp's
// lower-guard-first rule decides the result.
func (r Rect) ClosestPointTo(p Vec2) Vec2 {
	return Vec2{
		X: Clamp(p.X, r.Left(), r.Right()),
		Y: Clamp(p.Y, r.Top(), r.Bottom()),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{origin: %v, size: %v}", r.Origin, r.Size)
}
