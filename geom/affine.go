package geom

import "fmt"

// AffineTransform is the 2x3 matrix
//
//	| M00 M01 M02 |
//	| M10 M11 M12 |
//
// applied to the column vector [x, y, 1].
//
// The zero value is the all-zero matrix, not the identity; use Identity or
// NewAffineTransform. M01 and M10 carry any shear or rotation produced by
// Times and have no named accessor.
type AffineTransform struct {
	M00, M01, M02 float64
	M10, M11, M12 float64
}

// Identity returns the identity transform.
func Identity() AffineTransform {
	return AffineTransform{M00: 1, M11: 1}
}

// NewAffineTransform creates a transform from its six components in row order.
func NewAffineTransform(m00, m01, m02, m10, m11, m12 float64) AffineTransform {
	return AffineTransform{
		M00: m00, M01: m01, M02: m02,
		M10: m10, M11: m11, M12: m12,
	}
}

// WithScale returns a copy of t with the diagonal replaced by s.
// Only M00 and M11 change; shear and translation are kept as they are.
func (t AffineTransform) WithScale(s Vec2) AffineTransform {
	t.M00 = s.X
	t.M11 = s.Y
	return t
}

// ScaleTransform returns Identity().WithScale(s).
func ScaleTransform(s Vec2) AffineTransform {
	return Identity().WithScale(s)
}

// Scale returns the diagonal (M00, M11). This is the true scale only when
// the transform has no shear or rotation.
func (t AffineTransform) Scale() Vec2 {
	return Vec2{X: t.M00, Y: t.M11}
}

// WithTranslation returns a copy of t with the last column replaced by tr.
func (t AffineTransform) WithTranslation(tr Vec2) AffineTransform {
	t.M02 = tr.X
	t.M12 = tr.Y
	return t
}

// TranslationTransform returns Identity().WithTranslation(tr).
func TranslationTransform(tr Vec2) AffineTransform {
	return Identity().WithTranslation(tr)
}

// Translation returns the last column (M02, M12).
func (t AffineTransform) Translation() Vec2 {
	return Vec2{X: t.M02, Y: t.M12}
}

// BetweenRects returns the transform with translation to.Origin-from.Origin
// and scale to.Size/from.Size.
//
// The translation is set first and the scale overwrites only the diagonal,
// so the translation is not scaled: TransformPosition computes
// p*scale + (to.Origin - from.Origin). That maps from onto to only when
// from sits at the origin. Callers depend on this behavior; keep it.
//
// A zero component in from.Size produces Inf or NaN.
func BetweenRects(from, to Rect) AffineTransform {
	return TranslationTransform(to.Origin.Minus(from.Origin)).
		WithScale(Vec2{
			X: to.Size.X / from.Size.X,
			Y: to.Size.Y / from.Size.Y,
		})
}

// Times returns the composition t∘o: o is applied first, then t.
func (t AffineTransform) Times(o AffineTransform) AffineTransform {
	return AffineTransform{
		M00: t.M00*o.M00 + t.M01*o.M10,
		M01: t.M00*o.M01 + t.M01*o.M11,
		M02: t.M00*o.M02 + t.M01*o.M12 + t.M02,

		M10: t.M10*o.M00 + t.M11*o.M10,
		M11: t.M10*o.M01 + t.M11*o.M11,
		M12: t.M10*o.M02 + t.M11*o.M12 + t.M12,
	}
}

// TransformVector applies the linear part of t to v, ignoring translation.
func (t AffineTransform) TransformVector(v Vec2) Vec2 {
	return Vec2{
		X: v.X*t.M00 + v.Y*t.M01,
		Y: v.X*t.M10 + v.Y*t.M11,
	}
}

// TransformPosition applies t to the point v, including translation.
func (t AffineTransform) TransformPosition(v Vec2) Vec2 {
	return Vec2{
		X: v.X*t.M00 + v.Y*t.M01 + t.M02,
		Y: v.X*t.M10 + v.Y*t.M11 + t.M12,
	}
}

// Flatten returns t as a column-major 3x3 homogeneous matrix, the layout a
// GLSL mat3 uniform expects:
//
//	[M00, M10, 0, M01, M11, 0, M02, M12, 1]
func (t AffineTransform) Flatten() [9]float64 {
	return [9]float64{
		t.M00, t.M10, 0,
		t.M01, t.M11, 0,
		t.M02, t.M12, 1,
	}
}

func (t AffineTransform) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g]", t.M00, t.M01, t.M02, t.M10, t.M11, t.M12)
}
