package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// sample transforms with nonzero shear so every term of Times is exercised.
var sampleTransforms = []AffineTransform{
	Identity(),
	ScaleTransform(V(2, 3)),
	TranslationTransform(V(5, -2)),
	NewAffineTransform(1, 0.5, 3, -0.25, 2, -7),
	NewAffineTransform(0, -1, 10, 1, 0, 4),
	NewAffineTransform(1.5, 2.25, -0.125, 3.75, -1, 8),
}

func components(t AffineTransform) []float64 {
	return []float64{t.M00, t.M01, t.M02, t.M10, t.M11, t.M12}
}

// homogeneous returns t as a row-major 3x3 matrix with the implicit [0 0 1] row.
func homogeneous(t AffineTransform) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		t.M00, t.M01, t.M02,
		t.M10, t.M11, t.M12,
		0, 0, 1,
	})
}

func TestIdentityIsNeutral(t *testing.T) {
	id := Identity()
	for _, tr := range sampleTransforms {
		if got := tr.Times(id); got != tr {
			t.Errorf("%v.Times(identity) = %v", tr, got)
		}
		if got := id.Times(tr); got != tr {
			t.Errorf("identity.Times(%v) = %v", tr, got)
		}
	}
}

func TestNewAffineTransformIdentityDefault(t *testing.T) {
	if got := NewAffineTransform(1, 0, 0, 0, 1, 0); got != Identity() {
		t.Errorf("expected identity, got %v", got)
	}
	if (AffineTransform{}) == Identity() {
		t.Error("zero value should not be the identity")
	}
}

func TestScaleTransform(t *testing.T) {
	tr := ScaleTransform(V(2, 3))

	if got := tr.TransformPosition(V(1, 1)); got != V(2, 3) {
		t.Errorf("TransformPosition: got %v, want (2, 3)", got)
	}
	if got := tr.Scale(); got != V(2, 3) {
		t.Errorf("Scale: got %v, want (2, 3)", got)
	}
	if got := tr.Translation(); got != (Vec2{}) {
		t.Errorf("Translation: got %v, want (0, 0)", got)
	}
}

func TestTranslationTransform(t *testing.T) {
	tr := TranslationTransform(V(5, -2))

	if got := tr.TransformPosition(V(0, 0)); got != V(5, -2) {
		t.Errorf("TransformPosition: got %v, want (5, -2)", got)
	}
	if got := tr.TransformVector(V(1, 1)); got != V(1, 1) {
		t.Errorf("TransformVector should ignore translation, got %v", got)
	}
	if got := tr.Translation(); got != V(5, -2) {
		t.Errorf("Translation: got %v", got)
	}
}

func TestWithScaleOverwritesDiagonalOnly(t *testing.T) {
	tr := NewAffineTransform(1, 0.5, 3, -0.25, 2, -7)
	got := tr.WithScale(V(9, 8))

	want := NewAffineTransform(9, 0.5, 3, -0.25, 8, -7)
	if got != want {
		t.Errorf("WithScale: got %v, want %v", got, want)
	}
}

func TestWithTranslationOverwritesLastColumnOnly(t *testing.T) {
	tr := NewAffineTransform(1, 0.5, 3, -0.25, 2, -7)
	got := tr.WithTranslation(V(9, 8))

	want := NewAffineTransform(1, 0.5, 9, -0.25, 2, 8)
	if got != want {
		t.Errorf("WithTranslation: got %v, want %v", got, want)
	}
}

func TestTimesOrder(t *testing.T) {
	scale := ScaleTransform(V(2, 2))
	move := TranslationTransform(V(1, 0))
	p := V(1, 1)

	// scale.Times(move) moves first, then scales.
	if got := scale.Times(move).TransformPosition(p); got != V(4, 2) {
		t.Errorf("scale∘move: got %v, want (4, 2)", got)
	}
	// move.Times(scale) scales first, then moves.
	if got := move.Times(scale).TransformPosition(p); got != V(3, 2) {
		t.Errorf("move∘scale: got %v, want (3, 2)", got)
	}
}

func TestTimesMatchesMatrixProduct(t *testing.T) {
	for _, a := range sampleTransforms {
		for _, b := range sampleTransforms {
			var want mat.Dense
			want.Mul(homogeneous(a), homogeneous(b))

			got := homogeneous(a.Times(b))
			if !mat.EqualApprox(got, &want, 1e-12) {
				t.Errorf("%v.Times(%v):\ngot  %v\nwant %v",
					a, b, mat.Formatted(got), mat.Formatted(&want))
			}
		}
	}
}

func TestTimesAssociative(t *testing.T) {
	for _, a := range sampleTransforms {
		for _, b := range sampleTransforms {
			for _, c := range sampleTransforms {
				left := components(a.Times(b).Times(c))
				right := components(a.Times(b.Times(c)))
				for i := range left {
					if !scalar.EqualWithinAbsOrRel(left[i], right[i], 1e-12, 1e-12) {
						t.Errorf("(AB)C != A(BC) for %v %v %v: %v vs %v", a, b, c, left, right)
						break
					}
				}
			}
		}
	}
}

func TestTransformPositionMatchesComposition(t *testing.T) {
	a := NewAffineTransform(1, 0.5, 3, -0.25, 2, -7)
	b := NewAffineTransform(0, -1, 10, 1, 0, 4)
	p := V(1.5, -2)

	got := a.Times(b).TransformPosition(p)
	want := a.TransformPosition(b.TransformPosition(p))
	if !scalar.EqualWithinAbsOrRel(got.X, want.X, 1e-12, 1e-12) ||
		!scalar.EqualWithinAbsOrRel(got.Y, want.Y, 1e-12, 1e-12) {
		t.Errorf("composed position %v, sequential %v", got, want)
	}
}

func TestTransformVectorLinearPart(t *testing.T) {
	tr := NewAffineTransform(1, 2, 100, 3, 4, 200)
	if got := tr.TransformVector(V(1, 1)); got != V(3, 7) {
		t.Errorf("TransformVector: got %v, want (3, 7)", got)
	}
	if got := tr.TransformPosition(V(1, 1)); got != V(103, 207) {
		t.Errorf("TransformPosition: got %v, want (103, 207)", got)
	}
}

func TestFlatten(t *testing.T) {
	got := ScaleTransform(V(2, 2)).Flatten()
	want := [9]float64{2, 0, 0, 0, 2, 0, 0, 0, 1}
	if got != want {
		t.Errorf("Flatten: got %v, want %v", got, want)
	}
}

func TestFlattenIsColumnMajor(t *testing.T) {
	for _, tr := range sampleTransforms {
		// Column-major order of H is row-major order of H transposed.
		transposed := mat.DenseCopyOf(homogeneous(tr).T())
		want := transposed.RawMatrix().Data

		got := tr.Flatten()
		if !floats.Equal(got[:], want) {
			t.Errorf("Flatten(%v) = %v, want %v", tr, got, want)
		}
	}
}

// BetweenRects keeps the translation unscaled. This pins the existing
// behavior rather than a full rect-to-rect mapping.
func TestBetweenRects(t *testing.T) {
	from := NewRect(V(1, 1), V(2, 2))
	to := NewRect(V(3, 3), V(4, 4))

	tr := BetweenRects(from, to)

	if got := tr.Translation(); got != V(2, 2) {
		t.Errorf("translation: got %v, want (2, 2)", got)
	}
	if got := tr.Scale(); got != V(2, 2) {
		t.Errorf("scale: got %v, want (2, 2)", got)
	}
	if tr.M01 != 0 || tr.M10 != 0 {
		t.Errorf("expected no shear, got %v", tr)
	}

	// p*scale + (to.Origin - from.Origin), not to.Origin + (p-from.Origin)*scale.
	if got := tr.TransformPosition(from.TopLeft()); got != V(4, 4) {
		t.Errorf("TransformPosition(from.TopLeft) = %v, want (4, 4)", got)
	}
}

func TestBetweenRectsAtOrigin(t *testing.T) {
	from := NewRect(V(0, 0), V(10, 5))
	to := NewRect(V(2, 3), V(20, 20))

	tr := BetweenRects(from, to)

	if got := tr.TransformPosition(from.TopLeft()); got != to.TopLeft() {
		t.Errorf("top left: got %v, want %v", got, to.TopLeft())
	}
	if got := tr.TransformPosition(from.BottomRight()); got != to.BottomRight() {
		t.Errorf("bottom right: got %v, want %v", got, to.BottomRight())
	}
}

func TestBetweenRectsZeroSize(t *testing.T) {
	from := NewRect(V(0, 0), V(0, 2))
	to := NewRect(V(1, 1), V(3, 0))

	s := BetweenRects(from, to).Scale()
	if !math.IsInf(s.X, 1) {
		t.Errorf("expected +Inf x scale, got %g", s.X)
	}
	if s.Y != 0 {
		t.Errorf("expected 0 y scale, got %g", s.Y)
	}

	s = BetweenRects(from, Rect{}).Scale()
	if !math.IsNaN(s.X) {
		t.Errorf("expected NaN x scale from 0/0, got %g", s.X)
	}
}
