package geom

import (
	"math"
	"testing"
)

func TestVec2Identities(t *testing.T) {
	vecs := []Vec2{
		{},
		V(1, 2),
		V(-3.5, 7.25),
		V(1e9, -1e-9),
	}

	for _, v := range vecs {
		if got := v.Plus(Vec2{}); got != v {
			t.Errorf("%v.Plus(0) = %v, want %v", v, got, v)
		}
		if got := v.Minus(v); got != (Vec2{}) {
			t.Errorf("%v.Minus(self) = %v, want (0, 0)", v, got)
		}
		if got := v.Times(1); got != v {
			t.Errorf("%v.Times(1) = %v, want %v", v, got, v)
		}
	}
}

func TestVec2WithComponent(t *testing.T) {
	v := V(1, 2)

	if got := v.WithX(9); got != V(9, 2) {
		t.Errorf("WithX: got %v", got)
	}
	if got := v.WithY(9); got != V(1, 9) {
		t.Errorf("WithY: got %v", got)
	}
	if v != V(1, 2) {
		t.Errorf("original vector was modified: %v", v)
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	if got := a.Plus(b); got != V(4, -2) {
		t.Errorf("Plus: got %v", got)
	}
	if got := a.Minus(b); got != V(-2, 6) {
		t.Errorf("Minus: got %v", got)
	}
	if got := a.Times(2.5); got != V(2.5, 5) {
		t.Errorf("Times: got %v", got)
	}
	if got := a.TimesPointwise(b); got != V(3, -8) {
		t.Errorf("TimesPointwise: got %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot: got %g, want -5", got)
	}
}

func TestVec2Length(t *testing.T) {
	if got := V(3, 4).Length(); got != 5 {
		t.Errorf("expected length 5, got %g", got)
	}
	if got := V(3, 4).Length2(); got != 25 {
		t.Errorf("expected length2 25, got %g", got)
	}
	if got := (Vec2{}).Length(); got != 0 {
		t.Errorf("expected zero vector length 0, got %g", got)
	}
}

func TestVec2MinMax(t *testing.T) {
	a := V(1, 5)
	b := V(4, 2)

	if got := Min(a, b); got != V(1, 2) {
		t.Errorf("Min: got %v, want (1, 2)", got)
	}
	if got := Max(a, b); got != V(4, 5) {
		t.Errorf("Max: got %v, want (4, 5)", got)
	}
}

func TestVec2NaNPropagates(t *testing.T) {
	v := V(math.NaN(), 1)

	if got := v.Plus(V(1, 1)); !math.IsNaN(got.X) || got.Y != 2 {
		t.Errorf("Plus with NaN: got %v", got)
	}
	if got := Min(v, V(0, 0)); !math.IsNaN(got.X) {
		t.Errorf("Min with NaN: expected NaN X, got %v", got)
	}
	if got := v.Length(); !math.IsNaN(got) {
		t.Errorf("Length with NaN: got %g", got)
	}
}

func TestVec2Flatten(t *testing.T) {
	if got := V(7, -3).Flatten(); got != [2]float64{7, -3} {
		t.Errorf("Flatten: got %v, want [7 -3]", got)
	}
}
