package gg

import (
	"math"
	"testing"
)

func matrixClose(a, b Matrix, eps float64) bool {
	return math.Abs(a.A-b.A) < eps && math.Abs(a.B-b.B) < eps &&
		math.Abs(a.C-b.C) < eps && math.Abs(a.D-b.D) < eps &&
		math.Abs(a.E-b.E) < eps && math.Abs(a.F-b.F) < eps
}

func TestIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Fatal("Identity() is not identity")
	}
	if !Identity().IsTranslation() {
		t.Fatal("Identity() should also be a translation (by zero)")
	}
}

func TestTranslateScaleClassification(t *testing.T) {
	if !Translate(5, -3).IsTranslation() {
		t.Error("Translate should be a translation")
	}
	if Scale(2, 2).IsTranslation() {
		t.Error("Scale should not be classified as translation")
	}
	if Scale(2, 2).IsIdentity() {
		t.Error("Scale(2,2) should not be identity")
	}
}

func TestMultiplyComposesInCallOrder(t *testing.T) {
	// translate then scale: applying to origin-adjacent point must match
	// manually applying scale first, then translate.
	m := Identity().Multiply(Translate(10, 0)).Multiply(Scale(2, 2))
	p := m.TransformPoint(Point{X: 1, Y: 1})
	want := Translate(10, 0).TransformPoint(Scale(2, 2).TransformPoint(Point{X: 1, Y: 1}))
	if math.Abs(p.X-want.X) > 1e-9 || math.Abs(p.Y-want.Y) > 1e-9 {
		t.Errorf("Multiply order mismatch: got %+v, want %+v", p, want)
	}
}

func TestInverseIdentityLaw(t *testing.T) {
	matrices := []Matrix{
		Identity(),
		Translate(5, 10),
		Scale(2, 3),
		Rotate(math.Pi / 4),
		Shear(0.3, 0.1),
		Identity().Multiply(Translate(4, 4)).Multiply(Rotate(1.0)).Multiply(Scale(2, 0.5)),
	}
	for _, m := range matrices {
		inv, ok := m.Invert()
		if !ok {
			t.Fatalf("Invert() failed for non-singular matrix %+v", m)
		}
		got := m.Multiply(inv)
		if !matrixClose(got, Identity(), 1e-9) {
			t.Errorf("m * m^-1 = %+v, want identity", got)
		}
	}
}

func TestInverseSingular(t *testing.T) {
	m := Matrix{} // all-zero, singular
	inv, ok := m.Invert()
	if ok {
		t.Fatal("expected Invert() to report failure on singular matrix")
	}
	if !inv.IsIdentity() {
		t.Errorf("expected identity fallback on singular invert, got %+v", inv)
	}
}

func TestRotateUsesNegatedAngleForYDown(t *testing.T) {
	// Rotating (1,0) by +90deg in a y-down frame should land on (0,-1),
	// i.e. visually clockwise becomes a negative-Y move.
	m := Rotate(math.Pi / 2)
	p := m.TransformPoint(Point{X: 1, Y: 0})
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y+1) > 1e-9 {
		t.Errorf("Rotate(pi/2)*(1,0) = %+v, want (0,-1)", p)
	}
}

func TestExtractScale(t *testing.T) {
	sx, sy := Scale(3, 5).ExtractScale()
	if math.Abs(sx-3) > 1e-9 || math.Abs(sy-5) > 1e-9 {
		t.Errorf("ExtractScale() = (%v, %v), want (3, 5)", sx, sy)
	}
}

func TestExtractLinearZeroesTranslation(t *testing.T) {
	m := Translate(7, 9).Multiply(Scale(2, 2)).ExtractLinear()
	if m.E != 0 || m.F != 0 {
		t.Errorf("ExtractLinear() left translation E=%v F=%v", m.E, m.F)
	}
}
