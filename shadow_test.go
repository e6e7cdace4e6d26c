package gg

import "testing"

// TestShadowDefaultIsTransparent tests that a zero-value Paint has no
// visible shadow, matching the "shadow transparent black" graphics-state
// default.
func TestShadowDefaultIsTransparent(t *testing.T) {
	p := NewPaint()
	if p.Shadow.Color.A != 0 {
		t.Errorf("default Shadow.Color.A = %v, want 0", p.Shadow.Color.A)
	}
	if !p.Shadow.none() {
		t.Error("default Shadow.none() = false, want true")
	}
	if shadowVisible(p) {
		t.Error("shadowVisible(default paint) = true, want false")
	}
}

// TestShadowVisibleRequiresOffsetOrBlur tests that a shadow with a color
// but no offset and no blur is not visible (it would land exactly on the
// source shape).
func TestShadowVisibleRequiresOffsetOrBlur(t *testing.T) {
	p := NewPaint()
	p.Shadow.Color = Black
	if shadowVisible(p) {
		t.Error("shadowVisible = true for zero offset and zero blur, want false")
	}

	p.Shadow.OffsetX = 2
	if !shadowVisible(p) {
		t.Error("shadowVisible = false with non-zero offset, want true")
	}
}

// TestPaintCloneCopiesShadow tests that Clone carries the shadow style.
func TestPaintCloneCopiesShadow(t *testing.T) {
	p := NewPaint()
	p.Shadow = Shadow{Color: Red, OffsetX: 3, OffsetY: 4, Blur: 2}

	clone := p.Clone()
	if clone.Shadow != p.Shadow {
		t.Errorf("clone.Shadow = %+v, want %+v", clone.Shadow, p.Shadow)
	}
}

// TestContextShadowSetters tests the Context-level shadow convenience API.
func TestContextShadowSetters(t *testing.T) {
	ctx := NewContext(10, 10)
	ctx.SetShadowColor(Black)
	ctx.SetShadowOffset(5, 6)
	ctx.SetShadowBlur(3)

	s := ctx.Shadow()
	if s.Color != Black || s.OffsetX != 5 || s.OffsetY != 6 || s.Blur != 3 {
		t.Errorf("Shadow() = %+v, want {Black 5 6 3}", s)
	}
}

// TestFillRectWithShadowPaintsOffsetDarkRegion tests that filling a shape
// with a shadow leaves darkened pixels near the offset position, distinct
// from the unshadowed fill.
func TestFillRectWithShadowPaintsOffsetDarkRegion(t *testing.T) {
	ctx := NewContext(60, 60)
	ctx.ClearWithColor(White)
	ctx.SetRGB(0, 0, 1) // blue square
	ctx.SetShadowColor(RGBA2(0, 0, 0, 1))
	ctx.SetShadowOffset(10, 10)
	ctx.SetShadowBlur(0)

	ctx.MoveTo(10, 10)
	ctx.LineTo(30, 10)
	ctx.LineTo(30, 30)
	ctx.LineTo(10, 30)
	ctx.ClosePath()
	if err := ctx.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	// The shadow lands under the square's offset footprint, outside the
	// square itself (e.g. at (35, 35), within [30,40)x[30,40)).
	shadowPixel := ctx.pixmap.GetPixel(35, 35)
	if shadowPixel.R > 0.5 || shadowPixel.G > 0.5 || shadowPixel.B > 0.5 {
		t.Errorf("expected a dark shadow pixel at (35, 35), got %+v", shadowPixel)
	}

	// The square itself is still drawn at its own position, unshadowed blue.
	squarePixel := ctx.pixmap.GetPixel(15, 15)
	if squarePixel.B < 0.5 {
		t.Errorf("expected the source shape to still render blue at (15, 15), got %+v", squarePixel)
	}
}

// TestFillRectShadowTransparentIsNoOp tests that a transparent shadow
// color draws nothing beyond the plain fill.
func TestFillRectShadowTransparentIsNoOp(t *testing.T) {
	ctx := NewContext(60, 60)
	ctx.ClearWithColor(White)
	ctx.SetRGB(0, 0, 1)
	ctx.SetShadowOffset(10, 10)
	ctx.SetShadowBlur(2)
	// Shadow color left at its default, transparent.

	ctx.MoveTo(10, 10)
	ctx.LineTo(30, 10)
	ctx.LineTo(30, 30)
	ctx.LineTo(10, 30)
	ctx.ClosePath()
	if err := ctx.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	pixel := ctx.pixmap.GetPixel(35, 35)
	if pixel.R != 1 || pixel.G != 1 || pixel.B != 1 {
		t.Errorf("expected untouched white pixel with a transparent shadow color, got %+v", pixel)
	}
}

// TestBoxBlurAlphaSpreadsCoverage tests that blurring a single opaque
// pixel's alpha spreads nonzero coverage to its neighbors.
func TestBoxBlurAlphaSpreadsCoverage(t *testing.T) {
	const w, h = 9, 9
	buf := make([]float64, w*h)
	buf[4*w+4] = 1 // center pixel fully opaque

	boxBlurAlpha(buf, w, h, 2)

	if buf[4*w+4] >= 1 {
		t.Errorf("center alpha after blur = %v, want < 1 (energy spread out)", buf[4*w+4])
	}
	if buf[4*w+3] <= 0 {
		t.Errorf("neighbor alpha after blur = %v, want > 0", buf[4*w+3])
	}
}

// TestBoxBlurAlphaNoOpAtZeroSigma tests that a zero sigma leaves the
// buffer untouched.
func TestBoxBlurAlphaNoOpAtZeroSigma(t *testing.T) {
	buf := []float64{0, 1, 0, 0, 1, 0, 0, 1, 0}
	want := append([]float64(nil), buf...)
	boxBlurAlpha(buf, 3, 3, 0)
	for i := range buf {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %v, want %v (no-op at sigma=0)", i, buf[i], want[i])
		}
	}
}
