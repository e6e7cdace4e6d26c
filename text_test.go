package gg

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gg/text"
)

func testFace(t *testing.T, size float64) text.Face {
	t.Helper()
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	t.Cleanup(func() { _ = source.Close() })
	return source.Face(size)
}

func TestFillTextWithoutFontIsNoOp(t *testing.T) {
	ctx := NewContext(50, 50)
	ctx.ClearWithColor(White)
	ctx.SetRGB(0, 0, 0)
	if err := ctx.FillText("A", 10, 30); err != nil {
		t.Fatalf("FillText: %v", err)
	}
	pixel := ctx.pixmap.GetPixel(10, 30)
	if pixel.R != 1 || pixel.G != 1 || pixel.B != 1 {
		t.Errorf("expected untouched white pixel with no font set, got %+v", pixel)
	}
}

func TestFillTextDrawsGlyph(t *testing.T) {
	ctx := NewContext(200, 100)
	ctx.ClearWithColor(White)
	ctx.SetFont(testFace(t, 48))
	ctx.SetRGB(0, 0, 0)

	if err := ctx.FillText("I", 20, 70); err != nil {
		t.Fatalf("FillText: %v", err)
	}

	found := false
	for y := 20; y < 90 && !found; y++ {
		for x := 10; x < 60; x++ {
			p := ctx.pixmap.GetPixel(x, y)
			if p.R < 0.5 && p.G < 0.5 && p.B < 0.5 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected at least one dark pixel from the glyph outline")
	}
}

func TestMeasureStringNoFont(t *testing.T) {
	ctx := NewContext(10, 10)
	w, h := ctx.MeasureString("hello")
	if w != 0 || h != 0 {
		t.Errorf("MeasureString without a font = (%f, %f), want (0, 0)", w, h)
	}
}

func TestMeasureStringGrowsWithText(t *testing.T) {
	ctx := NewContext(10, 10)
	ctx.SetFont(testFace(t, 16))

	w1, _ := ctx.MeasureString("A")
	w2, _ := ctx.MeasureString("AAAA")
	if w2 <= w1 {
		t.Errorf("MeasureString(\"AAAA\") = %f, want > MeasureString(\"A\") = %f", w2, w1)
	}
}

func TestPushPopRestoresFontAndPaint(t *testing.T) {
	ctx := NewContext(10, 10)
	ctx.SetRGB(1, 0, 0)
	ctx.SetFont(testFace(t, 12))
	before := ctx.FillBrush()

	ctx.Push()
	ctx.SetRGB(0, 1, 0)
	ctx.SetFont(testFace(t, 40))
	ctx.Pop()

	if got := ctx.FillBrush(); got != before {
		t.Errorf("FillBrush after Pop = %v, want %v (restored)", got, before)
	}
	if got := ctx.Font().Size(); got != 12 {
		t.Errorf("Font().Size() after Pop = %f, want 12", got)
	}
}

func TestStrokeTextNoOpWithoutFont(t *testing.T) {
	ctx := NewContext(10, 10)
	if err := ctx.StrokeText("x", 0, 0); err != nil {
		t.Fatalf("StrokeText: %v", err)
	}
}
