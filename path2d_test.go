package gg

import (
	"math"
	"testing"
)

func TestPath2DMoveLineClose(t *testing.T) {
	d := NewPath2D()
	d.MoveTo(Identity(), 0, 0)
	d.LineTo(Identity(), 10, 0)
	d.LineTo(Identity(), 10, 10)
	d.Close()

	if d.path.PrimCount() != 4 { // Move, Line, Line, Close
		t.Fatalf("PrimCount() = %d, want 4", d.path.PrimCount())
	}
	typ, _ := d.path.Prim(3)
	if typ != PrimClose {
		t.Errorf("last prim = %v, want Close", typ)
	}
}

func TestPath2DCloseReopensAtSubpathOrigin(t *testing.T) {
	d := NewPath2D()
	d.MoveTo(Identity(), 1, 1)
	d.LineTo(Identity(), 5, 1)
	d.Close()
	d.LineTo(Identity(), 9, 9)

	// After close, a trailing MoveTo(1,1) should have been inserted, so the
	// line-to after it draws from (1,1).
	typ, pts := d.path.Prim(3)
	if typ != PrimMoveTo || pts[0] != (Point{X: 1, Y: 1}) {
		t.Fatalf("prim 3 = %v %v, want MoveTo(1,1)", typ, pts)
	}
}

func TestPath2DTransformAppliedToInput(t *testing.T) {
	d := NewPath2D()
	d.MoveTo(Translate(100, 0), 1, 2)
	_, pts := d.path.Prim(0)
	if pts[0] != (Point{X: 101, Y: 2}) {
		t.Errorf("got %v, want (101,2)", pts[0])
	}
}

func TestPath2DArcToColinearFallsBackToLineTo(t *testing.T) {
	d := NewPath2D()
	d.MoveTo(Identity(), 0, 0)
	d.ArcTo(Identity(), 5, 0, 10, 0, 2) // colinear points
	typ, pts := d.path.Prim(1)
	if typ != PrimLineTo || pts[0] != (Point{X: 5, Y: 0}) {
		t.Errorf("got %v %v, want LineTo(5,0)", typ, pts)
	}
}

func TestPath2DArcToCoincidentFallsBackToLineTo(t *testing.T) {
	d := NewPath2D()
	d.MoveTo(Identity(), 0, 0)
	d.ArcTo(Identity(), 0, 0, 10, 10, 2) // p0 == p1
	typ, pts := d.path.Prim(1)
	if typ != PrimLineTo || pts[0] != (Point{X: 0, Y: 0}) {
		t.Errorf("got %v %v, want LineTo(0,0)", typ, pts)
	}
}

func TestPath2DArcToEmitsCurve(t *testing.T) {
	d := NewPath2D()
	d.MoveTo(Identity(), 0, 0)
	d.ArcTo(Identity(), 10, 0, 10, 10, 2)
	hasCubic := false
	d.path.ForEach(func(typ PrimType, _ []Point) {
		if typ == PrimCubicTo {
			hasCubic = true
		}
	})
	if !hasCubic {
		t.Error("ArcTo on a real corner should emit at least one cubic segment")
	}
}

func TestPath2DArcFullCircleSplitsIntoFourSegments(t *testing.T) {
	d := NewPath2D()
	d.Arc(Identity(), 0, 0, 5, 0, 2*math.Pi, false)
	cubics := 0
	d.path.ForEach(func(typ PrimType, _ []Point) {
		if typ == PrimCubicTo {
			cubics++
		}
	})
	if cubics != 4 {
		t.Errorf("full circle got %d cubic segments, want 4", cubics)
	}
}

func TestPath2DArcQuarterIsOneSegment(t *testing.T) {
	d := NewPath2D()
	d.Arc(Identity(), 0, 0, 5, 0, math.Pi/2, false)
	cubics := 0
	d.path.ForEach(func(typ PrimType, _ []Point) {
		if typ == PrimCubicTo {
			cubics++
		}
	})
	if cubics != 1 {
		t.Errorf("quarter circle got %d cubic segments, want 1", cubics)
	}
}

func TestPath2DArcEndpointsApproximateCircle(t *testing.T) {
	d := NewPath2D()
	d.Arc(Identity(), 0, 0, 5, 0, math.Pi/2, false)
	_, pts := d.path.Prim(0) // initial MoveTo
	start := pts[0]
	if math.Abs(start.X-5) > 1e-6 || math.Abs(start.Y) > 1e-6 {
		t.Errorf("arc start = %v, want (5,0)", start)
	}
	_, last := d.path.Prim(d.path.PrimCount() - 1)
	end := last[len(last)-1]
	if math.Abs(end.X) > 1e-6 || math.Abs(end.Y-5) > 1e-6 {
		t.Errorf("arc end = %v, want (0,5)", end)
	}
}

func TestPath2DReset(t *testing.T) {
	d := NewPath2D()
	d.MoveTo(Identity(), 1, 1)
	d.LineTo(Identity(), 2, 2)
	d.Reset()
	if !d.path.IsEmpty() {
		t.Error("Reset() should leave the path empty")
	}
	if d.hasFirst || d.hasLast {
		t.Error("Reset() should clear first/last bookkeeping")
	}
}
