package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser on top of golang.org/x/image's sfnt/
// opentype packages. It is registered under "ximage" and is the package
// default.
type ximageParser struct{}

func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &ximageFont{font: f}, nil
}

// ximageFont implements ParsedFont over an *opentype.Font. sfnt.Buffer is
// not safe for concurrent use, so every method that touches it takes a
// mutex; FontSource (and therefore every Face derived from it) may be
// shared across canvases per the concurrency model in §5.
type ximageFont struct {
	font *opentype.Font
	mu   sync.Mutex
	buf  sfnt.Buffer
}

func (f *ximageFont) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

func (f *ximageFont) FullName() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFull); err == nil {
		return name
	}
	return ""
}

func (f *ximageFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

func (f *ximageFont) UnitsPerEm() int {
	upm, err := f.font.UnitsPerEm()
	if err != nil {
		return 0
	}
	return int(upm)
}

func (f *ximageFont) GlyphIndex(r rune) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

func (f *ximageFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	adv, err := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(glyphIndex), toFixed(ppem), font.HintingNone)
	if err != nil {
		return 0
	}
	return fromFixed(adv)
}

func (f *ximageFont) GlyphBounds(glyphIndex uint16, ppem float64) Rect {
	f.mu.Lock()
	defer f.mu.Unlock()
	bounds, _, err := f.font.GlyphBounds(&f.buf, sfnt.GlyphIndex(glyphIndex), toFixed(ppem), font.HintingNone)
	if err != nil {
		return Rect{}
	}
	return Rect{
		MinX: fromFixed(bounds.Min.X),
		MinY: fromFixed(bounds.Min.Y),
		MaxX: fromFixed(bounds.Max.X),
		MaxY: fromFixed(bounds.Max.Y),
	}
}

func (f *ximageFont) Metrics(ppem float64) FontMetrics {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.font.Metrics(&f.buf, toFixed(ppem), font.HintingNone)
	if err != nil {
		return FontMetrics{}
	}
	// m.Descent follows the sfnt convention noted on ParsedFont.Metrics:
	// negative (the font's Y axis points up, so "below the baseline" is a
	// negative offset).
	return FontMetrics{
		Ascent:    fromFixed(m.Ascent),
		Descent:   fromFixed(m.Descent),
		LineGap:   fromFixed(m.Height) - fromFixed(m.Ascent) + fromFixed(m.Descent),
		XHeight:   fromFixed(m.XHeight),
		CapHeight: fromFixed(m.CapHeight),
	}
}

// Outline loads the glyph's vector segments and flips Y from the font's
// mathematical (up-positive) convention into canvas (down-positive) space,
// per the design note in SPEC_FULL.md §4.M.
func (f *ximageFont) Outline(glyphIndex uint16, ppem float64) (Outline, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	advance, advErr := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(glyphIndex), toFixed(ppem), font.HintingNone)
	if advErr != nil {
		advance = 0
	}
	out := Outline{Advance: fromFixed(advance)}

	segs, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(glyphIndex), toFixed(ppem), nil)
	if err != nil || len(segs) == 0 {
		return out, false
	}

	minX, minY := float64(1<<30), float64(1<<30)
	maxX, maxY := -float64(1<<30), -float64(1<<30)
	track := func(p Point) {
		minX, minY = min(minX, p.X), min(minY, p.Y)
		maxX, maxY = max(maxX, p.X), max(maxY, p.Y)
	}
	flip := func(p fixed.Point26_6) Point {
		pt := Point{X: fromFixed(p.X), Y: -fromFixed(p.Y)}
		track(pt)
		return pt
	}

	out.Segments = make([]Segment, 0, len(segs))
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Segments = append(out.Segments, Segment{Op: SegMoveTo, Point: flip(seg.Args[0])})
		case sfnt.SegmentOpLineTo:
			out.Segments = append(out.Segments, Segment{Op: SegLineTo, Point: flip(seg.Args[0])})
		case sfnt.SegmentOpQuadTo:
			ctrl := flip(seg.Args[0])
			pt := flip(seg.Args[1])
			out.Segments = append(out.Segments, Segment{Op: SegQuadTo, Control: ctrl, Point: pt})
		case sfnt.SegmentOpCubeTo:
			ctrl1 := flip(seg.Args[0])
			ctrl2 := flip(seg.Args[1])
			pt := flip(seg.Args[2])
			out.Segments = append(out.Segments, Segment{Op: SegCubicTo, Control: ctrl1, Control2: ctrl2, Point: pt})
		}
	}
	out.Bounds = Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	return out, true
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
