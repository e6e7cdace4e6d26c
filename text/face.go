package text

import "iter"

// Face is a lightweight font instance at a specific size, direction, and
// shared FontSource. Faces are cheap to create; callers typically create
// one per (font, size, direction) combination rather than caching at a
// finer grain.
type Face struct {
	source    *FontSource
	size      float64
	direction Direction
}

// FaceOption configures FontSource.Face.
type FaceOption func(*faceConfig)

type faceConfig struct {
	direction Direction
}

// WithDirection sets the text direction for a Face. Default is LTR.
func WithDirection(d Direction) FaceOption {
	return func(c *faceConfig) { c.direction = d }
}

// Valid reports whether the Face has a live backing FontSource.
func (f Face) Valid() bool {
	return f.source != nil && !f.source.closed
}

// Source returns the FontSource this Face was derived from.
func (f Face) Source() *FontSource {
	return f.source
}

// Size returns the Face's pixel size.
func (f Face) Size() float64 {
	return f.size
}

// Direction returns the Face's text direction.
func (f Face) Direction() Direction {
	return f.direction
}

// Metrics returns font metrics scaled to this Face's size.
func (f Face) Metrics() Metrics {
	if !f.Valid() {
		return Metrics{}
	}
	fm := f.source.parsed.Metrics(f.size)
	// FontMetrics.Descent is negative (sfnt convention); Metrics.Descent is
	// the positive distance below the baseline (see types.go).
	return Metrics{
		Ascent:    fm.Ascent,
		Descent:   -fm.Descent,
		LineGap:   fm.LineGap,
		XHeight:   fm.XHeight,
		CapHeight: fm.CapHeight,
	}
}

// HasGlyph reports whether the font has a glyph for r.
func (f Face) HasGlyph(r rune) bool {
	if !f.Valid() {
		return false
	}
	return f.source.parsed.GlyphIndex(r) != 0
}

// Advance returns the total horizontal advance of text at this Face's size.
func (f Face) Advance(text string) float64 {
	if !f.Valid() {
		return 0
	}
	var total float64
	for _, r := range text {
		gid := f.source.parsed.GlyphIndex(r)
		total += f.source.parsed.GlyphAdvance(gid, f.size)
	}
	return total
}

// Glyphs lazily shapes text into positioned glyphs using simple left-to-
// right (or top-to-bottom) pen advancement — no kerning, ligatures, or
// complex-script reordering, per the sub-pixel text hinting Non-goal in
// spec.md §1. Range over the returned sequence; iteration can be stopped
// early by the caller.
func (f Face) Glyphs(text string) iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		if !f.Valid() {
			return
		}
		var x, y float64
		idx := 0
		for _, r := range text {
			gid := f.source.parsed.GlyphIndex(r)
			advance := f.source.parsed.GlyphAdvance(gid, f.size)
			bounds := f.source.parsed.GlyphBounds(gid, f.size)
			g := Glyph{
				Rune:    r,
				GID:     GlyphID(gid),
				X:       x,
				Y:       y,
				OriginX: x,
				OriginY: y,
				Advance: advance,
				Bounds:  bounds,
				Index:   idx,
				Cluster: idx,
				Flags:   GlyphFlagClusterStart,
				Type:    GlyphTypeOutline,
			}
			if !yield(g) {
				return
			}
			if f.direction.IsVertical() {
				y += advance
			} else {
				x += advance
			}
			idx++
		}
	}
}

// AppendGlyphs appends the shaped glyphs of text to dst and returns the
// resulting slice, matching the output of Glyphs but amortizing allocation
// for repeated calls.
func (f Face) AppendGlyphs(dst []Glyph, text string) []Glyph {
	for g := range f.Glyphs(text) {
		dst = append(dst, g)
	}
	return dst
}

// RuneOutline returns the glyph outline for r, scaled to this Face's size,
// with Y already flipped into canvas space. This is the seam the core
// drawing API (Context.FillText / Context.StrokeText) uses to turn a
// character into a polygon, matching the font-engine contract of spec.md
// §6: "given a character code ... returns a polygon outline and an advance
// vector". ok is false if the font has no glyph for r.
func (f Face) RuneOutline(r rune) (outline Outline, ok bool) {
	if !f.Valid() {
		return Outline{}, false
	}
	gid := f.source.parsed.GlyphIndex(r)
	return f.source.parsed.Outline(gid, f.size)
}
