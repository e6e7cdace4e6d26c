package gg

import (
	"github.com/gogpu/gg/text"
)

// textOutliner is the seam between the core and the out-of-scope font
// engine of spec.md §1/§6: given a rune it returns a polygon outline and
// an advance, and the core treats that polygon identically to any other
// path. text.Face and *text.MultiFace both satisfy it.
type textOutliner interface {
	RuneOutline(r rune) (text.Outline, bool)
	Direction() text.Direction
}

// textState snapshots the font half of the graphics state for Push/Pop.
type textState struct {
	face     text.Face
	fontFace textOutliner
}

// SetFont installs the face used by FillText, StrokeText, DrawString, and
// MeasureString. Pass a zero text.Face to clear it.
func (c *Context) SetFont(face text.Face) {
	c.face = face
	c.fontFace = nil
}

// SetFontFace installs any textOutliner (a text.Face or *text.MultiFace)
// as the active font, for callers using font fallback chains.
func (c *Context) SetFontFace(face textOutliner) {
	c.fontFace = face
}

// Font returns the currently installed text.Face, if any.
func (c *Context) Font() text.Face {
	return c.face
}

// appendGlyphPath walks a glyph outline, already positioned at pen, through
// the context's current path-building calls — so it receives the same
// transform application as any user-drawn path (spec.md §4.D, §4.K).
func (c *Context) appendGlyphPath(o text.Outline, pen Point) {
	for _, seg := range o.Segments {
		switch seg.Op {
		case text.SegMoveTo:
			c.MoveTo(pen.X+seg.Point.X, pen.Y+seg.Point.Y)
		case text.SegLineTo:
			c.LineTo(pen.X+seg.Point.X, pen.Y+seg.Point.Y)
		case text.SegQuadTo:
			c.QuadraticTo(pen.X+seg.Control.X, pen.Y+seg.Control.Y, pen.X+seg.Point.X, pen.Y+seg.Point.Y)
		case text.SegCubicTo:
			c.CubicTo(
				pen.X+seg.Control.X, pen.Y+seg.Control.Y,
				pen.X+seg.Control2.X, pen.Y+seg.Control2.Y,
				pen.X+seg.Point.X, pen.Y+seg.Point.Y,
			)
		}
	}
	if len(o.Segments) > 0 {
		c.ClosePath()
	}
}

// activeFont resolves the outliner to use for a draw: an explicit
// SetFontFace takes precedence over SetFont.
func (c *Context) activeFont() textOutliner {
	if c.fontFace != nil {
		return c.fontFace
	}
	if c.face.Valid() {
		return c.face
	}
	return nil
}

// buildTextPath walks s glyph by glyph, advancing pen, appending each
// glyph's outline to the current path. It returns the final pen position.
// A glyph with no outline (missing from the font) draws nothing and
// advances by zero, per spec.md §6's font-interface failure contract.
func (c *Context) buildTextPath(s string, x, y float64) Point {
	font := c.activeFont()
	if font == nil {
		return Pt(x, y)
	}
	pen := Pt(x, y)
	vertical := font.Direction().IsVertical()
	for _, r := range s {
		outline, ok := font.RuneOutline(r)
		if !ok {
			Logger().Warn("gg: text: no outline for rune", "rune", r)
			continue
		}
		c.appendGlyphPath(outline, pen)
		if vertical {
			pen.Y += outline.Advance
		} else {
			pen.X += outline.Advance
		}
	}
	return pen
}

// FillText fills the glyph outlines of s at baseline origin (x, y) using
// the current fill style, identically to Fill on a hand-built path. A
// missing font (SetFont/SetFontFace never called) is a silent no-op per
// spec.md §7's silent-best-effort contract for drawing calls.
func (c *Context) FillText(s string, x, y float64) error {
	c.buildTextPath(s, x, y)
	return c.Fill()
}

// StrokeText strokes the glyph outlines of s at baseline origin (x, y)
// using the current stroke style and line width.
func (c *Context) StrokeText(s string, x, y float64) error {
	c.buildTextPath(s, x, y)
	return c.Stroke()
}

// DrawString fills s at baseline origin (x, y), fogleman/gg-style.
func (c *Context) DrawString(s string, x, y float64) {
	_ = c.FillText(s, x, y)
}

// DrawStringAnchored draws s with its bounding box anchored relative to
// (x, y): ax, ay in [0,1] give the fraction of the text width/height to
// subtract from the origin (0,0 anchors at the baseline start; 0.5,0.5
// centers the string on the point).
func (c *Context) DrawStringAnchored(s string, x, y, ax, ay float64) {
	w, h := c.MeasureString(s)
	_ = c.FillText(s, x-ax*w, y+(1-ay)*h)
}

// MeasureString returns the rendered advance width and line height of s
// using the active font, or (0,0) if no font is set.
func (c *Context) MeasureString(s string) (w, h float64) {
	font := c.activeFont()
	if font == nil {
		return 0, 0
	}
	if face, ok := font.(text.Face); ok {
		return face.Advance(s), face.Metrics().LineHeight()
	}
	var advance, maxHeight float64
	for _, r := range s {
		outline, ok := font.RuneOutline(r)
		if !ok {
			continue
		}
		advance += outline.Advance
		if bh := outline.Bounds.Height(); bh > maxHeight {
			maxHeight = bh
		}
	}
	return advance, maxHeight
}

// LoadFontFace loads a TrueType/OpenType font from path at the given pixel
// size and installs it as the active font in one step.
func (c *Context) LoadFontFace(path string, points float64) error {
	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return err
	}
	c.SetFont(source.Face(points))
	return nil
}
