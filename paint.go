package gg

import "github.com/gogpu/gg/internal/blend"

// CompositeOperation selects the Porter-Duff operator or separable/
// non-separable blend mode used to combine a fill or stroke with the
// existing pixmap contents, mirroring the canvas globalCompositeOperation
// property. The zero value is CompositeSourceOver.
type CompositeOperation = blend.BlendMode

// Composite operation constants, re-exported from internal/blend so callers
// never need to import the internal package directly.
const (
	CompositeClear           = blend.BlendClear
	CompositeSource          = blend.BlendSource
	CompositeDestination     = blend.BlendDestination
	CompositeSourceOver      = blend.BlendSourceOver
	CompositeDestinationOver = blend.BlendDestinationOver
	CompositeSourceIn        = blend.BlendSourceIn
	CompositeDestinationIn   = blend.BlendDestinationIn
	CompositeSourceOut       = blend.BlendSourceOut
	CompositeDestinationOut  = blend.BlendDestinationOut
	CompositeSourceAtop      = blend.BlendSourceAtop
	CompositeDestinationAtop = blend.BlendDestinationAtop
	CompositeXor             = blend.BlendXor
	CompositePlus            = blend.BlendPlus
	CompositeModulate        = blend.BlendModulate

	CompositeMultiply   = blend.BlendMultiply
	CompositeScreen     = blend.BlendScreen
	CompositeOverlay    = blend.BlendOverlay
	CompositeDarken     = blend.BlendDarken
	CompositeLighten    = blend.BlendLighten
	CompositeColorDodge = blend.BlendColorDodge
	CompositeColorBurn  = blend.BlendColorBurn
	CompositeHardLight  = blend.BlendHardLight
	CompositeSoftLight  = blend.BlendSoftLight
	CompositeDifference = blend.BlendDifference
	CompositeExclusion  = blend.BlendExclusion

	CompositeHue        = blend.BlendHue
	CompositeSaturation = blend.BlendSaturation
	CompositeColor      = blend.BlendColor
	CompositeLuminosity = blend.BlendLuminosity
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Shadow describes a drop shadow applied behind a fill or stroke, mirroring
// the canvas shadowColor/shadowOffsetX/shadowOffsetY/shadowBlur properties.
// The zero value is Color: Transparent, OffsetX/OffsetY/Blur: 0 — since
// Transparent is itself the zero RGBA, a zero-value Shadow draws nothing.
type Shadow struct {
	// Color is the shadow's color. A fully transparent color (the default)
	// disables the shadow regardless of OffsetX/OffsetY/Blur.
	Color RGBA

	// OffsetX and OffsetY translate the shadow relative to the source shape,
	// in the same user-space units as the rest of the graphics state.
	OffsetX, OffsetY float64

	// Blur is the Gaussian standard deviation used to soften the shadow's
	// alpha matte. Zero means a hard-edged shadow.
	Blur float64
}

// none reports whether the shadow is fully transparent and unblurred/
// unoffset, i.e. has no visible effect and can be skipped entirely.
func (s Shadow) none() bool {
	return s.Color.A == 0
}

// Paint represents the styling information for drawing.
type Paint struct {
	// Pattern is the fill or stroke pattern. Brush is the preferred, newer
	// API; Pattern is kept in sync via SetBrush/BrushFromPattern so legacy
	// code paths (currentColor, SolidPattern checks) keep working.
	Pattern Pattern

	// Brush is the fill/stroke brush (solid, gradient, image or custom).
	Brush Brush

	// LineWidth is the width of strokes
	LineWidth float64

	// LineCap is the shape of line endpoints
	LineCap LineCap

	// LineJoin is the shape of line joins
	LineJoin LineJoin

	// MiterLimit is the miter limit for sharp joins
	MiterLimit float64

	// FillRule is the fill rule for paths
	FillRule FillRule

	// Antialias enables anti-aliasing
	Antialias bool

	// Stroke holds the full stroke style (width/cap/join/miter/dash) once
	// any of SetStroke/SetDash/SetDashOffset has been called. Nil means
	// "derive from the legacy LineWidth/LineCap/LineJoin/MiterLimit fields".
	Stroke *Stroke

	// TransformScale is the current context matrix's uniform scale factor,
	// refreshed before each stroke so hairline/dash lengths are measured
	// in device space regardless of the active transform.
	TransformScale float64

	// CompositeOp selects how the rendered coverage combines with the
	// existing pixmap contents. Default: CompositeSourceOver.
	CompositeOp CompositeOperation

	// GlobalAlpha is an extra opacity multiplier, applied on top of the
	// brush/pattern's own alpha. Default: 1.0 (opaque).
	GlobalAlpha float64

	// Shadow describes the drop shadow drawn behind fills and strokes.
	// Default: transparent (no shadow).
	Shadow Shadow
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	brush := Solid(Black)
	return &Paint{
		Pattern:        NewSolidPattern(Black),
		Brush:          brush,
		LineWidth:      1.0,
		LineCap:        LineCapButt,
		LineJoin:       LineJoinMiter,
		MiterLimit:     10.0,
		FillRule:       FillRuleNonZero,
		Antialias:      true,
		TransformScale: 1.0,
		CompositeOp:    CompositeSourceOver,
		GlobalAlpha:    1.0,
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	out := &Paint{
		Pattern:        p.Pattern,
		Brush:          p.Brush,
		LineWidth:      p.LineWidth,
		LineCap:        p.LineCap,
		LineJoin:       p.LineJoin,
		MiterLimit:     p.MiterLimit,
		FillRule:       p.FillRule,
		Antialias:      p.Antialias,
		TransformScale: p.TransformScale,
		CompositeOp:    p.CompositeOp,
		GlobalAlpha:    p.GlobalAlpha,
		Shadow:         p.Shadow,
	}
	if p.Stroke != nil {
		s := p.Stroke.Clone()
		out.Stroke = &s
	}
	return out
}

// SetBrush sets the drawing brush and keeps the legacy Pattern field in
// sync via PatternFromBrush, so code still reading Pattern sees the brush.
func (p *Paint) SetBrush(b Brush) {
	p.Brush = b
	p.Pattern = PatternFromBrush(b)
}

// GetBrush returns the current brush.
func (p *Paint) GetBrush() Brush {
	return p.Brush
}

// SetStroke replaces the full stroke style, including width/cap/join/miter
// (mirrored into the legacy fields for callers that read them directly).
func (p *Paint) SetStroke(s Stroke) {
	p.Stroke = &s
	p.LineWidth = s.Width
	p.LineCap = s.Cap
	p.LineJoin = s.Join
	p.MiterLimit = s.MiterLimit
}

// GetStroke returns the current stroke style, synthesizing one from the
// legacy LineWidth/LineCap/LineJoin/MiterLimit fields if SetStroke/SetDash
// was never called.
func (p *Paint) GetStroke() Stroke {
	if p.Stroke != nil {
		return *p.Stroke
	}
	return Stroke{
		Width:      p.LineWidth,
		Cap:        p.LineCap,
		Join:       p.LineJoin,
		MiterLimit: p.MiterLimit,
	}
}

// IsDashed reports whether the current stroke style has an active dash
// pattern.
func (p *Paint) IsDashed() bool {
	return p.Stroke != nil && p.Stroke.Dash != nil && p.Stroke.Dash.IsDashed()
}
