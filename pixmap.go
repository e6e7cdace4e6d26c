package gg

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Compile-time interface checks.
var (
	_ image.Image = (*Pixmap)(nil)
	_ draw.Image  = (*Pixmap)(nil)
)

// Pixmap represents a rectangular pixel buffer in row-major, tightly packed
// BGRA byte order (blue, green, red, alpha), matching the layout observable
// on exported PNGs and on buffers returned by GetImageData. This is the
// canonical pixel format of the engine; image.Image/draw.Image conversions
// go through color.NRGBA at the boundary.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // BGRA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions. A non-positive
// width or height is clamped up to 1 rather than rejected, so a caller
// passing an invalid size (e.g. through NewContext) always gets back a
// usable, if degenerate, pixmap instead of a crash.
func NewPixmap(width, height int) *Pixmap {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (BGRA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Copy returns a deep copy of the pixmap.
func (p *Pixmap) Copy() *Pixmap {
	out := &Pixmap{width: p.width, height: p.height, data: make([]uint8, len(p.data))}
	copy(out.data, p.data)
	return out
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are a no-op.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.B * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.R * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel. Out-of-bounds reads return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		B: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		R: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// GetPixel32 returns the pixel packed as (A<<24)|(R<<16)|(G<<8)|B, the wire
// representation used by end-to-end scenario assertions in the spec.
func (p *Pixmap) GetPixel32(x, y int) uint32 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	i := (y*p.width + x) * 4
	b, g, r, a := p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3]
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// SetPixel32 writes a packed (A<<24)|(R<<16)|(G<<8)|B pixel.
func (p *Pixmap) SetPixel32(x, y int, argb uint32) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(argb)
	p.data[i+1] = uint8(argb >> 8)
	p.data[i+2] = uint8(argb >> 16)
	p.data[i+3] = uint8(argb >> 24)
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	b := uint8(clamp255(c.B * 255))
	g := uint8(clamp255(c.G * 255))
	r := uint8(clamp255(c.R * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = b
		p.data[i+1] = g
		p.data[i+2] = r
		p.data[i+3] = a
	}
}

// Blit copies a w×h rectangle from src at (sx,sy) to this pixmap at (dx,dy).
// Both the source and destination rectangles are clipped against their
// respective pixmap bounds before copying; a negative dx/dy shifts the
// effective source origin accordingly so partially off-screen blits still
// copy the overlapping region.
func (p *Pixmap) Blit(dx, dy int, src *Pixmap, sx, sy, w, h int) {
	if src == nil || w <= 0 || h <= 0 {
		return
	}
	if dx < 0 {
		sx -= dx
		w += dx
		dx = 0
	}
	if dy < 0 {
		sy -= dy
		h += dy
		dy = 0
	}
	if sx < 0 {
		dx -= sx
		w += sx
		sx = 0
	}
	if sy < 0 {
		dy -= sy
		h += sy
		sy = 0
	}
	if w > p.width-dx {
		w = p.width - dx
	}
	if h > p.height-dy {
		h = p.height - dy
	}
	if w > src.width-sx {
		w = src.width - sx
	}
	if h > src.height-sy {
		h = src.height - sy
	}
	if w <= 0 || h <= 0 {
		return
	}
	for row := 0; row < h; row++ {
		srcOff := ((sy+row)*src.width + sx) * 4
		dstOff := ((dy+row)*p.width + dx) * 4
		copy(p.data[dstOff:dstOff+w*4], src.data[srcOff:srcOff+w*4])
	}
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for i := 0; i < p.width*p.height; i++ {
		b, g, r, a := p.data[i*4+0], p.data[i*4+1], p.data[i*4+2], p.data[i*4+3]
		img.Pix[i*4+0] = r
		img.Pix[i*4+1] = g
		img.Pix[i*4+2] = b
		img.Pix[i*4+3] = a
	}
	return img
}

// FromImage creates a pixmap from an image, reordering channels to BGRA.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}

	return pm
}

// SavePNG saves the pixmap to a PNG file, reordering BGRA to the RGBA order PNG expects.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	img := p.ToImage()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	Logger().Debug("wrote png", "path", path, "width", p.width, "height", p.height)
	return nil
}

// DecodePNG decodes PNG bytes from r-like source into a new BGRA pixmap.
func DecodePNG(path string) (*Pixmap, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// AlphaBlend returns ((255-a)*c1 + a*c2)/255 componentwise, the canonical
// rounding convention used throughout the rasterizer and gradient evaluator.
// a, c1, c2 are all in [0,255].
func AlphaBlend(a, c1, c2 uint8) uint8 {
	return uint8((uint32(255-a)*uint32(c1) + uint32(a)*uint32(c2) + 127) / 255)
}

// FillSpan fills a horizontal span of pixels with a solid color (no blending).
// The span is from x1 (inclusive) to x2 (exclusive) on row y.
func (p *Pixmap) FillSpan(x1, x2, y int, c RGBA) {
	if y < 0 || y >= p.height || x1 >= x2 {
		return
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > p.width {
		x2 = p.width
	}
	if x1 >= x2 {
		return
	}

	b := uint8(clamp255(c.B * 255))
	g := uint8(clamp255(c.G * 255))
	r := uint8(clamp255(c.R * 255))
	a := uint8(clamp255(c.A * 255))

	startIdx := (y*p.width + x1) * 4
	length := x2 - x1

	if length < 16 {
		for i := 0; i < length; i++ {
			idx := startIdx + i*4
			p.data[idx+0] = b
			p.data[idx+1] = g
			p.data[idx+2] = r
			p.data[idx+3] = a
		}
		return
	}

	p.data[startIdx+0] = b
	p.data[startIdx+1] = g
	p.data[startIdx+2] = r
	p.data[startIdx+3] = a

	filled := 1
	for filled < 16 && filled < length {
		copyLen := filled
		if filled+copyLen > length {
			copyLen = length - filled
		}
		copy(p.data[startIdx+filled*4:], p.data[startIdx:startIdx+copyLen*4])
		filled += copyLen
	}

	if filled < length {
		patternSize := filled * 4
		for offset := filled * 4; offset < length*4; {
			copyLen := patternSize
			if offset+copyLen > length*4 {
				copyLen = length*4 - offset
			}
			copy(p.data[startIdx+offset:], p.data[startIdx:startIdx+copyLen])
			offset += copyLen
		}
	}
}

// FillSpanBlend fills a horizontal span with `AlphaBlend` compositing against
// the existing destination pixels.
func (p *Pixmap) FillSpanBlend(x1, x2, y int, c RGBA) {
	if y < 0 || y >= p.height || x1 >= x2 {
		return
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > p.width {
		x2 = p.width
	}
	if x1 >= x2 {
		return
	}

	if c.A >= 0.9999 {
		p.FillSpan(x1, x2, y, c)
		return
	}

	b := uint8(clamp255(c.B * 255))
	g := uint8(clamp255(c.G * 255))
	r := uint8(clamp255(c.R * 255))
	a := uint8(clamp255(c.A * 255))

	length := x2 - x1
	startIdx := (y*p.width + x1) * 4
	for i := 0; i < length; i++ {
		idx := startIdx + i*4
		p.data[idx+0] = AlphaBlend(a, p.data[idx+0], b)
		p.data[idx+1] = AlphaBlend(a, p.data[idx+1], g)
		p.data[idx+2] = AlphaBlend(a, p.data[idx+2], r)
		p.data[idx+3] = AlphaBlend(a, p.data[idx+3], a)
	}
}
