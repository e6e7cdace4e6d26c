package gg

import "math"

// boxSizesForGauss computes the three box-blur widths that approximate a
// Gaussian of standard deviation sigma, following the standard "three
// passes of a box blur" construction: an ideal width is computed, rounded
// down to the nearest odd integer, and a threshold decides how many of the
// three boxes use the narrower width versus the next odd width up.
func boxSizesForGauss(sigma float64) [3]int {
	wIdeal := math.Sqrt(12*sigma*sigma/3 + 1)
	wl := int(math.Floor(wIdeal))
	if wl%2 == 0 {
		wl--
	}
	if wl < 1 {
		wl = 1
	}
	wu := wl + 2

	wlF := float64(wl)
	mIdeal := (12*sigma*sigma - 3*wlF*wlF - 12*wlF - 9) / (-4*wlF - 4)
	m := int(math.Floor(mIdeal))

	var sizes [3]int
	for i := range sizes {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
	}
	return sizes
}

// clampIndex reflects an out-of-range index to the nearest edge sample,
// the "extend" boundary condition a box blur needs at buffer edges.
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// boxBlurRow runs one horizontal box-blur pass of radius r over an
// w x h buffer, edge-extended, writing into dst.
func boxBlurRow(src, dst []float64, w, h, r int) {
	if r <= 0 {
		copy(dst, src)
		return
	}
	iarr := 1.0 / float64(2*r+1)
	for y := 0; y < h; y++ {
		row := y * w
		var sum float64
		for k := -r; k <= r; k++ {
			sum += src[row+clampIndex(k, w)]
		}
		dst[row] = sum * iarr
		for x := 1; x < w; x++ {
			sum -= src[row+clampIndex(x-r-1, w)]
			sum += src[row+clampIndex(x+r, w)]
			dst[row+x] = sum * iarr
		}
	}
}

// boxBlurColumn runs one vertical box-blur pass of radius r, the
// counterpart of boxBlurRow.
func boxBlurColumn(src, dst []float64, w, h, r int) {
	if r <= 0 {
		copy(dst, src)
		return
	}
	iarr := 1.0 / float64(2*r+1)
	for x := 0; x < w; x++ {
		var sum float64
		for k := -r; k <= r; k++ {
			sum += src[clampIndex(k, h)*w+x]
		}
		dst[x] = sum * iarr
		for y := 1; y < h; y++ {
			sum -= src[clampIndex(y-r-1, h)*w+x]
			sum += src[clampIndex(y+r, h)*w+x]
			dst[y*w+x] = sum * iarr
		}
	}
}

// boxBlurAlpha approximates a Gaussian blur of standard deviation sigma on
// a w x h alpha buffer with three successive box-blur passes, each a
// horizontal running-sum pass followed by a vertical one. Used only to
// produce shadow mattes.
func boxBlurAlpha(buf []float64, w, h int, sigma float64) {
	if sigma <= 0 || w <= 0 || h <= 0 {
		return
	}
	tmp := make([]float64, w*h)
	for _, size := range boxSizesForGauss(sigma) {
		r := (size - 1) / 2
		boxBlurRow(buf, tmp, w, h, r)
		boxBlurColumn(tmp, buf, w, h, r)
	}
}

// shadowVisible reports whether paint's shadow has any visible effect:
// a non-transparent color and a non-zero offset or blur. A shadow that
// matches the source shape exactly (no offset, no blur) is invisible
// behind its own source draw and is skipped.
func shadowVisible(p *Paint) bool {
	s := p.Shadow
	if s.Color.A <= 0 {
		return false
	}
	return s.Blur != 0 || s.OffsetX != 0 || s.OffsetY != 0
}

// blitComposite composites src onto dst at offset (ox, oy), scaling src's
// alpha by alphaMul, using mode. Pixels landing outside dst are dropped.
func blitComposite(dst, src *Pixmap, ox, oy int, mode CompositeOperation, alphaMul float64) {
	w, h := src.Width(), src.Height()
	for y := 0; y < h; y++ {
		dy := oy + y
		if dy < 0 || dy >= dst.Height() {
			continue
		}
		for x := 0; x < w; x++ {
			dx := ox + x
			if dx < 0 || dx >= dst.Width() {
				continue
			}
			s := src.GetPixel(x, y)
			if s.A <= 0 {
				continue
			}
			if alphaMul != 1.0 {
				s.A *= alphaMul
			}
			d := dst.GetPixel(dx, dy)
			dst.SetPixel(dx, dy, compositePixel(s, d, mode))
		}
	}
}

// renderShadowed draws the current path via draw, inserting the drop-shadow
// pass described by the graphics state's shadow when it is visible and the
// composite operation is not CompositeSource (a shadow behind a draw that
// unconditionally overwrites the destination would never be seen).
// margin widens the shape's bounding box before rendering, used by doStroke
// to account for stroke width extending past the bare path's bounds.
func (c *Context) renderShadowed(margin float64, draw func(pixmap *Pixmap, path *Path) error) error {
	if !shadowVisible(c.paint) || c.paint.CompositeOp == CompositeSource {
		return draw(c.pixmap, c.path)
	}

	bounds, ok := c.path.Bounds()
	if !ok {
		return draw(c.pixmap, c.path)
	}

	minX := int(math.Floor(bounds.Min.X - margin))
	minY := int(math.Floor(bounds.Min.Y - margin))
	maxX := int(math.Ceil(bounds.Max.X + margin))
	maxY := int(math.Ceil(bounds.Max.Y + margin))
	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 {
		return draw(c.pixmap, c.path)
	}

	scratch := NewPixmap(w, h)
	shifted := c.path.Transform(Translate(float64(-minX), float64(-minY)))
	if err := draw(scratch, shifted); err != nil {
		return err
	}

	shadow := c.paint.Shadow
	blurMargin := int(math.Ceil(math.Sqrt(3 * shadow.Blur * shadow.Blur)))
	bw, bh := w+2*blurMargin, h+2*blurMargin

	alpha := make([]float64, bw*bh)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			alpha[(y+blurMargin)*bw+(x+blurMargin)] = scratch.GetPixel(x, y).A
		}
	}
	boxBlurAlpha(alpha, bw, bh, shadow.Blur)

	shadowPix := NewPixmap(bw, bh)
	for y := 0; y < bh; y++ {
		for x := 0; x < bw; x++ {
			a := alpha[y*bw+x]
			if a <= 0 {
				continue
			}
			shadowPix.SetPixel(x, y, RGBA{
				R: shadow.Color.R,
				G: shadow.Color.G,
				B: shadow.Color.B,
				A: shadow.Color.A * a,
			})
		}
	}

	destX := minX + int(math.Round(shadow.OffsetX)) - blurMargin
	destY := minY + int(math.Round(shadow.OffsetY)) - blurMargin
	blitComposite(c.pixmap, shadowPix, destX, destY, CompositeSourceOver, 1.0)
	blitComposite(c.pixmap, scratch, minX, minY, c.paint.CompositeOp, 1.0)
	return nil
}
