package text

import "iter"

// MultiFace chains several Faces so a rune missing from the primary face
// falls back to the next one — e.g. a Latin text face backed by an emoji
// or CJK fallback. All faces must share the same Direction.
type MultiFace struct {
	faces []Face
}

// NewMultiFace builds a MultiFace trying faces in order. It returns
// ErrEmptyFaces if faces is empty, or a *DirectionMismatchError if any
// face after the first has a different Direction than the first.
func NewMultiFace(faces ...Face) (*MultiFace, error) {
	if len(faces) == 0 {
		return nil, ErrEmptyFaces
	}
	want := faces[0].Direction()
	for i, f := range faces[1:] {
		if f.Direction() != want {
			return nil, &DirectionMismatchError{Index: i + 1, Got: f.Direction(), Expected: want}
		}
	}
	return &MultiFace{faces: faces}, nil
}

// Direction returns the shared direction of every face in the chain.
func (m *MultiFace) Direction() Direction {
	return m.faces[0].Direction()
}

// faceFor returns the first face in the chain that has a glyph for r,
// falling back to the primary face (index 0) if none do.
func (m *MultiFace) faceFor(r rune) Face {
	for _, f := range m.faces {
		if f.HasGlyph(r) {
			return f
		}
	}
	return m.faces[0]
}

// RuneOutline extracts r's outline from the first face in the chain that
// has a glyph for it.
func (m *MultiFace) RuneOutline(r rune) (Outline, bool) {
	return m.faceFor(r).RuneOutline(r)
}

// Glyphs shapes text, resolving each rune against the first face in the
// chain that carries it.
func (m *MultiFace) Glyphs(text string) iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		var x, y float64
		idx := 0
		vertical := m.Direction().IsVertical()
		for _, r := range text {
			face := m.faceFor(r)
			g, ok := singleGlyph(face, r, idx)
			if !ok {
				continue
			}
			g.X, g.Y, g.OriginX, g.OriginY = x, y, x, y
			if !yield(g) {
				return
			}
			if vertical {
				y += g.Advance
			} else {
				x += g.Advance
			}
			idx++
		}
	}
}

// singleGlyph shapes exactly one rune through a face's own Glyphs iterator.
func singleGlyph(face Face, r rune, idx int) (Glyph, bool) {
	for g := range face.Glyphs(string(r)) {
		g.Index, g.Cluster = idx, idx
		return g, true
	}
	return Glyph{}, false
}
