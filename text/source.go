package text

import "os"

// FontSource is a heavyweight, shared font resource: it owns the parsed
// font data and is safe to retain for the lifetime of an application,
// deriving many lightweight Faces from it via Face. Multiple Contexts may
// share one FontSource; per §5 the caller must not mutate it concurrently
// with a draw (FontSource itself holds no mutable drawing state, only the
// parsed font, so concurrent reads are safe — see ximageFont for its own
// locking around the non-concurrent-safe sfnt.Buffer).
type FontSource struct {
	parsed ParsedFont
	closed bool
}

// FontSourceOption configures NewFontSource.
type FontSourceOption func(*fontSourceConfig)

type fontSourceConfig struct {
	parser string
}

// WithParser selects a non-default registered FontParser by name (see
// RegisterParser).
func WithParser(name string) FontSourceOption {
	return func(c *fontSourceConfig) { c.parser = name }
}

// NewFontSource parses font data (TTF or OTF) using the configured parser
// (default "ximage", backed by golang.org/x/image/font/opentype).
func NewFontSource(data []byte, opts ...FontSourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	cfg := fontSourceConfig{parser: defaultParserName}
	for _, opt := range opts {
		opt(&cfg)
	}
	parsed, err := getParser(cfg.parser).Parse(data)
	if err != nil {
		return nil, err
	}
	return &FontSource{parsed: parsed}, nil
}

// NewFontSourceFromFile reads a font file from disk and parses it.
func NewFontSourceFromFile(path string, opts ...FontSourceOption) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewFontSource(data, opts...)
}

// Close releases the underlying parsed font. A closed FontSource must not
// be used to derive new Faces; existing Faces become invalid.
func (s *FontSource) Close() error {
	s.closed = true
	s.parsed = nil
	return nil
}

// Face derives a lightweight Face at the given pixel size from this source.
func (s *FontSource) Face(size float64, opts ...FaceOption) Face {
	cfg := faceConfig{direction: DirectionLTR}
	for _, opt := range opts {
		opt(&cfg)
	}
	return Face{source: s, size: size, direction: cfg.direction}
}
