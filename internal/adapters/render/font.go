// Package render draws word clouds and frequency charts as raster images.
package render

import (
	"fmt"

	"github.com/spf13/afero"
	"golang.org/x/image/font/opentype"

	"github.com/baditaflorin/go_speech_wordcloud/internal/core/domain"
)

// Font is a parsed glyph font together with its on-disk location.
type Font struct {
	Path string
	Data []byte
	Face *opentype.Font
}

// LoadFont reads and parses a TrueType/OpenType font. Any failure wraps
// domain.ErrFontUnavailable.
func LoadFont(fs afero.Fs, path string) (*Font, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no font path configured", domain.ErrFontUnavailable)
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFontUnavailable, err)
	}
	return ParseFont(path, data)
}

// ParseFont parses font bytes. path is informational.
func ParseFont(path string, data []byte) (*Font, error) {
	face, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrFontUnavailable, path, err)
	}
	return &Font{Path: path, Data: data, Face: face}, nil
}
