package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/psykhi/wordclouds"

	"github.com/baditaflorin/go_speech_wordcloud/internal/core/domain"
	"github.com/baditaflorin/go_speech_wordcloud/internal/core/frequency"
	"github.com/baditaflorin/go_speech_wordcloud/internal/core/stopwords"
)

// WordCloudConfig configures the word cloud layout.
type WordCloudConfig struct {
	// FontPath must point at a font on the OS filesystem; the layout engine opens it itself.
	FontPath    string
	Width       int
	Height      int
	MaxFontSize int
	MinFontSize int
	// MaxWords caps how many of the most frequent words are placed.
	MaxWords   int
	Background color.Color
	Colors     []color.Color
	Stopwords  stopwords.Set
}

// DefaultPalette samples the viridis colormap.
var DefaultPalette = []color.Color{
	color.RGBA{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
	color.RGBA{R: 0x3b, G: 0x52, B: 0x8b, A: 0xff},
	color.RGBA{R: 0x21, G: 0x90, B: 0x8d, A: 0xff},
	color.RGBA{R: 0x5d, G: 0xc8, B: 0x63, A: 0xff},
	color.RGBA{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff},
}

// DefaultWordCloudConfig returns an 800x400 white canvas with a max font size of 100.
func DefaultWordCloudConfig(fontPath string) WordCloudConfig {
	return WordCloudConfig{
		FontPath:    fontPath,
		Width:       800,
		Height:      400,
		MaxFontSize: 100,
		MinFontSize: 4,
		MaxWords:    200,
		Background:  color.White,
		Colors:      DefaultPalette,
		Stopwords:   stopwords.Default(),
	}
}

// Validate checks the layout parameters.
func (c WordCloudConfig) Validate() error {
	if c.FontPath == "" {
		return fmt.Errorf("%w: word cloud font path is empty", domain.ErrFontUnavailable)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.New("word cloud canvas must have positive dimensions")
	}
	if c.MaxFontSize <= 0 || c.MinFontSize <= 0 || c.MinFontSize > c.MaxFontSize {
		return errors.New("word cloud font sizes must satisfy 0 < min <= max")
	}
	if len(c.Colors) == 0 {
		return errors.New("word cloud palette is empty")
	}
	return nil
}

// WordCloudRenderer lays out tokens with psykhi/wordclouds.
type WordCloudRenderer struct {
	config WordCloudConfig
}

// NewWordCloudRenderer creates a renderer.
func NewWordCloudRenderer(config WordCloudConfig) (*WordCloudRenderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Background == nil {
		config.Background = color.White
	}
	return &WordCloudRenderer{config: config}, nil
}

// Counts joins tokens with single spaces, splits them back into words, drops stopwords
// and keeps the MaxWords most frequent entries.
func (r *WordCloudRenderer) Counts(tokens []string) map[string]int {
	table := frequency.Count(nil)
	for _, w := range strings.Fields(strings.Join(tokens, " ")) {
		if r.config.Stopwords.Contains(w) {
			continue
		}
		table.Add(w)
	}
	counts := make(map[string]int, table.Distinct())
	for _, e := range table.TopN(r.config.MaxWords) {
		counts[e.Word] = e.Count
	}
	return counts
}

// RenderWordCloud implements ports.WordCloudRenderer.
func (r *WordCloudRenderer) RenderWordCloud(tokens []string) (img image.Image, err error) {
	counts := r.Counts(tokens)
	if len(counts) == 0 {
		return nil, domain.ErrEmptyTokenSet
	}

	// The layout engine panics on unreadable fonts.
	defer func() {
		if p := recover(); p != nil {
			img, err = nil, fmt.Errorf("word cloud layout: %v", p)
		}
	}()

	wc := wordclouds.NewWordcloud(counts,
		wordclouds.FontFile(r.config.FontPath),
		wordclouds.FontMaxSize(r.config.MaxFontSize),
		wordclouds.FontMinSize(r.config.MinFontSize),
		wordclouds.Width(r.config.Width),
		wordclouds.Height(r.config.Height),
		wordclouds.BackgroundColor(r.config.Background),
		wordclouds.Colors(r.config.Colors),
	)
	return wc.Draw(), nil
}
