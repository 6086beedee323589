// Package testutil provides deterministic stand-ins for the analyzer and renderers.
package testutil

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/baditaflorin/go_speech_wordcloud/internal/core/domain"
)

// LexiconTokenizer segments text by greedy longest match against a fixed lexicon.
// Runes not covered by any entry become single-rune symbols.
type LexiconTokenizer struct {
	entries map[string][]string
	longest int
	// Fail makes Tokenize return an error for text containing this substring.
	Fail string
}

// NewLexiconTokenizer creates a tokenizer from surface → comma-joined POS entries.
func NewLexiconTokenizer(lexicon map[string]string) *LexiconTokenizer {
	t := &LexiconTokenizer{entries: make(map[string][]string, len(lexicon))}
	for surface, pos := range lexicon {
		t.entries[surface] = strings.Split(pos, ",")
		if n := utf8.RuneCountInString(surface); n > t.longest {
			t.longest = n
		}
	}
	return t
}

// SpeechLexicon covers the sample sentences used across the tests.
func SpeechLexicon() *LexiconTokenizer {
	return NewLexiconTokenizer(map[string]string{
		"私":    "名詞,代名詞,一般",
		"は":    "助詞,係助詞",
		"が":    "助詞,格助詞,一般",
		"を":    "助詞,格助詞,一般",
		"日本":   "名詞,固有名詞,地域,国",
		"の":    "助詞,連体化",
		"未来":   "名詞,一般",
		"経済":   "名詞,一般",
		"社会":   "名詞,一般",
		"我が国":  "名詞,一般",
		"について": "助詞,格助詞,連語",
		"述べ":   "動詞,自立",
		"ます":   "助動詞",
		"明るい":  "形容詞,自立",
		"です":   "助動詞",
		"走る":   "動詞,自立",
		"食べる":  "動詞,自立",
		"。":    "記号,句点",
	})
}

// Tokenize implements ports.Tokenizer.
func (t *LexiconTokenizer) Tokenize(text string) ([]domain.Morpheme, error) {
	if t.Fail != "" && strings.Contains(text, t.Fail) {
		return nil, errors.New("lexicon tokenizer: forced failure")
	}
	runes := []rune(text)
	var out []domain.Morpheme
	for i := 0; i < len(runes); {
		matched := false
		for n := min(t.longest, len(runes)-i); n > 0; n-- {
			surface := string(runes[i : i+n])
			if pos, ok := t.entries[surface]; ok {
				out = append(out, domain.Morpheme{Surface: surface, POS: pos})
				i += n
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, domain.Morpheme{Surface: string(runes[i]), POS: []string{"記号", "一般"}})
			i++
		}
	}
	return out, nil
}

// Renderer records calls and returns small solid images.
type Renderer struct {
	mu          sync.Mutex
	CloudCalls  [][]string
	ChartCalls  [][]domain.WordCount
	CloudErr    error
	ChartErr    error
	PanicOnDraw bool
}

// RenderWordCloud implements ports.WordCloudRenderer.
func (r *Renderer) RenderWordCloud(tokens []string) (image.Image, error) {
	r.mu.Lock()
	r.CloudCalls = append(r.CloudCalls, append([]string(nil), tokens...))
	r.mu.Unlock()
	if r.PanicOnDraw {
		panic("renderer exploded")
	}
	if r.CloudErr != nil {
		return nil, r.CloudErr
	}
	return solid(80, 40), nil
}

// RenderChart implements ports.ChartRenderer.
func (r *Renderer) RenderChart(entries []domain.WordCount) (image.Image, error) {
	r.mu.Lock()
	r.ChartCalls = append(r.ChartCalls, append([]domain.WordCount(nil), entries...))
	r.mu.Unlock()
	if r.ChartErr != nil {
		return nil, r.ChartErr
	}
	return solid(96, 48), nil
}

func solid(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}
