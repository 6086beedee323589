package tokenizer

import (
	"fmt"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/baditaflorin/go_speech_wordcloud/internal/core/domain"
	"github.com/baditaflorin/go_speech_wordcloud/internal/ports"
)

// KagomeTokenizer runs kagome with the IPA dictionary, whose POS hierarchy matches
// the 名詞,一般 tagging used by the extractor.
type KagomeTokenizer struct {
	t *tokenizer.Tokenizer
}

// NewKagomeTokenizer loads the IPA dictionary and builds a tokenizer.
// Loading the dictionary is the expensive part; build once per process.
func NewKagomeTokenizer() (ports.Tokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to create kagome tokenizer: %w", err)
	}
	return &KagomeTokenizer{t: t}, nil
}

// Tokenize implements ports.Tokenizer.
func (k *KagomeTokenizer) Tokenize(text string) ([]domain.Morpheme, error) {
	tokens := k.t.Tokenize(text)
	out := make([]domain.Morpheme, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, domain.Morpheme{
			Surface: tok.Surface,
			POS:     tok.POS(),
		})
	}
	return out, nil
}
