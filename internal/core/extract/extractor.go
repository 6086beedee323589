// Package extract turns a raw transcript into the ordered list of common-noun tokens.
package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/baditaflorin/go_speech_wordcloud/internal/core/stopwords"
	"github.com/baditaflorin/go_speech_wordcloud/internal/ports"
)

// Part-of-speech features identifying a common, general noun.
const (
	PosNoun    = "名詞"
	PosGeneral = "一般"
)

// IsCommonNoun reports whether the POS features denote a common noun of the general
// sub-category. Proper nouns, pronouns, suffixes and adverbial nouns are rejected.
func IsCommonNoun(pos []string) bool {
	return len(pos) >= 2 && pos[0] == PosNoun && pos[1] == PosGeneral
}

// Extractor normalizes text, runs morphological analysis and keeps common nouns
// that are not stopwords.
type Extractor struct {
	stopwords  stopwords.Set
	logger     ports.Logger
	normalizer ports.Normalizer
	tokenizer  ports.Tokenizer
}

// NewExtractor creates a new extractor.
func NewExtractor(stop stopwords.Set, logger ports.Logger, normalizer ports.Normalizer, tokenizer ports.Tokenizer) (*Extractor, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if normalizer == nil {
		return nil, errors.New("normalizer is required")
	}
	if tokenizer == nil {
		return nil, errors.New("tokenizer is required")
	}
	return &Extractor{
		stopwords:  stop,
		logger:     logger,
		normalizer: normalizer,
		tokenizer:  tokenizer,
	}, nil
}

// Normalize applies the configured normalizer.
func (e *Extractor) Normalize(text string) string {
	return e.normalizer.Normalize(text)
}

// Extract returns the common-noun surfaces of text in order of occurrence.
// Duplicates are kept.
func (e *Extractor) Extract(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalized := e.normalizer.Normalize(text)
	e.logger.Debug("Normalized transcript",
		"raw_bytes", len(text),
		"normalized_bytes", len(normalized),
	)

	return e.Filter(normalized)
}

// Filter tokenizes already-normalized text and applies the noun and stopword predicate.
func (e *Extractor) Filter(normalized string) ([]string, error) {
	morphemes, err := e.tokenizer.Tokenize(normalized)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	tokens := make([]string, 0, len(morphemes)/4)
	for _, m := range morphemes {
		if m.Surface == "" || !IsCommonNoun(m.POS) || e.stopwords.Contains(m.Surface) {
			continue
		}
		tokens = append(tokens, m.Surface)
	}

	e.logger.Debug("Extracted common nouns",
		"morphemes", len(morphemes),
		"tokens", len(tokens),
	)
	return tokens, nil
}
