package ports

import "github.com/baditaflorin/go_speech_wordcloud/internal/core/domain"

// Tokenizer defines the interface for morphological analysis.
type Tokenizer interface {
	// Tokenize splits text into morphemes in order of occurrence.
	Tokenize(text string) ([]domain.Morpheme, error)
}
