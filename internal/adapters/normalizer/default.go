package normalizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/baditaflorin/go_speech_wordcloud/internal/ports"
)

// maxPasses bounds the strip/NFKC fixed-point loop. Real input settles after two passes.
const maxPasses = 4

// TranscriptNormalizer prepares Japanese speech transcripts for morphological analysis.
type TranscriptNormalizer struct {
	drop map[rune]struct{}
}

// DefaultDropped lists the runes deleted before NFKC: line breaks, the ASCII space,
// the ideographic space, the middle dot and full-width bracket pairs.
var DefaultDropped = []rune{'\n', '\r', ' ', '　', '・', '「', '」', '（', '）'}

// NewDefaultNormalizer creates a normalizer that drops DefaultDropped.
func NewDefaultNormalizer() ports.Normalizer {
	return NewTranscriptNormalizer(DefaultDropped...)
}

// NewTranscriptNormalizer creates a normalizer that deletes the given runes.
func NewTranscriptNormalizer(dropped ...rune) *TranscriptNormalizer {
	n := &TranscriptNormalizer{drop: make(map[rune]struct{}, len(dropped))}
	for _, r := range dropped {
		n.drop[r] = struct{}{}
	}
	return n
}

// Normalize deletes the dropped runes and applies NFKC.
// NFKC may surface new dropped runes (a no-break space folds to a space), so the pair
// is repeated until the text stops changing, which keeps Normalize idempotent.
func (n *TranscriptNormalizer) Normalize(text string) string {
	out := norm.NFKC.String(n.strip(text))
	for i := 1; i < maxPasses; i++ {
		next := norm.NFKC.String(n.strip(out))
		if next == out {
			break
		}
		out = next
	}
	return out
}

func (n *TranscriptNormalizer) strip(text string) string {
	return strings.Map(func(r rune) rune {
		if _, ok := n.drop[r]; ok {
			return -1
		}
		return r
	}, text)
}
