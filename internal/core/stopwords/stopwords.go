// Package stopwords holds the process-wide set of tokens excluded from analysis.
package stopwords

import "sort"

// Defaults is the stopword list applied to speech transcripts: particles, auxiliary
// fragments and filler nouns that dominate political speeches without carrying topic.
var Defaults = []string{
	"下", "方々", "具体", "皆さん", "我が国",
	"の", "に", "は", "を", "た", "が", "で", "て", "と", "し", "れ", "さ",
	"ある", "いる", "も", "する", "から", "な", "こと", "として", "い", "や",
	"ない", "など", "なる", "へ", "か", "だ", "この", "によって", "により",
	"おり", "より", "による", "ため", "その", "あっ", "よう", "また", "もの",
	"という", "あり", "まで", "られ", "なっ", "せ", "させ", "して",
}

// Set is an immutable set of stopwords.
type Set struct {
	words map[string]struct{}
}

// New builds a set from the given words. Empty strings are ignored.
func New(words ...string) Set {
	s := Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w == "" {
			continue
		}
		s.words[w] = struct{}{}
	}
	return s
}

// Default returns a set built from Defaults.
func Default() Set {
	return New(Defaults...)
}

// Contains reports whether word is a stopword.
func (s Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of stopwords.
func (s Set) Len() int {
	return len(s.words)
}

// Words returns the stopwords sorted.
func (s Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
