package domain

import "errors"

var (
	// ErrEmptyTokenSet is returned when a transcript yields no tokens to visualize.
	ErrEmptyTokenSet = errors.New("empty token set")
	// ErrInvalidUTF8 is returned for transcripts that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("transcript is not valid UTF-8")
	// ErrFontUnavailable is returned when the glyph font cannot be read or parsed.
	ErrFontUnavailable = errors.New("font unavailable")
)

// SourceDocument is one transcript as read from disk.
type SourceDocument struct {
	Path string
	Name string
	Stem string
	Text string
}

// Morpheme is a single unit produced by morphological analysis.
type Morpheme struct {
	Surface string
	// POS holds the part-of-speech features, most general first (e.g. 名詞, 一般, *, *).
	POS []string
}

// WordCount pairs a token with its number of occurrences.
type WordCount struct {
	Word  string
	Count int
}

// Artifacts holds the output paths generated for one transcript.
type Artifacts struct {
	WordCloud    string
	AnalyzedText string
	BarGraph     string
}

// Status is the outcome of processing one transcript.
type Status string

const (
	StatusOK     Status = "ok"
	StatusEmpty  Status = "empty"
	StatusFailed Status = "failed"
)

// FileResult holds the outcome of processing one transcript.
type FileResult struct {
	Source    string
	Stem      string
	Tokens    int
	Distinct  int
	Artifacts Artifacts
	Status    Status
	Err       error
}

// Summary holds the outcome of a whole run.
type Summary struct {
	OutputDir string
	Results   []FileResult
}

// Count returns how many results have the given status.
func (s Summary) Count(status Status) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Failed reports whether any transcript failed.
func (s Summary) Failed() bool {
	return s.Count(StatusFailed) > 0
}
