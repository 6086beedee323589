// Package frequency counts token occurrences and ranks them.
package frequency

import (
	"sort"

	"github.com/baditaflorin/go_speech_wordcloud/internal/core/domain"
)

// DefaultTopN is the number of entries shown on the bar chart.
const DefaultTopN = 20

// Table maps tokens to occurrence counts and remembers first-occurrence order.
type Table struct {
	counts map[string]int
	order  []string
	total  int
}

// Count builds a table from a token list.
func Count(tokens []string) *Table {
	t := &Table{counts: make(map[string]int)}
	for _, tok := range tokens {
		t.Add(tok)
	}
	return t
}

// Add records one occurrence of token.
func (t *Table) Add(token string) {
	if _, seen := t.counts[token]; !seen {
		t.order = append(t.order, token)
	}
	t.counts[token]++
	t.total++
}

// Get returns the count for token.
func (t *Table) Get(token string) int {
	return t.counts[token]
}

// Total returns the number of recorded occurrences.
func (t *Table) Total() int {
	return t.total
}

// Distinct returns the number of distinct tokens.
func (t *Table) Distinct() int {
	return len(t.order)
}

// Map returns a copy of the counts.
func (t *Table) Map() map[string]int {
	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}

// TopN returns at most n entries ordered by descending count. Equal counts keep
// first-occurrence order. n <= 0 returns every entry.
func (t *Table) TopN(n int) []domain.WordCount {
	entries := make([]domain.WordCount, len(t.order))
	for i, w := range t.order {
		entries[i] = domain.WordCount{Word: w, Count: t.counts[w]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
