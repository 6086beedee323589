package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_speech_wordcloud/internal/core/extract"
)

func TestKagomeTokenizer_Tokenize(t *testing.T) {
	tok, err := NewKagomeTokenizer()
	require.NoError(t, err)

	text := "私は猫と犬が好きです。"
	morphemes, err := tok.Tokenize(text)
	require.NoError(t, err)
	require.NotEmpty(t, morphemes)

	var surfaces, nouns []string
	for _, m := range morphemes {
		surfaces = append(surfaces, m.Surface)
		require.NotEmpty(t, m.POS, m.Surface)
		if extract.IsCommonNoun(m.POS) {
			nouns = append(nouns, m.Surface)
		}
	}

	// Surfaces tile the input without BOS/EOS markers.
	assert.Equal(t, text, strings.Join(surfaces, ""))
	assert.Equal(t, []string{"猫", "犬"}, nouns)
}

func TestKagomeTokenizer_Empty(t *testing.T) {
	tok, err := NewKagomeTokenizer()
	require.NoError(t, err)

	morphemes, err := tok.Tokenize("")
	require.NoError(t, err)
	assert.Empty(t, morphemes)
}
