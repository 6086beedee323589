package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscriptNormalizer_Normalize(t *testing.T) {
	n := NewDefaultNormalizer()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Removes newlines and spaces by concatenation",
			input:    "未来 は\n明るい\r\nです",
			expected: "未来は明るいです",
		},
		{
			name:     "Removes ideographic space, middle dot and brackets",
			input:    "「日本」　（経済）・社会",
			expected: "日本経済社会",
		},
		{
			name:     "Folds full-width alphanumerics",
			input:    "ＡＢＣ１２３",
			expected: "ABC123",
		},
		{
			name:     "Folds half-width katakana",
			input:    "ｶﾀｶﾅ",
			expected: "カタカナ",
		},
		{
			name:     "Drops spaces surfaced by NFKC",
			input:    "日本\u00a0経済",
			expected: "日本経済",
		},
		{
			name:     "Drops middle dot surfaced from half-width form",
			input:    "日本\uff65経済",
			expected: "日本経済",
		},
		{
			name:     "Keeps punctuation outside the dropped set",
			input:    "未来。",
			expected: "未来。",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, n.Normalize(tc.input))
		})
	}
}

func TestTranscriptNormalizer_Idempotent(t *testing.T) {
	n := NewDefaultNormalizer()
	inputs := []string{
		"私は日本の未来について述べます。未来は明るいです。",
		"「　ｶﾞｷﾞ　」・（１）\n ･",
		"⑴ ㈱ ﾊﾟﾝ ＝ 〜",
		"",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		assert.Equal(t, once, n.Normalize(once), "input %q", in)
	}
}

func TestNewTranscriptNormalizer_CustomSet(t *testing.T) {
	n := NewTranscriptNormalizer('x')
	assert.Equal(t, "a b", n.Normalize("axx bx"))
}
