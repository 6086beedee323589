package stopwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, len(Defaults), s.Len())
	for _, w := range []string{"我が国", "皆さん", "の", "して"} {
		assert.True(t, s.Contains(w), w)
	}
	assert.False(t, s.Contains("未来"))
}

func TestNew(t *testing.T) {
	t.Run("Should ignore empty strings and duplicates", func(t *testing.T) {
		s := New("a", "", "b", "a")
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, []string{"a", "b"}, s.Words())
		assert.False(t, s.Contains(""))
	})
	t.Run("Should treat the zero value as empty", func(t *testing.T) {
		var s Set
		assert.False(t, s.Contains("a"))
		assert.Equal(t, 0, s.Len())
	})
}
