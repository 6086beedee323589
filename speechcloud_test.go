// speechcloud_test.go
package speechcloud

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/baditaflorin/l"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_speech_wordcloud/internal/testutil"
)

func discardLogger(t *testing.T) l.Logger {
	t.Helper()
	lg, err := l.NewStandardFactory().CreateLogger(l.Config{Output: io.Discard})
	require.NoError(t, err)
	t.Cleanup(func() { lg.Close() })
	return lg
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.InputDir = "/speeches"
	cfg.OutputParent = "/work"
	cfg.FontPath = "/fonts/missing.ttf"
	return cfg
}

func fixedClock() time.Time {
	return time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)
}

func TestAnalyzer_Run(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/speeches", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/speeches/speech1.txt",
		[]byte("私は日本の未来について述べます。\n未来は明るいです。"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/speeches/speech2.txt", []byte("走る。食べる。"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/speeches/notes.md", []byte("未来"), 0o644))

	renderer := &testutil.Renderer{}
	a, err := New(
		WithConfig(testConfig()),
		WithLogger(discardLogger(t)),
		WithFs(fs),
		WithTokenizer(testutil.SpeechLexicon()),
		WithWordCloudRenderer(renderer),
		WithChartRenderer(renderer),
		WithClock(fixedClock),
	)
	require.NoError(t, err)
	defer a.Close()

	summary, err := a.Run(context.Background())
	require.NoError(t, err)

	outDir := filepath.Join("/work", "2024-05-01-09-30-result")
	assert.Equal(t, outDir, summary.OutputDir)
	require.Len(t, summary.Results, 2)
	assert.Equal(t, StatusOK, summary.Results[0].Status)
	assert.Equal(t, StatusEmpty, summary.Results[1].Status)
	assert.ErrorIs(t, summary.Results[1].Err, ErrEmptyTokenSet)
	assert.False(t, summary.Failed())

	text, err := afero.ReadFile(fs, filepath.Join(outDir, "Analyzed_Text_speech1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "未来 未来", string(text))

	for _, name := range []string{"Word_Cloud_speech1.png", "Bar_Graph_speech1.png", "Analyzed_Text_speech2.txt"} {
		exists, err := afero.Exists(fs, filepath.Join(outDir, name))
		require.NoError(t, err)
		assert.True(t, exists, name)
	}
	for _, name := range []string{"Word_Cloud_speech2.png", "Bar_Graph_speech2.png", "Analyzed_Text_notes.txt"} {
		exists, err := afero.Exists(fs, filepath.Join(outDir, name))
		require.NoError(t, err)
		assert.False(t, exists, name)
	}

	require.Len(t, renderer.ChartCalls, 1)
	assert.Equal(t, []WordCount{{Word: "未来", Count: 2}}, renderer.ChartCalls[0])
}

func TestNew(t *testing.T) {
	t.Run("Should reject invalid configuration", func(t *testing.T) {
		cfg := testConfig()
		cfg.TopN = 0
		_, err := New(WithConfig(cfg), WithLogger(discardLogger(t)))
		assert.Error(t, err)
	})

	t.Run("Should fail fast on a missing font", func(t *testing.T) {
		_, err := New(
			WithConfig(testConfig()),
			WithLogger(discardLogger(t)),
			WithFs(afero.NewMemMapFs()),
			WithTokenizer(testutil.SpeechLexicon()),
		)
		assert.ErrorIs(t, err, ErrFontUnavailable)
	})

	t.Run("Should report a missing input directory from Run", func(t *testing.T) {
		renderer := &testutil.Renderer{}
		_, err := Run(context.Background(),
			WithConfig(testConfig()),
			WithLogger(discardLogger(t)),
			WithFs(afero.NewMemMapFs()),
			WithTokenizer(testutil.SpeechLexicon()),
			WithWordCloudRenderer(renderer),
			WithChartRenderer(renderer),
		)
		assert.Error(t, err)
	})
}

func TestAnalyzer_Extract(t *testing.T) {
	renderer := &testutil.Renderer{}
	a, err := New(
		WithConfig(testConfig()),
		WithLogger(discardLogger(t)),
		WithFs(afero.NewMemMapFs()),
		WithTokenizer(testutil.SpeechLexicon()),
		WithWordCloudRenderer(renderer),
		WithChartRenderer(renderer),
	)
	require.NoError(t, err)

	assert.Equal(t, "未来は明るいです", a.Normalize("「未来」は　明るい です"))

	tokens, err := a.Extract(context.Background(), "経済と社会。未来の経済。我が国の経済。")
	require.NoError(t, err)
	// 我が国 is a stopword.
	assert.Equal(t, []string{"経済", "社会", "未来", "経済", "経済"}, tokens)

	assert.Equal(t, []WordCount{{Word: "経済", Count: 3}, {Word: "社会", Count: 1}}, a.TopWords(tokens, 2))
}

func TestAnalyzer_WarmUp(t *testing.T) {
	renderer := &testutil.Renderer{}
	cfg := testConfig()
	a, err := New(
		WithConfig(cfg),
		WithLogger(discardLogger(t)),
		WithFs(afero.NewMemMapFs()),
		WithTokenizer(testutil.SpeechLexicon()),
		WithWordCloudRenderer(renderer),
		WithChartRenderer(renderer),
	)
	require.NoError(t, err)
	assert.Positive(t, a.WarmUp(context.Background()))
}
