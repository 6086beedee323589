package storage

import (
	"bytes"
	"image"
	"image/png"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_speech_wordcloud/internal/core/domain"
)

func TestStore_ListTranscripts(t *testing.T) {
	t.Run("Should list only .txt regular files", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/in", 0o755))
		for _, name := range []string{"b.txt", "a.txt", "a.md", "speech.TXT", "notes.txt.bak"} {
			require.NoError(t, afero.WriteFile(fs, filepath.Join("/in", name), []byte("x"), 0o644))
		}
		require.NoError(t, fs.MkdirAll("/in/dir.txt", 0o755))

		paths, err := New(fs).ListTranscripts("/in")
		require.NoError(t, err)
		assert.Equal(t, []string{"/in/a.txt", "/in/b.txt"}, paths)
	})

	t.Run("Should not match a same-stem file with another extension", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/in", 0o755))
		require.NoError(t, afero.WriteFile(fs, "/in/speech1.txt", []byte("x"), 0o644))
		require.NoError(t, afero.WriteFile(fs, "/in/speech1.csv", []byte("x"), 0o644))

		paths, err := New(fs).ListTranscripts("/in")
		require.NoError(t, err)
		assert.Equal(t, []string{"/in/speech1.txt"}, paths)
	})

	t.Run("Should fail for a missing directory", func(t *testing.T) {
		_, err := New(afero.NewMemMapFs()).ListTranscripts("/missing")
		assert.Error(t, err)
	})

	t.Run("Should return nothing for an empty directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/in", 0o755))
		paths, err := New(fs).ListTranscripts("/in")
		require.NoError(t, err)
		assert.Empty(t, paths)
	})
}

func TestStore_ReadDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/in", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/in/speech1.txt", []byte("未来"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/in/broken.txt", []byte{0xff, 0xfe, 0x41}, 0o644))
	s := New(fs)

	doc, err := s.ReadDocument("/in/speech1.txt")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceDocument{Path: "/in/speech1.txt", Name: "speech1.txt", Stem: "speech1", Text: "未来"}, doc)

	_, err = s.ReadDocument("/in/broken.txt")
	assert.ErrorIs(t, err, domain.ErrInvalidUTF8)

	_, err = s.ReadDocument("/in/missing.txt")
	assert.Error(t, err)
}

func TestStem(t *testing.T) {
	tests := map[string]string{
		"speech1.txt":        "speech1",
		"/a/b/speech1.txt":   "speech1",
		"第203回.所信.txt":      "第203回",
		".hidden.txt":        ".hidden",
		"noext":              "noext",
	}
	for in, want := range tests {
		assert.Equal(t, want, Stem(in), in)
	}
}

func TestArtifactsFor(t *testing.T) {
	a := ArtifactsFor("/out", Stem("speech1.txt"))
	assert.Equal(t, domain.Artifacts{
		WordCloud:    "/out/Word_Cloud_speech1.png",
		AnalyzedText: "/out/Analyzed_Text_speech1.txt",
		BarGraph:     "/out/Bar_Graph_speech1.png",
	}, a)
}

func TestStore_CreateRunDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	now := time.Date(2024, 5, 1, 9, 30, 59, 0, time.Local)

	dir, err := New(fs).CreateRunDir("/work", now, "2006-01-02-15-04", "-result")
	require.NoError(t, err)
	assert.Equal(t, "/work/2024-05-01-09-30-result", dir)

	ok, err := afero.DirExists(fs, dir)
	require.NoError(t, err)
	assert.True(t, ok)

	again, err := New(fs).CreateRunDir("/work", now, "2006-01-02-15-04", "-result")
	require.NoError(t, err)
	assert.Equal(t, dir, again)
}

func TestStore_Writes(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out", 0o755))
	s := New(fs)

	require.NoError(t, s.WriteTokens("/out/a.txt", []string{"未来", "経済", "未来"}))
	data, err := afero.ReadFile(fs, "/out/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "未来 経済 未来", string(data))

	require.NoError(t, s.WriteTokens("/out/empty.txt", nil))
	data, err = afero.ReadFile(fs, "/out/empty.txt")
	require.NoError(t, err)
	assert.Empty(t, data)

	require.NoError(t, s.WritePNG("/out/a.png", image.NewRGBA(image.Rect(0, 0, 4, 2))))
	data, err = afero.ReadFile(fs, "/out/a.png")
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
}
