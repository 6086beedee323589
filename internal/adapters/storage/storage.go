// Package storage enumerates transcripts and persists the per-transcript artifacts.
package storage

import (
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/baditaflorin/go_speech_wordcloud/internal/core/domain"
	"github.com/baditaflorin/go_speech_wordcloud/internal/pool"
)

// TranscriptExt is the suffix of processed input files. Matching is case-sensitive.
const TranscriptExt = ".txt"

// Artifact filename prefixes.
const (
	WordCloudPrefix    = "Word_Cloud_"
	AnalyzedTextPrefix = "Analyzed_Text_"
	BarGraphPrefix     = "Bar_Graph_"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Store reads transcripts and writes artifacts through an afero filesystem.
// Artifacts are encoded in memory first so a failed encode leaves no partial file.
type Store struct {
	fs      afero.Fs
	buffers *pool.BufferPool
}

// New creates a store on fs.
func New(fs afero.Fs) *Store {
	return &Store{
		fs:      fs,
		buffers: pool.NewBufferPool(64*1024, 8*1024*1024),
	}
}

// Fs returns the underlying filesystem.
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// ListTranscripts returns the .txt regular files directly under dir, sorted by name.
func (s *Store) ListTranscripts(dir string) ([]string, error) {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("list transcripts in %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if !e.Mode().IsRegular() || !strings.HasSuffix(e.Name(), TranscriptExt) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadDocument reads a transcript and checks that it is valid UTF-8.
func (s *Store) ReadDocument(path string) (domain.SourceDocument, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return domain.SourceDocument{}, fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return domain.SourceDocument{}, fmt.Errorf("read %s: %w", path, domain.ErrInvalidUTF8)
	}
	name := filepath.Base(path)
	return domain.SourceDocument{
		Path: path,
		Name: name,
		Stem: Stem(name),
		Text: string(data),
	}, nil
}

// Stem returns the part of a filename before its first dot. Names starting with a dot
// fall back to the name without its last extension.
func Stem(name string) string {
	name = filepath.Base(name)
	if i := strings.IndexByte(name, '.'); i > 0 {
		return name[:i]
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// RunDirName formats the per-run directory name, e.g. 2024-05-01-09-30-result.
func RunDirName(now time.Time, layout, suffix string) string {
	return now.Format(layout) + suffix
}

// CreateRunDir creates parent/RunDirName(now, layout, suffix). An existing directory
// is reused.
func (s *Store) CreateRunDir(parent string, now time.Time, layout, suffix string) (string, error) {
	dir := filepath.Join(parent, RunDirName(now, layout, suffix))
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return dir, nil
}

// ArtifactsFor returns the three output paths for a transcript stem.
func ArtifactsFor(dir, stem string) domain.Artifacts {
	return domain.Artifacts{
		WordCloud:    filepath.Join(dir, WordCloudPrefix+stem+".png"),
		AnalyzedText: filepath.Join(dir, AnalyzedTextPrefix+stem+".txt"),
		BarGraph:     filepath.Join(dir, BarGraphPrefix+stem+".png"),
	}
}

// WriteTokens writes tokens joined by single spaces as UTF-8 text.
func (s *Store) WriteTokens(path string, tokens []string) error {
	buf := s.buffers.Get()
	defer s.buffers.Put(buf)

	for i, tok := range tokens {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(tok)
	}
	if err := afero.WriteFile(s.fs, path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WritePNG encodes img as PNG at path.
func (s *Store) WritePNG(path string, img image.Image) error {
	buf := s.buffers.Get()
	defer s.buffers.Put(buf)

	if err := png.Encode(buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := afero.WriteFile(s.fs, path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
