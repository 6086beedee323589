// speechcloud.go
// Package speechcloud turns a folder of Japanese speech transcripts into word clouds,
// top-N frequency bar charts and the filtered common-noun token streams.
//
// For every *.txt file in the input directory the transcript is normalized (line breaks,
// spaces, the middle dot and full-width brackets removed, then NFKC), analyzed with
// kagome, reduced to 名詞,一般 tokens minus stopwords, and written to a timestamped
// <YYYY-MM-DD-HH-MM>-result directory as:
//
//	Word_Cloud_<stem>.png
//	Analyzed_Text_<stem>.txt
//	Bar_Graph_<stem>.png
//
// Files are processed one after the other and a failure only affects its own file.
package speechcloud

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/baditaflorin/l"
	"github.com/spf13/afero"

	"github.com/baditaflorin/go_speech_wordcloud/internal/adapters/logger"
	"github.com/baditaflorin/go_speech_wordcloud/internal/adapters/normalizer"
	"github.com/baditaflorin/go_speech_wordcloud/internal/adapters/render"
	"github.com/baditaflorin/go_speech_wordcloud/internal/adapters/storage"
	"github.com/baditaflorin/go_speech_wordcloud/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_speech_wordcloud/internal/config"
	"github.com/baditaflorin/go_speech_wordcloud/internal/core/domain"
	"github.com/baditaflorin/go_speech_wordcloud/internal/core/extract"
	"github.com/baditaflorin/go_speech_wordcloud/internal/core/frequency"
	"github.com/baditaflorin/go_speech_wordcloud/internal/pipeline"
	"github.com/baditaflorin/go_speech_wordcloud/internal/ports"
	"github.com/baditaflorin/go_speech_wordcloud/internal/warmup"
)

type (
	// Config holds every run parameter. See DefaultConfig and LoadConfig.
	Config = config.Config
	// Summary is the outcome of a run.
	Summary = domain.Summary
	// FileResult is the outcome of one transcript.
	FileResult = domain.FileResult
	// Status is pass/empty/failed for one transcript.
	Status = domain.Status
	// Morpheme is one unit of morphological analysis.
	Morpheme = domain.Morpheme
	// WordCount is a top-N entry.
	WordCount = domain.WordCount

	Tokenizer         = ports.Tokenizer
	WordCloudRenderer = ports.WordCloudRenderer
	ChartRenderer     = ports.ChartRenderer
)

const (
	StatusOK     = domain.StatusOK
	StatusEmpty  = domain.StatusEmpty
	StatusFailed = domain.StatusFailed
)

var (
	ErrEmptyTokenSet   = domain.ErrEmptyTokenSet
	ErrInvalidUTF8     = domain.ErrInvalidUTF8
	ErrFontUnavailable = domain.ErrFontUnavailable
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return config.Default()
}

// LoadConfig reads an optional .env file and SPEECHCLOUD_* environment variables.
func LoadConfig() (*Config, error) {
	return config.Load()
}

type settings struct {
	config    *Config
	logger    ports.Logger
	fs        afero.Fs
	tokenizer ports.Tokenizer
	cloud     ports.WordCloudRenderer
	chart     ports.ChartRenderer
	now       func() time.Time
}

// Option defines a functional option for configuring the analyzer.
type Option func(*settings)

// WithConfig replaces the default configuration.
func WithConfig(cfg *Config) Option {
	return func(s *settings) {
		s.config = cfg
	}
}

// WithLogger sets a custom logger. The caller keeps ownership and closes it.
func WithLogger(lg l.Logger) Option {
	return func(s *settings) {
		if lg != nil {
			s.logger = logger.FromExisting(lg)
		}
	}
}

// WithFs sets the filesystem transcripts are read from and artifacts written to.
func WithFs(fs afero.Fs) Option {
	return func(s *settings) {
		s.fs = fs
	}
}

// WithTokenizer replaces the kagome IPA tokenizer.
func WithTokenizer(t Tokenizer) Option {
	return func(s *settings) {
		s.tokenizer = t
	}
}

// WithWordCloudRenderer replaces the built-in word cloud renderer.
func WithWordCloudRenderer(r WordCloudRenderer) Option {
	return func(s *settings) {
		s.cloud = r
	}
}

// WithChartRenderer replaces the built-in bar chart renderer.
func WithChartRenderer(r ChartRenderer) Option {
	return func(s *settings) {
		s.chart = r
	}
}

// WithClock overrides the clock used to name the output directory.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		s.now = now
	}
}

// Analyzer wires the normalizer, tokenizer, renderers and storage into a batch run.
type Analyzer struct {
	config     *Config
	logger     ports.Logger
	ownsLogger bool
	normalizer ports.Normalizer
	tokenizer  ports.Tokenizer
	extractor  *extract.Extractor
	pipeline   *pipeline.Pipeline
}

// New creates an Analyzer. Without explicit renderers the configured font is loaded
// up front, so a missing or unreadable font fails here rather than per file.
func New(opts ...Option) (*Analyzer, error) {
	s := settings{
		config: config.Default(),
		fs:     afero.NewOsFs(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.config == nil {
		return nil, errors.New("config is required")
	}
	if err := s.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	a := &Analyzer{config: s.config, logger: s.logger}
	if a.logger == nil {
		lg, err := createDefaultLogger(s.config.Log)
		if err != nil {
			return nil, err
		}
		a.logger, a.ownsLogger = lg, true
	}

	if err := a.wire(s); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *Analyzer) wire(s settings) error {
	cfg := s.config
	a.normalizer = normalizer.NewDefaultNormalizer()

	a.tokenizer = s.tokenizer
	if a.tokenizer == nil {
		tok, err := tokenizer.NewKagomeTokenizer()
		if err != nil {
			return err
		}
		a.tokenizer = tok
	}

	stop := cfg.StopwordSet()
	extractor, err := extract.NewExtractor(stop, a.logger, a.normalizer, a.tokenizer)
	if err != nil {
		return err
	}
	a.extractor = extractor

	cloud, chart := s.cloud, s.chart
	if cloud == nil || chart == nil {
		f, err := render.LoadFont(s.fs, cfg.FontPath)
		if err != nil {
			return err
		}
		if cloud == nil {
			wc := render.DefaultWordCloudConfig(cfg.FontPath)
			wc.MaxWords = cfg.MaxWords
			wc.Stopwords = stop
			if cloud, err = render.NewWordCloudRenderer(wc); err != nil {
				return err
			}
		}
		if chart == nil {
			if chart, err = render.NewChartRenderer(render.DefaultChartConfig(f, cfg.TopN)); err != nil {
				return err
			}
		}
	}

	p, err := pipeline.New(pipeline.Config{
		InputDir:        cfg.InputDir,
		OutputParent:    cfg.OutputParent,
		OutputDirLayout: cfg.OutputDirLayout,
		OutputDirSuffix: cfg.OutputDirSuffix,
		TopN:            cfg.TopN,
	}, storage.New(s.fs), extractor, cloud, chart, a.logger, pipeline.WithClock(s.now))
	if err != nil {
		return err
	}
	a.pipeline = p
	return nil
}

// Run processes every transcript of the input directory. The returned error is only
// set for run-level failures; per-file failures are reported in the Summary.
func (a *Analyzer) Run(ctx context.Context) (Summary, error) {
	if a.config.WarmUp {
		a.WarmUp(ctx)
	}
	return a.pipeline.Run(ctx)
}

// WarmUp runs a synthetic transcript through the normalizer and tokenizer.
func (a *Analyzer) WarmUp(ctx context.Context) int {
	wm := warmup.NewManager(a.logger, warmup.DefaultWarmupConfig())
	wm.RegisterNormalizer(a.normalizer)
	wm.RegisterTokenizer(a.tokenizer)
	return wm.WarmUp(ctx)
}

// Normalize applies transcript normalization to text.
func (a *Analyzer) Normalize(text string) string {
	return a.normalizer.Normalize(text)
}

// Extract returns the common-noun tokens of text in order of occurrence.
func (a *Analyzer) Extract(ctx context.Context, text string) ([]string, error) {
	return a.extractor.Extract(ctx, text)
}

// TopWords returns the n most frequent tokens, ties broken by first occurrence.
func (a *Analyzer) TopWords(tokens []string, n int) []WordCount {
	return frequency.Count(tokens).TopN(n)
}

// Close flushes and closes the logger when the analyzer created it.
func (a *Analyzer) Close() error {
	if a.ownsLogger && a.logger != nil {
		return a.logger.Close()
	}
	return nil
}

// Run is a convenience function that creates an Analyzer, runs it once and closes it.
func Run(ctx context.Context, opts ...Option) (Summary, error) {
	a, err := New(opts...)
	if err != nil {
		return Summary{}, err
	}
	defer a.Close()
	return a.Run(ctx)
}
