// Package pipeline runs the batch: enumerate transcripts, extract nouns, render and
// persist the per-transcript artifacts.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/baditaflorin/go_speech_wordcloud/internal/adapters/storage"
	"github.com/baditaflorin/go_speech_wordcloud/internal/core/domain"
	"github.com/baditaflorin/go_speech_wordcloud/internal/core/extract"
	"github.com/baditaflorin/go_speech_wordcloud/internal/core/frequency"
	"github.com/baditaflorin/go_speech_wordcloud/internal/ports"
)

// Config holds the run-level parameters.
type Config struct {
	InputDir        string
	OutputParent    string
	OutputDirLayout string
	OutputDirSuffix string
	TopN            int
}

// DefaultConfig returns the defaults for everything but the input directory.
func DefaultConfig() Config {
	return Config{
		OutputParent:    ".",
		OutputDirLayout: "2006-01-02-15-04",
		OutputDirSuffix: "-result",
		TopN:            frequency.DefaultTopN,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("input directory is required")
	}
	if c.OutputDirLayout == "" {
		return errors.New("output directory layout is required")
	}
	if c.TopN <= 0 {
		return errors.New("topN must be greater than 0")
	}
	return nil
}

// Pipeline processes every transcript of a directory, one after the other.
type Pipeline struct {
	config    Config
	store     *storage.Store
	extractor *extract.Extractor
	cloud     ports.WordCloudRenderer
	chart     ports.ChartRenderer
	logger    ports.Logger
	now       func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock overrides the clock used to name the output directory.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// New creates a pipeline.
func New(config Config, store *storage.Store, extractor *extract.Extractor, cloud ports.WordCloudRenderer, chart ports.ChartRenderer, logger ports.Logger, opts ...Option) (*Pipeline, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if store == nil || extractor == nil || cloud == nil || chart == nil || logger == nil {
		return nil, errors.New("pipeline dependencies must not be nil")
	}
	p := &Pipeline{
		config:    config,
		store:     store,
		extractor: extractor,
		cloud:     cloud,
		chart:     chart,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run processes every transcript in the input directory. Per-file failures are recorded
// in the summary; only enumeration, output directory creation and cancellation abort.
func (p *Pipeline) Run(ctx context.Context) (domain.Summary, error) {
	start := time.Now()

	paths, err := p.store.ListTranscripts(p.config.InputDir)
	if err != nil {
		return domain.Summary{}, err
	}

	outDir, err := p.store.CreateRunDir(p.config.OutputParent, p.now(), p.config.OutputDirLayout, p.config.OutputDirSuffix)
	if err != nil {
		return domain.Summary{}, err
	}

	p.logger.Info("Starting batch",
		"input_dir", p.config.InputDir,
		"output_dir", outDir,
		"transcripts", len(paths),
	)

	summary := domain.Summary{OutputDir: outDir, Results: make([]domain.FileResult, 0, len(paths))}
	stems := make(map[string]string, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			p.logger.Error("Batch cancelled", "error", err, "processed", len(summary.Results))
			return summary, err
		}

		stem := storage.Stem(path)
		if prev, dup := stems[stem]; dup {
			p.logger.Warn("Transcripts share a stem, artifacts will be overwritten",
				"stem", stem, "first", prev, "second", path)
		}
		stems[stem] = path

		summary.Results = append(summary.Results, p.ProcessFile(ctx, outDir, path))
	}

	p.logger.Info("Batch completed",
		"output_dir", outDir,
		"ok", summary.Count(domain.StatusOK),
		"empty", summary.Count(domain.StatusEmpty),
		"failed", summary.Count(domain.StatusFailed),
		"duration", time.Since(start),
	)
	return summary, nil
}

// ProcessFile handles one transcript and never panics.
func (p *Pipeline) ProcessFile(ctx context.Context, outDir, path string) domain.FileResult {
	res := domain.FileResult{Source: path, Stem: storage.Stem(path)}
	artifacts := storage.ArtifactsFor(outDir, res.Stem)

	fail := func(stage string, err error) domain.FileResult {
		res.Status = domain.StatusFailed
		res.Err = fmt.Errorf("%s: %w", stage, err)
		p.logger.Error("Transcript failed", "source", path, "stage", stage, "error", err)
		return res
	}

	doc, err := p.store.ReadDocument(path)
	if err != nil {
		return fail("read", err)
	}

	tokens, err := p.extractor.Extract(ctx, doc.Text)
	if err != nil {
		return fail("extract", err)
	}

	table := frequency.Count(tokens)
	res.Tokens = table.Total()
	res.Distinct = table.Distinct()

	if err := p.store.WriteTokens(artifacts.AnalyzedText, tokens); err != nil {
		return fail("write text", err)
	}
	res.Artifacts.AnalyzedText = artifacts.AnalyzedText

	if len(tokens) == 0 {
		res.Status = domain.StatusEmpty
		res.Err = domain.ErrEmptyTokenSet
		p.logger.Warn("No common nouns found, skipping images", "source", path)
		return res
	}

	img, err := render(func() (image.Image, error) { return p.cloud.RenderWordCloud(tokens) })
	switch {
	case errors.Is(err, domain.ErrEmptyTokenSet):
		p.logger.Warn("Word cloud has no words after filtering, skipping", "source", path)
	case err != nil:
		return fail("word cloud", err)
	default:
		if err := p.store.WritePNG(artifacts.WordCloud, img); err != nil {
			return fail("write word cloud", err)
		}
		res.Artifacts.WordCloud = artifacts.WordCloud
	}

	entries := table.TopN(p.config.TopN)
	img, err = render(func() (image.Image, error) { return p.chart.RenderChart(entries) })
	if err != nil {
		return fail("bar chart", err)
	}
	if err := p.store.WritePNG(artifacts.BarGraph, img); err != nil {
		return fail("write bar chart", err)
	}
	res.Artifacts.BarGraph = artifacts.BarGraph

	res.Status = domain.StatusOK
	p.logger.Info("Transcript processed",
		"source", path,
		"tokens", res.Tokens,
		"distinct", res.Distinct,
		"top", entries[0].Word,
	)
	return res
}

func render(fn func() (image.Image, error)) (img image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("renderer panic: %v", r)
		}
	}()
	return fn()
}
