package warmup

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/baditaflorin/go_speech_wordcloud/internal/ports"
)

// WarmupConfig defines configuration for warming up the analyzer
type WarmupConfig struct {
	// Number of passes over the sample transcript
	Iterations int
	// Sample text size in runes
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Iterations:     20,
		SampleTextSize: 2000,
		Duration:       3 * time.Second,
		ForceGC:        true,
	}
}

// Manager runs a synthetic transcript through the analysis chain so the dictionary
// and lattice buffers are resident before the batch starts.
type Manager struct {
	logger      ports.Logger
	normalizers []ports.Normalizer
	tokenizers  []ports.Tokenizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// RegisterTokenizer adds a tokenizer to be warmed up
func (wm *Manager) RegisterTokenizer(tok ports.Tokenizer) {
	wm.tokenizers = append(wm.tokenizers, tok)
}

// WarmUp runs the sample through every registered component and returns the number
// of completed iterations. It stops early when ctx is done or Duration elapses.
func (wm *Manager) WarmUp(ctx context.Context) int {
	startTime := time.Now()
	wm.logger.Info("Starting analyzer warmup",
		"components", len(wm.normalizers)+len(wm.tokenizers),
		"iterations", wm.config.Iterations,
	)

	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	sample := generateSampleText(wm.config.SampleTextSize)
	completed := 0
	for i := 0; i < wm.config.Iterations; i++ {
		if warmupCtx.Err() != nil {
			break
		}
		text := sample
		for _, n := range wm.normalizers {
			text = n.Normalize(sample)
		}
		for _, tok := range wm.tokenizers {
			if _, err := tok.Tokenize(text); err != nil {
				wm.logger.Warn("Tokenizer failed during warmup", "error", err)
			}
		}
		completed++
	}

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("Analyzer warmup completed",
		"iterations", completed,
		"duration", time.Since(startTime),
	)
	return completed
}

// generateSampleText creates transcript-like text of roughly size runes, including
// the line breaks and brackets the normalizer removes.
func generateSampleText(size int) string {
	sentences := []string{
		"本日は「経済」と社会の未来についてお話しします。\n",
		"我が国の　技術・産業は大きく変わりつつあります。\n",
		"（拍手）教育と環境への投資を続けてまいります。\n",
		"ＡＩやﾃﾞｼﾞﾀﾙ化の課題に、国民の皆様とともに取り組みます。\n",
	}

	var sb strings.Builder
	runes := 0
	for i := 0; runes < size; i++ {
		s := sentences[i%len(sentences)]
		sb.WriteString(s)
		runes += len([]rune(s))
	}
	return sb.String()
}
