// logger.go
package speechcloud

import (
	"github.com/baditaflorin/go_speech_wordcloud/internal/adapters/logger"
	"github.com/baditaflorin/go_speech_wordcloud/internal/config"
	"github.com/baditaflorin/go_speech_wordcloud/internal/ports"
)

// createDefaultLogger creates the run logger described by the log configuration.
func createDefaultLogger(cfg config.LogConfig) (ports.Logger, error) {
	return logger.New(logger.Options{
		File:    cfg.File,
		JSON:    cfg.JSON,
		Verbose: cfg.Verbose,
		Async:   true,
	})
}
