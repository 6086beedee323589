package logger

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_speech_wordcloud/internal/ports"
)

// Options controls how the run log is produced.
type Options struct {
	// Output defaults to stdout when nil and File is empty.
	Output io.Writer
	// File, when set, appends the log to this path instead of Output.
	File    string
	JSON    bool
	Verbose bool
	Async   bool
}

// StdLogger adapts l.Logger to ports.Logger and gates debug output.
type StdLogger struct {
	logger  l.Logger
	verbose bool
	closer  io.Closer
}

// New creates a logger from options.
func New(opts Options) (ports.Logger, error) {
	output := opts.Output
	var closer io.Closer
	if opts.File != "" {
		file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output, closer = file, file
	}
	if output == nil {
		output = os.Stdout
	}

	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  opts.JSON,
		AsyncWrite:  opts.Async,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   opts.Verbose,
		Metrics:     false,
	})
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &StdLogger{logger: logger, verbose: opts.Verbose, closer: closer}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() ports.Logger {
	logger, err := New(Options{Output: io.Discard})
	if err != nil {
		return nopLogger{}
	}
	return logger
}

// FromExisting wraps an existing l.Logger. Debug output is enabled.
func FromExisting(logger l.Logger) ports.Logger {
	return &StdLogger{logger: logger, verbose: true}
}

// Debug logs a debug message when verbose output is enabled.
func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	if !s.verbose {
		return
	}
	s.logger.Debug(msg, keysAndValues...)
}

// Info logs an info message.
func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, keysAndValues...)
}

// Close flushes the logger and releases the log file, if any.
func (s *StdLogger) Close() error {
	err := s.logger.Close()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil && !errors.Is(cerr, os.ErrClosed) {
			err = cerr
		}
	}
	return err
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Close() error                 { return nil }
