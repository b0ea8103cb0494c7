// Package logging installs the JSON file logger used by every command
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the log file.
type Options struct {
	Path       string
	Level      slog.Level
	MaxSize    int // megabytes
	MaxBackups int
}

// New returns a logger writing JSON lines to a rotating file, along with the
// writer so callers can close it on exit.
func New(opts Options) (*slog.Logger, io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o750); err != nil {
		return nil, nil, err
	}

	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		Compress:   true,
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: opts.Level,
	})

	return slog.New(handler), w, nil
}

// Setup installs the file logger as the default logger.
func Setup(opts Options) (io.Closer, error) {
	logger, w, err := New(opts)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)

	return w, nil
}
