// Package logger holds the process-wide diagnostic logger.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger instance. It discards all output until Init enables it.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures the logger initialization.
type Options struct {
	Verbose bool      // If false, all logging is discarded
	Writer  io.Writer // Destination. Default: os.Stderr
	Level   slog.Leveler // Minimum level. Default: slog.LevelDebug
}

// Init configures logging. Call before any log calls.
func Init(opts Options) {
	if !opts.Verbose {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	var level slog.Leveler = slog.LevelDebug
	if opts.Level != nil {
		level = opts.Level
	}
	L = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
