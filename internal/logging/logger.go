package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"chanreg/internal/config"
)

// LogFileName is the run log inside the configured log directory.
const LogFileName = "chanreg.log"

// Options describes logger construction parameters.
type Options struct {
	Level       string
	Format      string
	Console     io.Writer
	FilePath    string
	MaxSizeMB   int
	MaxBackups  int
	RunID       string
	Development bool
}

// New constructs a slog logger from opts. The returned close function
// flushes and closes the file sink and is always non-nil.
func New(opts Options) (*slog.Logger, func() error, error) {
	noClose := func() error { return nil }

	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, noClose, err
	}
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)
	addSource := opts.Development || level <= slog.LevelDebug

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	var consoleHandler slog.Handler
	switch format := strings.ToLower(strings.TrimSpace(opts.Format)); format {
	case "", "console":
		consoleHandler = newPrettyHandler(console, levelVar, addSource)
	case "json":
		consoleHandler = newJSONHandler(console, levelVar, addSource)
	default:
		return nil, noClose, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	handlers := []slog.Handler{consoleHandler}
	closeFn := noClose
	if path := strings.TrimSpace(opts.FilePath); path != "" {
		file, err := newFileSink(path, opts.MaxSizeMB, opts.MaxBackups)
		if err != nil {
			return nil, noClose, err
		}
		fileLevel := new(slog.LevelVar)
		fileLevel.Set(slog.LevelDebug)
		handlers = append(handlers, newJSONHandler(file, fileLevel, true))
		closeFn = file.Close
	}

	handler := newFanoutHandler(handlers...)
	if id := strings.TrimSpace(opts.RunID); id != "" {
		handler = newRunIDHandler(handler, id)
	}
	return slog.New(handler), closeFn, nil
}

// NewFromConfig creates a logger from the [logging] and [paths] settings.
// A nil console writes to stderr.
func NewFromConfig(cfg *config.Config, runID string, console io.Writer) (*slog.Logger, func() error, error) {
	if cfg == nil {
		return New(Options{Level: "info", Format: "console", Console: console, RunID: runID})
	}
	opts := Options{
		Console:    console,
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		RunID:      runID,
	}
	if dir := strings.TrimSpace(cfg.Paths.LogDir); dir != "" {
		opts.FilePath = filepath.Join(dir, LogFileName)
	}
	return New(opts)
}

var errUnknownLevel = errors.New("unknown log level")

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", errUnknownLevel, level)
	}
}
