package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// loadConfig loads the config and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagPlayer != "" {
		cfg.Storage.Player = flagPlayer
	}
	return cfg, nil
}

// openStore opens the database named by cfg.
func openStore(cfg config.Config) (*storage.Store, error) {
	return storage.Open(config.ExpandHome(cfg.Storage.Path))
}

// newFileLogger returns a logger writing to the configured log file.
// The returned closer must be called on exit. An empty path discards logs.
func newFileLogger(cfg config.LogConfig, prefix string) (*log.Logger, io.Closer, error) {
	if cfg.Path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	path := config.ExpandHome(cfg.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	setLevel(logger, cfg.Level)
	return logger, f, nil
}

// newStderrLogger returns a timestamped logger on stderr.
func newStderrLogger(cfg config.LogConfig, prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	setLevel(logger, cfg.Level)
	return logger
}

func setLevel(logger *log.Logger, level string) {
	if level == "" {
		return
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		return
	}
	logger.SetLevel(lvl)
}

// expandNonEmpty expands ~ in path, keeping empty paths empty.
func expandNonEmpty(path string) string {
	if path == "" {
		return ""
	}
	return config.ExpandHome(path)
}
