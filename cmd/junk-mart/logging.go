package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	logFileName = "junk-mart.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes slog and the standard logger away from the terminal
// Logs are discarded unless debug is set; then they go to dir/junk-mart.log,
// rotating an oversized previous log to .old
func setupLogging(debug bool, dir string, level slog.Level) (*os.File, *slog.Logger) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, slog.New(slog.DiscardHandler)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil, slog.New(slog.DiscardHandler)
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		_ = os.Rename(path, path+".old")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil, slog.New(slog.DiscardHandler)
	}

	log.SetOutput(f)
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return f, slog.New(handler).With("session", uuid.NewString())
}
