// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package logger builds the process-wide [*slog.Logger].
//
// Two output formats are supported:
//
//   - json: machine-readable, one object per line (production default).
//   - console: colourised key/value lines for terminals, rendered by charmbracelet/log.
//
// Both are plain [slog.Handler] implementations, so call sites only ever see slog.
package logger

import (
	"io"
	"log/slog"
	"time"

	charmlog "github.com/charmbracelet/log"
)

const (
	// FormatJSON selects the structured JSON handler.
	FormatJSON = "json"
	// FormatConsole selects the human-readable console handler.
	FormatConsole = "console"
)

// New returns a logger writing to w in the requested format, tagged with the app name.
func New(w io.Writer, format string, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	switch format {
	case FormatConsole:
		consoleLevel := charmlog.InfoLevel
		if debug {
			consoleLevel = charmlog.DebugLevel
		}
		handler = charmlog.NewWithOptions(w, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Level:           consoleLevel,
			Prefix:          "gutensearch",
		})
	default:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler).With(slog.String("app", "gutensearch"))
}

// Discard returns a logger that drops every record. Used by tests and quiet CLI runs.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
