// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gutensearch/internal/platform/logger"
)

/*
TestNew_JSON verifies the JSON handler output and the global app attribute.
*/
func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.FormatJSON, false)

	log.Info("search_executed", slog.Int("rows", 3))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "search_executed", entry["msg"])
	assert.Equal(t, "gutensearch", entry["app"])
	assert.EqualValues(t, 3, entry["rows"])
}

/*
TestNew_DebugLevel verifies debug records are dropped unless debug is enabled.
*/
func TestNew_DebugLevel(t *testing.T) {
	var quiet, verbose bytes.Buffer

	logger.New(&quiet, logger.FormatJSON, false).Debug("hidden")
	logger.New(&verbose, logger.FormatJSON, true).Debug("shown")

	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), "shown")
}

/*
TestNew_Console verifies the console handler writes the message.
*/
func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger.New(&buf, logger.FormatConsole, false).Info("author_graph_loaded", slog.Int("nodes", 2))

	assert.Contains(t, buf.String(), "author_graph_loaded")
}
