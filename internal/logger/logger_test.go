// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/drivesync/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", "info", &buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test", "warn", &buf)

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.NotEmpty(t, buf.String())
}

func TestNewLogger_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test", "chatty", &buf)

	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestNewClientLogger_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "drivesync.log")

	l, closeFn, err := NewClientLogger("cli", config.Log{Level: "debug", File: p}, io.Discard)
	require.NoError(t, err)
	l.Debug().Msg("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNewClientLogger_Stderr(t *testing.T) {
	var stderr bytes.Buffer
	l, closeFn, err := NewClientLogger("cli", config.Log{Level: "info"}, &stderr)

	require.NoError(t, err)
	l.Info().Msg("to stderr")
	assert.NoError(t, closeFn())
	assert.Contains(t, stderr.String(), `"message":"to stderr"`)
}

func TestNewClientLogger_UnwritablePath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing-dir", "drivesync.log")

	_, _, err := NewClientLogger("cli", config.Log{Level: "info", File: p}, io.Discard)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open log file")
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestWithField_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("parent", "info", &buf).WithField("run_id", "abc")

	l.Info().Msg("child")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "abc", entry["run_id"])
	assert.Equal(t, "parent", entry["role"])
}

func TestGetChildLogger_IsIndependent(t *testing.T) {
	parent := NewLogger("parent", "info", &bytes.Buffer{})
	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctx", "info", &buf).WithField("ctx-key", "ctx-value")
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}

func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}
