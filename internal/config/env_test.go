// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"DRIVESYNC_CONFIG":                "/path/to/config.json",
		"DRIVESYNC_MANIFEST":              "/etc/drivesync/sync.json",
		"DRIVESYNC_DRIVE_BASE_URL":        "http://localhost:9000",
		"DRIVESYNC_DRIVE_REQUEST_TIMEOUT": "15s",
		"DRIVESYNC_AUTH_TOKEN_URL":        "http://localhost:9000/token",
		"DRIVESYNC_SYNC_TIME_PRECISION":   "1ms",
		"DRIVESYNC_LOG_LEVEL":             "debug",
		"DRIVESYNC_LOG_FILE":              "/var/log/drivesync.log",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/etc/drivesync/sync.json", cfg.Manifest.Path)
	assert.Equal(t, "http://localhost:9000", cfg.Drive.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Drive.RequestTimeout)
	assert.Equal(t, "http://localhost:9000/token", cfg.Auth.TokenURL)
	assert.Equal(t, time.Millisecond, cfg.Sync.TimePrecision)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/log/drivesync.log", cfg.Log.File)
}

func TestParseEnv_NoVariables(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"DRIVESYNC_DRIVE_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
