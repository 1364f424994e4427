// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGetConfig_Defaults(t *testing.T) {
	cfg, err := GetConfig()

	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestGetConfig_JSONOverridesDefaults(t *testing.T) {
	p := writeTempJSONConfig(t, `{"manifest": "other.json", "drive": {"request_timeout": "5s"}}`)
	t.Setenv("DRIVESYNC_CONFIG", p)

	cfg, err := GetConfig()

	require.NoError(t, err)
	assert.Equal(t, "other.json", cfg.Manifest.Path)
	assert.Equal(t, 5*time.Second, cfg.Drive.RequestTimeout)
	// untouched fields keep their defaults
	assert.Equal(t, "https://www.googleapis.com", cfg.Drive.BaseURL)
	assert.Equal(t, time.Second, cfg.Sync.TimePrecision)
}

func TestGetConfig_EnvOverridesJSON(t *testing.T) {
	p := writeTempJSONConfig(t, `{"manifest": "from-json.json", "log": {"level": "warn"}}`)
	t.Setenv("DRIVESYNC_CONFIG", p)
	t.Setenv("DRIVESYNC_MANIFEST", "from-env.json")

	cfg, err := GetConfig()

	require.NoError(t, err)
	assert.Equal(t, "from-env.json", cfg.Manifest.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestGetConfig_MissingJSONFile(t *testing.T) {
	t.Setenv("DRIVESYNC_CONFIG", filepath.Join(t.TempDir(), "missing.json"))

	cfg, err := GetConfig()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{name: "empty manifest", mutate: func(c *StructuredConfig) { c.Manifest.Path = "" }, wantErr: ErrInvalidManifestConfigs},
		{name: "relative base url", mutate: func(c *StructuredConfig) { c.Drive.BaseURL = "googleapis" }, wantErr: ErrInvalidDriveConfigs},
		{name: "zero timeout", mutate: func(c *StructuredConfig) { c.Drive.RequestTimeout = 0 }, wantErr: ErrInvalidDriveConfigs},
		{name: "negative precision", mutate: func(c *StructuredConfig) { c.Sync.TimePrecision = -time.Second }, wantErr: ErrInvalidSyncConfigs},
		{name: "unknown level", mutate: func(c *StructuredConfig) { c.Log.Level = "loud" }, wantErr: ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
