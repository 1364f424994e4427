// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// Manifest locates the sync manifest.
	Manifest Manifest `envPrefix:"DRIVESYNC_"`

	// Drive holds the remote endpoint and per-call timeout.
	Drive Drive `envPrefix:"DRIVESYNC_DRIVE_"`

	// Auth holds overrides for the service-account token exchange.
	Auth Auth `envPrefix:"DRIVESYNC_AUTH_"`

	// Sync holds decision-engine settings.
	Sync Sync `envPrefix:"DRIVESYNC_SYNC_"`

	// Log holds logger settings.
	Log Log `envPrefix:"DRIVESYNC_LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// populated from DRIVESYNC_CONFIG.
	JSONFilePath string `env:"DRIVESYNC_CONFIG"`
}

// Manifest locates the manifest document processed by a run.
type Manifest struct {
	// Path of the manifest, relative to the working directory unless
	// absolute.
	Path string `env:"MANIFEST"`
}

// Drive configures the remote storage endpoint.
type Drive struct {
	// BaseURL is the scheme and host serving both the metadata API
	// (/drive/v3) and the upload API (/upload/drive/v3).
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every single remote call.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth configures the service-account token exchange.
type Auth struct {
	// TokenURL overrides the token_uri found in the key file when set.
	TokenURL string `env:"TOKEN_URL"`
}

// Sync configures the sync decision.
type Sync struct {
	// TimePrecision is the unit both modification times are truncated to
	// before they are compared.
	TimePrecision time.Duration `env:"TIME_PRECISION"`
}

// Log configures the application logger.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	Level string `env:"LEVEL"`

	// File, when set, receives log output instead of stderr.
	File string `env:"FILE"`
}

// Defaults returns the built-in configuration.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Manifest: Manifest{Path: "sync.json"},
		Drive: Drive{
			BaseURL:        "https://www.googleapis.com",
			RequestTimeout: 60 * time.Second,
		},
		Sync: Sync{TimePrecision: time.Second},
		Log:  Log{Level: "info"},
	}
}

// GetConfig builds the configuration from defaults, the optional JSON file
// and the environment, then validates it.
func GetConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg, nil
}
