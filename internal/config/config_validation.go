// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks that the merged [StructuredConfig] is usable before a run
// starts.
func (cfg *StructuredConfig) validate() error {
	if cfg.Manifest.Path == "" {
		return ErrInvalidManifestConfigs
	}

	u, err := url.Parse(cfg.Drive.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q", ErrInvalidDriveConfigs, cfg.Drive.BaseURL)
	}
	if cfg.Drive.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidDriveConfigs)
	}

	if cfg.Sync.TimePrecision <= 0 {
		return ErrInvalidSyncConfigs
	}

	if _, err = zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
