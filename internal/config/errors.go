// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidManifestConfigs indicates an empty manifest path.
	ErrInvalidManifestConfigs = errors.New("invalid manifest configuration")
	// ErrInvalidDriveConfigs indicates a missing or unparsable base URL or a
	// non-positive request timeout.
	ErrInvalidDriveConfigs = errors.New("invalid drive configuration")
	// ErrInvalidSyncConfigs indicates a non-positive time precision.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
