// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

// ManifestStore reads and writes manifest documents.
type ManifestStore interface {
	// Load parses the manifest at path. Every failure wraps app.ErrConfig.
	Load(ctx context.Context, path string) (*Manifest, error)

	// Save atomically replaces the file at path with m, keeping the
	// original file mode.
	Save(ctx context.Context, path string, m *Manifest) error
}
