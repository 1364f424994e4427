// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/MKhiriev/drivesync/internal/app"
	"github.com/MKhiriev/drivesync/internal/logger"
	"github.com/spf13/afero"
)

const defaultManifestMode fs.FileMode = 0o644

type manifestStore struct {
	fs afero.Fs
}

// NewManifestStore returns a [ManifestStore] reading and writing through
// fsys.
func NewManifestStore(fsys afero.Fs) ManifestStore {
	return &manifestStore{fs: fsys}
}

func (s *manifestStore) Load(ctx context.Context, path string) (*Manifest, error) {
	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w: %s", app.ErrConfig, ErrManifestNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read manifest %s: %w", app.ErrConfig, path, err)
	}

	m, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", app.ErrConfig, path, err)
	}

	logger.FromContext(ctx).Debug().
		Str("manifest", path).
		Int("groups", len(m.Groups)).
		Msg("manifest loaded")

	return m, nil
}

// Save writes to a temporary file next to path and renames it over path,
// so a failed write never leaves a truncated manifest behind.
func (s *manifestStore) Save(ctx context.Context, path string, m *Manifest) error {
	data, err := m.Encode()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSavingManifest, err)
	}

	mode := defaultManifestMode
	if info, statErr := s.fs.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := afero.TempFile(s.fs, filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrSavingManifest, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %w", ErrSavingManifest, err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("%w: sync temp file: %w", ErrSavingManifest, err)
	}
	if err = tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %w", ErrSavingManifest, err)
	}
	if err = s.fs.Chmod(tmpName, mode); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("%w: chmod temp file: %w", ErrSavingManifest, err)
	}
	if err = s.fs.Rename(tmpName, path); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %w", ErrSavingManifest, path, err)
	}

	logger.FromContext(ctx).Debug().Str("manifest", path).Msg("manifest saved")
	return nil
}
