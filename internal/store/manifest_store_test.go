// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/drivesync/internal/app"
	"github.com/MKhiriev/drivesync/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestStore_Load(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/sync.json", []byte(sampleManifest), 0o600))
	s := NewManifestStore(fs)

	m, err := s.Load(context.Background(), "/work/sync.json")

	require.NoError(t, err)
	assert.Len(t, m.Groups, 2)
}

func TestManifestStore_LoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/broken.json", []byte("{"), 0o600))
	s := NewManifestStore(fs)

	_, err := s.Load(context.Background(), "/work/missing.json")
	assert.ErrorIs(t, err, app.ErrConfig)
	assert.ErrorIs(t, err, ErrManifestNotFound)

	_, err = s.Load(context.Background(), "/work/broken.json")
	assert.ErrorIs(t, err, app.ErrConfig)
	assert.ErrorIs(t, err, ErrMalformedManifest)
}

func TestManifestStore_Save(t *testing.T) {
	// Arrange
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/sync.json", []byte(sampleManifest), 0o600))
	s := NewManifestStore(fs)
	ctx := context.Background()

	m, err := s.Load(ctx, "/work/sync.json")
	require.NoError(t, err)
	require.NoError(t, m.SetRemoteID(models.EntryRef{Group: 0, File: 0}, "new-a"))

	// Act
	err = s.Save(ctx, "/work/sync.json", m)

	// Assert
	require.NoError(t, err)

	info, err := fs.Stat("/work/sync.json")
	require.NoError(t, err)
	assert.Equal(t, "-rw-------", info.Mode().Perm().String())

	reloaded, err := s.Load(ctx, "/work/sync.json")
	require.NoError(t, err)
	assert.Equal(t, "new-a", reloaded.Groups[0].Targets[0].RemoteID)

	entries, err := afero.ReadDir(fs, "/work")
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must not be left behind")
	assert.Equal(t, "sync.json", entries[0].Name())
}

func TestManifestStore_SaveUnchangedIsStable(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/sync.json", []byte(sampleManifest), 0o644))
	s := NewManifestStore(fs)
	ctx := context.Background()

	m, err := s.Load(ctx, "/work/sync.json")
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "/work/sync.json", m))
	first, err := afero.ReadFile(fs, "/work/sync.json")
	require.NoError(t, err)

	m, err = s.Load(ctx, "/work/sync.json")
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "/work/sync.json", m))
	second, err := afero.ReadFile(fs, "/work/sync.json")
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestManifestStore_SaveReadOnlyFs(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/work/sync.json", []byte(sampleManifest), 0o644))
	ro := afero.NewReadOnlyFs(base)
	s := NewManifestStore(ro)
	ctx := context.Background()

	m, err := s.Load(ctx, "/work/sync.json")
	require.NoError(t, err)

	err = s.Save(ctx, "/work/sync.json", m)
	assert.ErrorIs(t, err, ErrSavingManifest)
}
