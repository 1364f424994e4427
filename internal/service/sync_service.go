// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	"github.com/MKhiriev/drivesync/internal/adapter"
	"github.com/MKhiriev/drivesync/internal/app"
	"github.com/MKhiriev/drivesync/internal/logger"
	"github.com/MKhiriev/drivesync/models"
	"github.com/spf13/afero"
)

// DefaultTimePrecision matches the second-level precision remote stores
// commonly expose.
const DefaultTimePrecision = time.Second

type syncService struct {
	fs        afero.Fs
	precision time.Duration
}

// NewSyncService returns a [SyncService] reading and writing local files
// through fsys. A non-positive precision means [DefaultTimePrecision].
func NewSyncService(fsys afero.Fs, precision time.Duration) SyncService {
	if precision <= 0 {
		precision = DefaultTimePrecision
	}
	return &syncService{fs: fsys, precision: precision}
}

func (s *syncService) Sync(ctx context.Context, session adapter.RemoteSession, target *models.SyncTarget) (models.Action, error) {
	log := logger.FromContext(ctx).With().
		Str("path", target.LocalPath).
		Str("ref", target.Ref.String()).
		Logger()

	if !target.HasRemoteID() {
		id, err := session.Create(ctx, target.LocalPath, "")
		if err != nil {
			return models.ActionNone, fmt.Errorf("create remote copy: %w", err)
		}
		target.RemoteID = id

		log.Info().Str("remote_id", id).Stringer("action", models.ActionCreated).Msg("file synced")
		return models.ActionCreated, nil
	}

	log = log.With().Str("remote_id", target.RemoteID).Logger()

	info, err := s.fs.Stat(target.LocalPath)
	if err != nil {
		return models.ActionNone, fmt.Errorf("%w: stat %s: %w", app.ErrLocalIO, target.LocalPath, err)
	}
	if info.IsDir() {
		return models.ActionNone, fmt.Errorf("%w: %s is a directory", app.ErrLocalIO, target.LocalPath)
	}

	remoteTime, err := session.FetchModifiedTime(ctx, target.RemoteID)
	if err != nil {
		return models.ActionNone, fmt.Errorf("fetch remote modified time: %w", err)
	}

	local := info.ModTime().UTC().Truncate(s.precision)
	remote := remoteTime.UTC().Truncate(s.precision)

	var action models.Action
	switch {
	case local.After(remote):
		if err = session.Update(ctx, target.RemoteID, target.LocalPath); err != nil {
			return models.ActionNone, fmt.Errorf("update remote copy: %w", err)
		}
		action = models.ActionUpdated
	case local.Before(remote):
		if err = s.download(ctx, session, target, info.Mode().Perm(), remoteTime); err != nil {
			return models.ActionNone, err
		}
		action = models.ActionDownloaded
	default:
		action = models.ActionUnchanged
	}

	log.Info().
		Time("local_mtime", local).
		Time("remote_mtime", remote).
		Stringer("action", action).
		Msg("file synced")

	return action, nil
}

// download replaces the local file with the remote content and stamps it
// with the remote modified time, so the next comparison sees equal times.
func (s *syncService) download(ctx context.Context, session adapter.RemoteSession, target *models.SyncTarget, perm fs.FileMode, remoteTime time.Time) error {
	data, err := session.FetchBytes(ctx, target.RemoteID)
	if err != nil {
		return fmt.Errorf("fetch remote content: %w", err)
	}

	if err = afero.WriteFile(s.fs, target.LocalPath, data, perm); err != nil {
		return fmt.Errorf("%w: write %s: %w", app.ErrLocalIO, target.LocalPath, err)
	}
	if err = s.fs.Chtimes(target.LocalPath, remoteTime, remoteTime); err != nil {
		return fmt.Errorf("%w: set times on %s: %w", app.ErrLocalIO, target.LocalPath, err)
	}

	return nil
}
