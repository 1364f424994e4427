// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/drivesync/internal/adapter"
	"github.com/MKhiriev/drivesync/internal/app"
	"github.com/MKhiriev/drivesync/internal/logger"
	"github.com/MKhiriev/drivesync/internal/store"
	"github.com/MKhiriev/drivesync/internal/validators"
	"github.com/MKhiriev/drivesync/models"
	"github.com/google/uuid"
)

type manifestRunner struct {
	manifests store.ManifestStore
	sessions  adapter.SessionFactory
	syncer    SyncService
	validator validators.Validator
	log       *logger.Logger
}

// NewManifestRunner returns a [ManifestRunner] that loads and saves
// manifests through manifests, opens one session per credential group with
// sessions and syncs each file with syncer.
func NewManifestRunner(manifests store.ManifestStore, sessions adapter.SessionFactory, syncer SyncService, log *logger.Logger) ManifestRunner {
	return &manifestRunner{
		manifests: manifests,
		sessions:  sessions,
		syncer:    syncer,
		validator: validators.NewManifestValidator(),
		log:       log,
	}
}

func (r *manifestRunner) Run(ctx context.Context, path string) (models.Report, error) {
	log := r.log.WithField("run_id", newRunID()).WithField("manifest", path)
	ctx = log.WithContext(ctx)

	m, err := r.manifests.Load(ctx, path)
	if err != nil {
		return models.Report{}, fmt.Errorf("load manifest: %w", err)
	}
	if err = r.validator.Validate(ctx, m.Groups); err != nil {
		return models.Report{}, fmt.Errorf("%w: invalid manifest %s: %w", app.ErrConfig, path, err)
	}

	// Every credential file is checked before the first transfer so a bad
	// key never leaves the manifest half-synced.
	sessions := make([]adapter.RemoteSession, len(m.Groups))
	for g, group := range m.Groups {
		sessions[g], err = r.sessions.NewSession(group.CredentialsFile, group.RootFolder)
		if err != nil {
			return models.Report{}, fmt.Errorf("group %d (%s): %w", g, group.CredentialsFile, err)
		}
	}

	var report models.Report
	for g, group := range m.Groups {
		for _, target := range group.Targets {
			result := models.FileResult{Ref: target.Ref, LocalPath: target.LocalPath}

			if ctxErr := ctx.Err(); ctxErr != nil {
				result.RemoteID = target.RemoteID
				result.Err = fmt.Errorf("%w: %w", ErrSkipped, ctxErr)
				report.Add(result)
				continue
			}

			result.Action, result.Err = r.syncer.Sync(ctx, sessions[g], target)
			result.RemoteID = target.RemoteID
			if result.Err != nil {
				log.Error().Err(result.Err).
					Str("path", target.LocalPath).
					Str("ref", target.Ref.String()).
					Msg("file sync failed")
			}

			if target.HasRemoteID() {
				if err = m.SetRemoteID(target.Ref, target.RemoteID); err != nil {
					return report, fmt.Errorf("record remote id: %w", err)
				}
			}
			report.Add(result)
		}
	}

	if err = r.manifests.Save(ctx, path, m); err != nil {
		return report, fmt.Errorf("save manifest: %w", err)
	}

	log.Info().
		Int("files", len(report.Results)).
		Int("succeeded", report.Succeeded()).
		Int("failed", len(report.Failed())).
		Msg("run finished")

	return report, nil
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
