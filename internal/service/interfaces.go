// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the sync decision engine and the manifest runner.
package service

import (
	"context"

	"github.com/MKhiriev/drivesync/internal/adapter"
	"github.com/MKhiriev/drivesync/models"
)

// SyncService decides and performs the transfer for one target.
type SyncService interface {
	// Sync compares the local file of target with its remote counterpart
	// through session and does at most one transfer:
	//   - no remote id: create it and store the new id on target;
	//   - local newer: update the remote object;
	//   - remote newer: download into the local file;
	//   - equal: nothing.
	// Modification times are compared after truncation to the configured
	// precision.
	Sync(ctx context.Context, session adapter.RemoteSession, target *models.SyncTarget) (models.Action, error)
}

// ManifestRunner processes a whole manifest.
type ManifestRunner interface {
	// Run loads the manifest at path, syncs every listed file with the
	// session of its credential group and writes the known remote ids back.
	//
	// The returned error is set only for failures that stop the run: an
	// unusable manifest or credential file (both before any remote call and
	// without touching the manifest), or a failed manifest save. Per-file
	// failures are reported in the returned report.
	Run(ctx context.Context, path string) (models.Report, error)
}
