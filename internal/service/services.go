// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/drivesync/internal/adapter"
	"github.com/MKhiriev/drivesync/internal/config"
	"github.com/MKhiriev/drivesync/internal/logger"
	"github.com/MKhiriev/drivesync/internal/store"
	"github.com/spf13/afero"
)

// Services bundles the services of one drivesync process.
type Services struct {
	SyncService    SyncService
	ManifestRunner ManifestRunner
}

// NewServices wires the decision engine and runner over fsys.
func NewServices(cfg *config.StructuredConfig, fsys afero.Fs, log *logger.Logger) *Services {
	syncSvc := NewSyncService(fsys, cfg.Sync.TimePrecision)
	sessions := adapter.NewDriveSessionFactory(cfg.Drive, cfg.Auth, fsys, log)

	return &Services{
		SyncService:    syncSvc,
		ManifestRunner: NewManifestRunner(store.NewManifestStore(fsys), sessions, syncSvc, log),
	}
}
