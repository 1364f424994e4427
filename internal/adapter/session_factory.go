// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/drivesync/internal/app"
	"github.com/MKhiriev/drivesync/internal/auth"
	"github.com/MKhiriev/drivesync/internal/config"
	"github.com/MKhiriev/drivesync/internal/logger"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
)

type driveSessionFactory struct {
	drive config.Drive
	auth  config.Auth
	fs    afero.Fs
	clock clockwork.Clock
	log   *logger.Logger
}

// NewDriveSessionFactory returns a [SessionFactory] building Drive sessions
// from service-account key files read through fsys.
func NewDriveSessionFactory(driveCfg config.Drive, authCfg config.Auth, fsys afero.Fs, log *logger.Logger) SessionFactory {
	return &driveSessionFactory{
		drive: driveCfg,
		auth:  authCfg,
		fs:    fsys,
		clock: clockwork.NewRealClock(),
		log:   log,
	}
}

func (f *driveSessionFactory) NewSession(credentialsFile, rootFolder string) (RemoteSession, error) {
	if rootFolder == "" {
		return nil, fmt.Errorf("%w: %w", app.ErrConfig, ErrEmptyRootFolder)
	}

	key, err := auth.LoadServiceAccountKey(f.fs, credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: load credentials: %w", app.ErrConfig, err)
	}

	tokens, err := auth.NewServiceAccountTokenSource(key, auth.TokenSourceConfig{
		TokenURL: f.auth.TokenURL,
		Timeout:  f.drive.RequestTimeout,
		Clock:    f.clock,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: token source: %w", app.ErrConfig, err)
	}

	f.log.Debug().
		Str("credentials_file", credentialsFile).
		Str("client_email", key.ClientEmail).
		Msg("remote session created")

	return NewDriveSession(f.drive, tokens, rootFolder, f.fs, f.log), nil
}
