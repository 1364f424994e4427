// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"testing"
	"time"

	"github.com/MKhiriev/drivesync/internal/app"
	"github.com/MKhiriev/drivesync/internal/auth"
	"github.com/MKhiriev/drivesync/internal/config"
	"github.com/MKhiriev/drivesync/internal/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriveSessionFactory_NewSessionErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/creds/broken.json", []byte("{not json"), 0o600))
	require.NoError(t, afero.WriteFile(fs, "/creds/badpem.json",
		[]byte(`{"type":"service_account","client_email":"a@b","private_key":"not a pem"}`), 0o600))

	factory := NewDriveSessionFactory(
		config.Drive{BaseURL: "http://127.0.0.1", RequestTimeout: time.Second},
		config.Auth{},
		fs,
		logger.Nop(),
	)

	tests := []struct {
		name       string
		creds      string
		rootFolder string
		wantErr    error
	}{
		{name: "empty root folder", creds: "/creds/broken.json", rootFolder: "", wantErr: ErrEmptyRootFolder},
		{name: "missing credentials", creds: "/creds/missing.json", rootFolder: "root", wantErr: auth.ErrCredentialsNotFound},
		{name: "malformed credentials", creds: "/creds/broken.json", rootFolder: "root", wantErr: auth.ErrInvalidCredentials},
		{name: "unparsable private key", creds: "/creds/badpem.json", rootFolder: "root", wantErr: auth.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := factory.NewSession(tt.creds, tt.rootFolder)

			assert.Nil(t, session)
			require.Error(t, err)
			assert.ErrorIs(t, err, app.ErrConfig)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
