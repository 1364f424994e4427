// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
)

const serviceAccountType = "service_account"

// ServiceAccountKey is the subset of a Google service-account key file used
// for the token exchange.
type ServiceAccountKey struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	TokenURI     string `json:"token_uri"`
}

// LoadServiceAccountKey reads and validates the key file at path.
func LoadServiceAccountKey(fsys afero.Fs, path string) (ServiceAccountKey, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ServiceAccountKey{}, fmt.Errorf("%w: %s", ErrCredentialsNotFound, path)
		}
		return ServiceAccountKey{}, fmt.Errorf("read credentials %s: %w", path, err)
	}

	var key ServiceAccountKey
	if err = json.Unmarshal(data, &key); err != nil {
		return ServiceAccountKey{}, fmt.Errorf("%w: %s: %w", ErrInvalidCredentials, path, err)
	}

	if err = key.validate(); err != nil {
		return ServiceAccountKey{}, fmt.Errorf("%w: %s: %w", ErrInvalidCredentials, path, err)
	}

	return key, nil
}

func (k ServiceAccountKey) validate() error {
	if k.Type != "" && k.Type != serviceAccountType {
		return fmt.Errorf("unsupported credentials type %q", k.Type)
	}
	if k.ClientEmail == "" {
		return errors.New("client_email is empty")
	}
	if k.PrivateKey == "" {
		return errors.New("private_key is empty")
	}
	return nil
}
