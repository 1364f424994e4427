// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

var (
	// ErrCredentialsNotFound is returned when the key file does not exist.
	ErrCredentialsNotFound = errors.New("credentials file not found")

	// ErrInvalidCredentials is returned when the key file is not valid JSON,
	// lacks a required field, or carries an unparsable private key.
	ErrInvalidCredentials = errors.New("invalid service account credentials")

	// ErrTokenRejected is returned when the token endpoint refuses the
	// assertion or answers without an access token.
	ErrTokenRejected = errors.New("access token request rejected")
)
