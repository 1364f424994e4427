// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrManifestNotFound is returned when the manifest file does not exist.
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrMalformedManifest is returned when the manifest is not valid JSON or
	// a known field has the wrong JSON type.
	ErrMalformedManifest = errors.New("malformed manifest")

	// ErrMissingField is returned when a required manifest key is absent.
	ErrMissingField = errors.New("missing required manifest field")

	// ErrUnknownEntry is returned by SetRemoteID for a reference that does
	// not point at a file entry of the loaded manifest.
	ErrUnknownEntry = errors.New("unknown manifest entry")

	// ErrSavingManifest is returned when the rewritten manifest cannot be
	// persisted.
	ErrSavingManifest = errors.New("error saving manifest")
)
