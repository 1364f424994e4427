// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CredentialGroup is one manifest "details" entry: a credential reference, a
// destination root folder, and the files synced with them.
type CredentialGroup struct {
	// CredentialsFile is the path of the service-account key file.
	CredentialsFile string

	// RootFolder is the remote folder id new files are created under.
	RootFolder string

	// Targets keeps the order of the manifest's "files" array.
	Targets []*SyncTarget
}
