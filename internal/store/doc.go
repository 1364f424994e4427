// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store loads and saves the sync manifest.
//
// The manifest is held twice: as typed [models.CredentialGroup] values the
// runner iterates, and as raw JSON objects at document, group and file
// level. Saving re-encodes the raw objects, so keys drivesync does not know
// about survive a run with their original values. Only the "id" of a file
// entry is ever changed, through [Manifest.SetRemoteID].
package store
