// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the plain data types passed between the drivesync
// layers: sync targets, credential groups, actions and run reports.
package models

import "fmt"

// EntryRef points back to the manifest entry a [SyncTarget] was built from.
// Group indexes the "details" array and File indexes that group's "files"
// array. The runner uses it to write the final remote id into exactly the
// entry it came from.
type EntryRef struct {
	Group int
	File  int
}

// String renders the reference as details[g].files[f].
func (r EntryRef) String() string {
	return fmt.Sprintf("details[%d].files[%d]", r.Group, r.File)
}

// SyncTarget is one file's synchronization state for the duration of a run.
type SyncTarget struct {
	// LocalPath is the path of the local file. It never changes during a run.
	LocalPath string

	// RemoteID is the opaque id of the remote counterpart. Empty means the
	// file has not been created remotely yet; create fills it in once.
	RemoteID string

	// Ref links the target to its manifest entry.
	Ref EntryRef
}

// NewSyncTarget builds a target from a manifest entry.
func NewSyncTarget(localPath, remoteID string, ref EntryRef) *SyncTarget {
	return &SyncTarget{LocalPath: localPath, RemoteID: remoteID, Ref: ref}
}

// HasRemoteID reports whether the target already has a remote counterpart.
func (t *SyncTarget) HasRemoteID() bool {
	return t.RemoteID != ""
}
