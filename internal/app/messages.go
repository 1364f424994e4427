// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

const (
	// MsgCreated is printed when a file had no remote counterpart and was
	// uploaded as a new remote object.
	MsgCreated = "created"

	// MsgUpdated is printed when the local copy was newer and its content
	// was pushed to the existing remote object.
	MsgUpdated = "updated"

	// MsgDownloaded is printed when the remote copy was newer and its
	// content replaced the local file.
	MsgDownloaded = "downloaded"

	// MsgUnchanged is printed when both sides carry the same modification
	// time and no transfer was needed.
	MsgUnchanged = "unchanged"

	// MsgFailed is printed for a file whose sync returned an error.
	MsgFailed = "failed"
)
