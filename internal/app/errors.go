// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the error taxonomy and user-facing message strings
// shared by every layer of drivesync.
//
// Each layer wraps its own failures with one of the sentinels below so the
// runner and the CLI can classify an error with [errors.Is] without knowing
// which package produced it.
package app

import "errors"

var (
	// ErrConfig marks failures that abort a run before any remote call: a
	// missing or malformed manifest, a missing required field, or a missing
	// or invalid credential file. The manifest is never rewritten after an
	// ErrConfig.
	ErrConfig = errors.New("configuration error")

	// ErrRemoteWrite marks a rejected create or update call (auth failure,
	// quota, invalid folder, network failure).
	ErrRemoteWrite = errors.New("remote write error")

	// ErrRemoteRead marks a failed content or metadata fetch (invalid or
	// inaccessible id, auth failure, network failure).
	ErrRemoteRead = errors.New("remote read error")

	// ErrLocalIO marks a local file that could not be read, stat'ed or
	// written.
	ErrLocalIO = errors.New("local io error")
)
