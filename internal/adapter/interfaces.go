// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the remote-store abstraction drivesync syncs
// against.
//
// The primary abstraction is [RemoteSession]: one authenticated connection
// for one credential set and one destination root folder. The package ships
// a Drive v3 implementation over resty ([NewDriveSession]) and a
// [SessionFactory] that builds sessions from service-account key files.
//
// Transport failures are mapped from HTTP status codes by mapHTTPError so
// callers can use [errors.Is] against the sentinels in errors.go; every
// session error is additionally wrapped with app.ErrRemoteWrite,
// app.ErrRemoteRead or app.ErrLocalIO.
package adapter

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_session_mock.go -package=mock

// RemoteSession performs authenticated remote-store operations scoped to one
// root folder. Every method is a single remote call; nothing is retried or
// cached.
type RemoteSession interface {
	// Create uploads the full content of localPath as a new remote object
	// named after the file's base name, parented under targetFolder, or under
	// the session root when targetFolder is empty. It returns the id the
	// remote store assigned.
	Create(ctx context.Context, localPath, targetFolder string) (string, error)

	// Update overwrites the content and display name of remoteID with the
	// current content and name of localPath.
	Update(ctx context.Context, remoteID, localPath string) error

	// FetchBytes returns the full content of remoteID.
	FetchBytes(ctx context.Context, remoteID string) ([]byte, error)

	// FetchModifiedTime returns the last-modified instant of remoteID in UTC.
	FetchModifiedTime(ctx context.Context, remoteID string) (time.Time, error)
}

// SessionFactory builds one [RemoteSession] per credential group.
type SessionFactory interface {
	// NewSession loads the credentials at credentialsFile and returns a
	// session rooted at rootFolder. Failures are configuration errors and
	// happen before any remote call.
	NewSession(credentialsFile, rootFolder string) (RemoteSession, error)
}
