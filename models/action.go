// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/MKhiriev/drivesync/internal/app"

// Action is the single step the sync decision took for a target.
type Action int

const (
	// ActionNone is the zero value, used for targets whose sync failed
	// before an action could complete.
	ActionNone Action = iota
	// ActionCreated means the file was uploaded as a new remote object.
	ActionCreated
	// ActionUpdated means local content was pushed to the remote object.
	ActionUpdated
	// ActionDownloaded means remote content replaced the local file.
	ActionDownloaded
	// ActionUnchanged means both sides were already in sync.
	ActionUnchanged
)

// String returns the word printed in the run report.
func (a Action) String() string {
	switch a {
	case ActionCreated:
		return app.MsgCreated
	case ActionUpdated:
		return app.MsgUpdated
	case ActionDownloaded:
		return app.MsgDownloaded
	case ActionUnchanged:
		return app.MsgUnchanged
	default:
		return app.MsgFailed
	}
}
