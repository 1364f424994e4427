// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrSyncFailed is returned by [App.Run] when at least one file failed.
var ErrSyncFailed = errors.New("sync failed")
