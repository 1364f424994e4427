// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run processes the manifest once and returns when every file was
	// attempted.
	Run(ctx context.Context) error
}
