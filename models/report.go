// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// FileResult is the outcome of syncing one target.
type FileResult struct {
	Ref       EntryRef
	LocalPath string
	// RemoteID is the target's id after the sync attempt; it may be empty
	// when a first upload failed.
	RemoteID string
	Action   Action
	Err      error
}

// Report collects the per-file outcomes of a run in processing order.
type Report struct {
	Results []FileResult
}

// Add appends a result.
func (r *Report) Add(res FileResult) {
	r.Results = append(r.Results, res)
}

// Failed returns the results whose sync returned an error.
func (r *Report) Failed() []FileResult {
	var failed []FileResult
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Succeeded returns the number of targets synced without error.
func (r *Report) Succeeded() int {
	return len(r.Results) - len(r.Failed())
}

// Err joins every per-file failure, each annotated with its group index and
// path. It returns nil when all files succeeded.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("group %d: %s: %w", res.Ref.Group, res.LocalPath, res.Err))
	}
	return errors.Join(errs...)
}
