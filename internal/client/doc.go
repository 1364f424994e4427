// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the drivesync command-line runtime.
//
// It builds configuration, logger and services for one process, runs the
// manifest once and prints one line per file to stdout.
package client
