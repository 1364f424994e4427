// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for drivesync.
//
// Configuration is assembled from the following sources, later sources
// overriding non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. JSON config file (path from DRIVESYNC_CONFIG)
//  3. Environment variables
//
// The tool takes no command-line flags; [GetConfig] is the only entry point.
package config
