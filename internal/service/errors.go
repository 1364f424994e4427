// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// ErrSkipped marks a target that was not attempted because the run was
// cancelled first.
var ErrSkipped = errors.New("skipped")
