// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyCredentialsFile = errors.New("credentials_file is empty")
	ErrEmptyRootFolder      = errors.New("root_folder is empty")
	ErrEmptyPath            = errors.New("path is empty")
	ErrDuplicatePath        = errors.New("path listed twice in one group")
	ErrDuplicateRemoteID    = errors.New("remote id listed twice in one group")
)
