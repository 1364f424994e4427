// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Transport errors mapped from HTTP status codes.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("remote object not found")
	ErrRateLimited  = errors.New("rate limited")

	// ErrEmptyRemoteID is returned when the remote store accepts a create
	// request but the response carries no id.
	ErrEmptyRemoteID = errors.New("remote store returned an empty id")

	// ErrEmptyRootFolder is returned by the factory for a group without a
	// root folder.
	ErrEmptyRootFolder = errors.New("root folder is empty")
)
