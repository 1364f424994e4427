// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth exchanges a Google service-account key for short-lived
// access tokens.
//
// The key file is read through an afero.Fs. A token is obtained with the
// JWT-bearer grant: an RS256 assertion signed with the key's private key is
// posted to the key's token_uri. The only scope ever requested is
// [DriveFileScope], which limits access to files the application created.
package auth
