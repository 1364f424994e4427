// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/drivesync/models"
)

const (
	FieldGroups          = "groups"
	FieldCredentialsFile = "credentials_file"
	FieldRootFolder      = "root_folder"
	FieldTargets         = "targets"
	FieldPath            = "path"
)

type ManifestValidator struct {
}

func NewManifestValidator() Validator {
	return &ManifestValidator{}
}

func (v *ManifestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case []models.CredentialGroup:
		return v.validateGroups(ctx, value, fields...)

	case models.CredentialGroup:
		return v.validateGroup(ctx, value, fields...)
	case *models.CredentialGroup:
		return v.validateGroup(ctx, *value, fields...)

	case models.SyncTarget:
		return v.validateTarget(ctx, value, fields...)
	case *models.SyncTarget:
		return v.validateTarget(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ManifestValidator) validateGroups(ctx context.Context, groups []models.CredentialGroup, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGroups}
	}

	for _, f := range fields {
		switch f {
		case FieldGroups:
			for g, group := range groups {
				if err := v.validateGroup(ctx, group); err != nil {
					return fmt.Errorf("details[%d]: %w", g, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ManifestValidator) validateGroup(ctx context.Context, group models.CredentialGroup, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCredentialsFile, FieldRootFolder, FieldTargets}
	}

	for _, f := range fields {
		switch f {
		case FieldCredentialsFile:
			if group.CredentialsFile == "" {
				return ErrEmptyCredentialsFile
			}
		case FieldRootFolder:
			if group.RootFolder == "" {
				return ErrEmptyRootFolder
			}
		case FieldTargets:
			paths := make(map[string]int, len(group.Targets))
			ids := make(map[string]int, len(group.Targets))
			for i, target := range group.Targets {
				if err := v.validateTarget(ctx, *target); err != nil {
					return fmt.Errorf("files[%d]: %w", i, err)
				}

				clean := filepath.Clean(target.LocalPath)
				if first, ok := paths[clean]; ok {
					return fmt.Errorf("files[%d]: %w: %s (first at files[%d])", i, ErrDuplicatePath, target.LocalPath, first)
				}
				paths[clean] = i

				if !target.HasRemoteID() {
					continue
				}
				if first, ok := ids[target.RemoteID]; ok {
					return fmt.Errorf("files[%d]: %w: %s (first at files[%d])", i, ErrDuplicateRemoteID, target.RemoteID, first)
				}
				ids[target.RemoteID] = i
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ManifestValidator) validateTarget(ctx context.Context, target models.SyncTarget, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPath}
	}

	for _, f := range fields {
		switch f {
		case FieldPath:
			if target.LocalPath == "" {
				return ErrEmptyPath
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
