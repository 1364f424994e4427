// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/drivesync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func target(path, id string, file int) *models.SyncTarget {
	return models.NewSyncTarget(path, id, models.EntryRef{File: file})
}

func validGroup() models.CredentialGroup {
	return models.CredentialGroup{
		CredentialsFile: "creds.json",
		RootFolder:      "root",
		Targets: []*models.SyncTarget{
			target("a.txt", "", 0),
			target("docs/b.txt", "id-b", 1),
		},
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewManifestValidator(t *testing.T) {
	v := NewManifestValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewManifestValidator()
	ctx := context.Background()
	group := validGroup()

	assert.NoError(t, v.Validate(ctx, []models.CredentialGroup{group}))
	assert.NoError(t, v.Validate(ctx, group))
	assert.NoError(t, v.Validate(ctx, &group))
	assert.NoError(t, v.Validate(ctx, *group.Targets[0]))
	assert.NoError(t, v.Validate(ctx, group.Targets[0]))
	assert.ErrorIs(t, v.Validate(ctx, "not a manifest"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, group, "bogus"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Groups
// ---------------------------------------------------------------------------

func TestValidate_Group(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(g *models.CredentialGroup)
		wantErr error
	}{
		{name: "valid", mutate: func(g *models.CredentialGroup) {}},
		{name: "empty credentials", mutate: func(g *models.CredentialGroup) { g.CredentialsFile = "" }, wantErr: ErrEmptyCredentialsFile},
		{name: "empty root folder", mutate: func(g *models.CredentialGroup) { g.RootFolder = "" }, wantErr: ErrEmptyRootFolder},
		{name: "empty path", mutate: func(g *models.CredentialGroup) { g.Targets[0].LocalPath = "" }, wantErr: ErrEmptyPath},
		{
			name: "duplicate path after cleaning",
			mutate: func(g *models.CredentialGroup) {
				g.Targets = append(g.Targets, target("./docs/../a.txt", "", 2))
			},
			wantErr: ErrDuplicatePath,
		},
		{
			name: "duplicate remote id",
			mutate: func(g *models.CredentialGroup) {
				g.Targets = append(g.Targets, target("c.txt", "id-b", 2))
			},
			wantErr: ErrDuplicateRemoteID,
		},
		{
			name: "several targets without id",
			mutate: func(g *models.CredentialGroup) {
				g.Targets = append(g.Targets, target("c.txt", "", 2), target("d.txt", "", 3))
			},
		},
		{name: "no targets", mutate: func(g *models.CredentialGroup) { g.Targets = nil }},
	}

	v := NewManifestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := validGroup()
			tt.mutate(&group)

			err := v.Validate(context.Background(), group)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_GroupFieldScoping(t *testing.T) {
	v := NewManifestValidator()
	group := validGroup()
	group.RootFolder = ""

	assert.NoError(t, v.Validate(context.Background(), group, FieldCredentialsFile, FieldTargets))
	assert.ErrorIs(t, v.Validate(context.Background(), group, FieldRootFolder), ErrEmptyRootFolder)
}

func TestValidate_SamePathAcrossGroups(t *testing.T) {
	v := NewManifestValidator()
	first := validGroup()
	second := validGroup()
	second.CredentialsFile = "other.json"

	err := v.Validate(context.Background(), []models.CredentialGroup{first, second})

	assert.NoError(t, err, "groups are independent")
}

func TestValidate_GroupsReportsIndex(t *testing.T) {
	v := NewManifestValidator()
	bad := validGroup()
	bad.CredentialsFile = ""

	err := v.Validate(context.Background(), []models.CredentialGroup{validGroup(), bad})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyCredentialsFile)
	assert.Contains(t, err.Error(), "details[1]")
}
