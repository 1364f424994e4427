// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/drivesync/models"
)

// Manifest keys.
const (
	keyDetails         = "details"
	keyCredentialsFile = "credentials_file"
	keyRootFolder      = "root_folder"
	keyFiles           = "files"
	keyPath            = "path"
	keyID              = "id"
)

type rawObject = map[string]json.RawMessage

// Manifest is a loaded manifest document.
type Manifest struct {
	// Groups lists credential groups in document order. Each target's Ref
	// points back at the file entry it was read from.
	Groups []models.CredentialGroup

	doc    rawObject
	groups []rawObject
	files  [][]rawObject
}

// SetRemoteID sets the "id" of the file entry at ref. Entries whose id is
// already id are left untouched so an unchanged manifest encodes the same.
func (m *Manifest) SetRemoteID(ref models.EntryRef, id string) error {
	if ref.Group < 0 || ref.Group >= len(m.files) || ref.File < 0 || ref.File >= len(m.files[ref.Group]) {
		return fmt.Errorf("%w: %s", ErrUnknownEntry, ref)
	}

	entry := m.files[ref.Group][ref.File]
	if current, err := decodeID(entry[keyID]); err == nil && current == id {
		return nil
	}

	raw, err := marshal(id)
	if err != nil {
		return fmt.Errorf("encode id: %w", err)
	}
	entry[keyID] = raw

	return nil
}

// Encode renders the document with four-space indentation.
func (m *Manifest) Encode() ([]byte, error) {
	groups := make([]rawObject, len(m.groups))
	for g, group := range m.groups {
		files, err := marshal(m.files[g])
		if err != nil {
			return nil, fmt.Errorf("encode files of group %d: %w", g, err)
		}

		merged := make(rawObject, len(group))
		for k, v := range group {
			merged[k] = v
		}
		merged[keyFiles] = files
		groups[g] = merged
	}

	details, err := marshal(groups)
	if err != nil {
		return nil, fmt.Errorf("encode details: %w", err)
	}

	doc := make(rawObject, len(m.doc))
	for k, v := range m.doc {
		doc[k] = v
	}
	doc[keyDetails] = details

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err = enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a manifest document.
func Decode(data []byte) (*Manifest, error) {
	m := &Manifest{}

	if err := json.Unmarshal(data, &m.doc); err != nil || m.doc == nil {
		return nil, fmt.Errorf("%w: document is not a JSON object", ErrMalformedManifest)
	}

	rawDetails, ok := m.doc[keyDetails]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, keyDetails)
	}
	if err := json.Unmarshal(rawDetails, &m.groups); err != nil || m.groups == nil {
		return nil, fmt.Errorf("%w: %s must be an array of objects", ErrMalformedManifest, keyDetails)
	}

	m.Groups = make([]models.CredentialGroup, len(m.groups))
	m.files = make([][]rawObject, len(m.groups))

	for g, group := range m.groups {
		where := fmt.Sprintf("details[%d]", g)
		if group == nil {
			return nil, fmt.Errorf("%w: %s must be an object", ErrMalformedManifest, where)
		}

		creds, err := requiredString(group, keyCredentialsFile, where)
		if err != nil {
			return nil, err
		}
		root, err := requiredString(group, keyRootFolder, where)
		if err != nil {
			return nil, err
		}

		rawFiles, ok := group[keyFiles]
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrMissingField, where, keyFiles)
		}
		var files []rawObject
		if err = json.Unmarshal(rawFiles, &files); err != nil || files == nil {
			return nil, fmt.Errorf("%w: %s.%s must be an array of objects", ErrMalformedManifest, where, keyFiles)
		}

		targets := make([]*models.SyncTarget, len(files))
		for f, file := range files {
			ref := models.EntryRef{Group: g, File: f}
			if file == nil {
				return nil, fmt.Errorf("%w: %s must be an object", ErrMalformedManifest, ref)
			}

			path, err := requiredString(file, keyPath, ref.String())
			if err != nil {
				return nil, err
			}
			id, err := decodeID(file[keyID])
			if err != nil {
				return nil, fmt.Errorf("%w: %s.%s: %w", ErrMalformedManifest, ref, keyID, err)
			}

			targets[f] = models.NewSyncTarget(path, id, ref)
		}

		m.files[g] = files
		m.Groups[g] = models.CredentialGroup{
			CredentialsFile: creds,
			RootFolder:      root,
			Targets:         targets,
		}
	}

	return m, nil
}

func requiredString(obj rawObject, key, where string) (string, error) {
	raw, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("%w: %s.%s", ErrMissingField, where, key)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%w: %s.%s must be a string", ErrMalformedManifest, where, key)
	}
	return s, nil
}

// decodeID accepts an absent key, null or a string. An empty string is
// treated the same as no id.
func decodeID(raw json.RawMessage) (string, error) {
	if raw == nil {
		return "", nil
	}

	var id *string
	if err := json.Unmarshal(raw, &id); err != nil {
		return "", errors.New("must be a string or null")
	}
	if id == nil {
		return "", nil
	}
	return *id, nil
}

// marshal encodes v without escaping <, > and &, so paths keep their
// original spelling.
func marshal(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
