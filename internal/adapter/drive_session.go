// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/drivesync/internal/app"
	"github.com/MKhiriev/drivesync/internal/auth"
	"github.com/MKhiriev/drivesync/internal/config"
	"github.com/MKhiriev/drivesync/internal/logger"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"
)

const (
	uploadFilesPath = "/upload/drive/v3/files"
	uploadFilePath  = "/upload/drive/v3/files/{fileId}"
	filePath        = "/drive/v3/files/{fileId}"

	// driveTimeLayout is RFC 3339 at the millisecond precision the Drive
	// API stores.
	driveTimeLayout = "2006-01-02T15:04:05.000Z"
)

type driveSession struct {
	client     *resty.Client
	tokens     auth.TokenSource
	rootFolder string
	fs         afero.Fs
	log        *logger.Logger
}

type fileMetadata struct {
	Name         string   `json:"name,omitempty"`
	Parents      []string `json:"parents,omitempty"`
	MimeType     string   `json:"mimeType,omitempty"`
	ModifiedTime string   `json:"modifiedTime,omitempty"`
}

type fileResource struct {
	ID           string `json:"id"`
	ModifiedTime string `json:"modifiedTime"`
}

// localFile is a local file read in full for upload.
type localFile struct {
	name     string
	content  []byte
	mimeType string
	modTime  time.Time
}

// NewDriveSession returns a [RemoteSession] talking to the Drive v3 API at
// cfg.BaseURL, authorized by tokens, creating new files under rootFolder
// and reading local files through fsys.
func NewDriveSession(cfg config.Drive, tokens auth.TokenSource, rootFolder string, fsys afero.Fs, log *logger.Logger) RemoteSession {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &driveSession{
		client:     cli,
		tokens:     tokens,
		rootFolder: rootFolder,
		fs:         fsys,
		log:        log.WithField("root_folder", rootFolder),
	}
}

func (d *driveSession) Create(ctx context.Context, localPath, targetFolder string) (string, error) {
	file, err := d.readLocal(localPath)
	if err != nil {
		return "", err
	}

	parent := targetFolder
	if parent == "" {
		parent = d.rootFolder
	}

	meta := fileMetadata{
		Name:         file.name,
		Parents:      []string{parent},
		MimeType:     baseMediaType(file.mimeType),
		ModifiedTime: file.modTime.UTC().Format(driveTimeLayout),
	}

	req, err := d.multipartRequest(ctx, meta, file)
	if err != nil {
		return "", fmt.Errorf("%w: create %s: %w", app.ErrRemoteWrite, localPath, err)
	}

	resp, err := req.
		SetQueryParams(map[string]string{"uploadType": "multipart", "fields": "id"}).
		Post(uploadFilesPath)
	if err != nil {
		return "", fmt.Errorf("%w: create request %s: %w", app.ErrRemoteWrite, localPath, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("%w: create %s: %w", app.ErrRemoteWrite, localPath, err)
	}

	var created fileResource
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return "", fmt.Errorf("%w: decode create response: %w", app.ErrRemoteWrite, err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("%w: create %s: %w", app.ErrRemoteWrite, localPath, ErrEmptyRemoteID)
	}

	d.log.Debug().Str("path", localPath).Str("remote_id", created.ID).Str("parent", parent).Msg("remote file created")
	return created.ID, nil
}

func (d *driveSession) Update(ctx context.Context, remoteID, localPath string) error {
	file, err := d.readLocal(localPath)
	if err != nil {
		return err
	}

	meta := fileMetadata{
		Name:         file.name,
		MimeType:     baseMediaType(file.mimeType),
		ModifiedTime: file.modTime.UTC().Format(driveTimeLayout),
	}

	req, err := d.multipartRequest(ctx, meta, file)
	if err != nil {
		return fmt.Errorf("%w: update %s: %w", app.ErrRemoteWrite, remoteID, err)
	}

	resp, err := req.
		SetPathParam("fileId", remoteID).
		SetQueryParams(map[string]string{"uploadType": "multipart", "fields": "id"}).
		Patch(uploadFilePath)
	if err != nil {
		return fmt.Errorf("%w: update request %s: %w", app.ErrRemoteWrite, remoteID, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: update %s: %w", app.ErrRemoteWrite, remoteID, err)
	}

	d.log.Debug().Str("path", localPath).Str("remote_id", remoteID).Msg("remote file updated")
	return nil
}

func (d *driveSession) FetchBytes(ctx context.Context, remoteID string) ([]byte, error) {
	req, err := d.authedRequest(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %w", app.ErrRemoteRead, remoteID, err)
	}

	resp, err := req.
		SetPathParam("fileId", remoteID).
		SetQueryParam("alt", "media").
		Get(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch request %s: %w", app.ErrRemoteRead, remoteID, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %w", app.ErrRemoteRead, remoteID, err)
	}

	return resp.Body(), nil
}

func (d *driveSession) FetchModifiedTime(ctx context.Context, remoteID string) (time.Time, error) {
	req, err := d.authedRequest(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: metadata %s: %w", app.ErrRemoteRead, remoteID, err)
	}

	resp, err := req.
		SetPathParam("fileId", remoteID).
		SetQueryParam("fields", "modifiedTime").
		Get(filePath)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: metadata request %s: %w", app.ErrRemoteRead, remoteID, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return time.Time{}, fmt.Errorf("%w: metadata %s: %w", app.ErrRemoteRead, remoteID, err)
	}

	var res fileResource
	if err = json.Unmarshal(resp.Body(), &res); err != nil {
		return time.Time{}, fmt.Errorf("%w: decode metadata %s: %w", app.ErrRemoteRead, remoteID, err)
	}

	modTime, err := time.Parse(time.RFC3339Nano, res.ModifiedTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: parse modifiedTime %q: %w", app.ErrRemoteRead, res.ModifiedTime, err)
	}

	return modTime.UTC(), nil
}

func (d *driveSession) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := d.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("get access token: %w", err)
	}

	return d.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

func (d *driveSession) multipartRequest(ctx context.Context, meta fileMetadata, file localFile) (*resty.Request, error) {
	body, contentType, err := encodeMultipartRelated(meta, file.content, file.mimeType)
	if err != nil {
		return nil, err
	}

	req, err := d.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	return req.
		SetHeader("Content-Type", contentType).
		SetBody(body), nil
}

func (d *driveSession) readLocal(localPath string) (localFile, error) {
	info, err := d.fs.Stat(localPath)
	if err != nil {
		return localFile{}, fmt.Errorf("%w: stat %s: %w", app.ErrLocalIO, localPath, err)
	}
	if info.IsDir() {
		return localFile{}, fmt.Errorf("%w: %s is a directory", app.ErrLocalIO, localPath)
	}

	content, err := afero.ReadFile(d.fs, localPath)
	if err != nil {
		return localFile{}, fmt.Errorf("%w: read %s: %w", app.ErrLocalIO, localPath, err)
	}

	return localFile{
		name:     filepath.Base(localPath),
		content:  content,
		mimeType: mimetype.Detect(content).String(),
		modTime:  info.ModTime(),
	}, nil
}

// baseMediaType drops parameters such as charset from a detected type.
func baseMediaType(mediaType string) string {
	base, _, _ := strings.Cut(mediaType, ";")
	return strings.TrimSpace(base)
}
