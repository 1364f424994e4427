// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
)

// encodeMultipartRelated builds the two-part multipart/related body of a
// Drive multipart upload: JSON metadata first, media second. It returns the
// body and the Content-Type header carrying the boundary.
func encodeMultipartRelated(meta fileMetadata, content []byte, mediaType string) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	metaPart, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"application/json; charset=UTF-8"},
	})
	if err != nil {
		return nil, "", fmt.Errorf("create metadata part: %w", err)
	}
	if err = json.NewEncoder(metaPart).Encode(meta); err != nil {
		return nil, "", fmt.Errorf("encode metadata: %w", err)
	}

	mediaPart, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Type": {mediaType},
	})
	if err != nil {
		return nil, "", fmt.Errorf("create media part: %w", err)
	}
	if _, err = mediaPart.Write(content); err != nil {
		return nil, "", fmt.Errorf("write media: %w", err)
	}

	if err = w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}

	return buf.Bytes(), "multipart/related; boundary=" + w.Boundary(), nil
}
