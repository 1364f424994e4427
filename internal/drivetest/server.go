// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package drivetest provides an in-process fake of the Drive v3 file
// endpoints and the OAuth token endpoint for tests.
//
// The fake keeps files in memory, stores modification times at millisecond
// precision like the real service, and counts calls per operation so tests
// can assert how many creates, updates and downloads a run performed.
package drivetest

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
)

// AccessToken is the bearer token the fake token endpoint issues and the
// file endpoints accept.
const AccessToken = "drivetest-access-token"

const timeLayout = "2006-01-02T15:04:05.000Z"

// Operation names used by [Server.Calls] and [Server.Fail].
const (
	OpToken    = "token"
	OpCreate   = "create"
	OpUpdate   = "update"
	OpMedia    = "media"
	OpMetadata = "metadata"
)

// File is one stored remote object.
type File struct {
	ID           string
	Name         string
	MimeType     string
	Parents      []string
	Content      []byte
	ModifiedTime time.Time
}

// Server is a fake Drive backend served over httptest.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	files    map[string]*File
	nextID   int
	calls    map[string]int
	failures map[string]int
	now      func() time.Time
}

// NewServer starts a fake backend. Close it when done.
func NewServer() *Server {
	s := &Server{
		files:    make(map[string]*File),
		calls:    make(map[string]int),
		failures: make(map[string]int),
		now:      time.Now,
	}

	r := chi.NewRouter()
	r.Post("/token", s.handleToken)
	r.Group(func(r chi.Router) {
		r.Use(s.requireToken)
		r.Post("/upload/drive/v3/files", s.handleCreate)
		r.Patch("/upload/drive/v3/files/{fileID}", s.handleUpdate)
		r.Get("/drive/v3/files/{fileID}", s.handleGet)
	})

	s.Server = httptest.NewServer(r)
	return s
}

// TokenURL is the fake token endpoint.
func (s *Server) TokenURL() string {
	return s.URL + "/token"
}

// Put stores f, replacing any file with the same id.
func (s *Server) Put(f File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.ModifiedTime = f.ModifiedTime.UTC().Truncate(time.Millisecond)
	s.files[f.ID] = &f
}

// Get returns a copy of the stored file.
func (s *Server) Get(id string) (File, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.files[id]
	if !ok {
		return File{}, false
	}
	return *f, true
}

// Calls returns how many requests reached the handler for op.
func (s *Server) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// Fail makes every following request for op answer with status.
func (s *Server) Fail(op string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = status
}

func (s *Server) record(w http.ResponseWriter, op string) bool {
	s.mu.Lock()
	s.calls[op]++
	status := s.failures[op]
	s.mu.Unlock()

	if status != 0 {
		http.Error(w, fmt.Sprintf(`{"error":{"code":%d,"message":"injected failure"}}`, status), status)
		return false
	}
	return true
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+AccessToken {
			http.Error(w, `{"error":{"code":401,"message":"invalid credentials"}}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if !s.record(w, OpToken) {
		return
	}
	if err := r.ParseForm(); err != nil || r.PostForm.Get("assertion") == "" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_request","error_description":"missing assertion"}`))
		return
	}

	writeJSON(w, map[string]any{
		"access_token": AccessToken,
		"expires_in":   3600,
		"token_type":   "Bearer",
	})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !s.record(w, OpCreate) {
		return
	}
	meta, content, err := readMultipart(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.nextID++
	f := &File{
		ID:       fmt.Sprintf("file-%d", s.nextID),
		Name:     meta.Name,
		MimeType: meta.MimeType,
		Parents:  meta.Parents,
		Content:  content,
	}
	f.ModifiedTime = s.modifiedTime(meta.ModifiedTime)
	s.files[f.ID] = f
	s.mu.Unlock()

	writeJSON(w, map[string]string{"id": f.ID})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if !s.record(w, OpUpdate) {
		return
	}
	meta, content, err := readMultipart(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.files[chi.URLParam(r, "fileID")]
	if !ok {
		http.Error(w, `{"error":{"code":404,"message":"File not found"}}`, http.StatusNotFound)
		return
	}
	if meta.Name != "" {
		f.Name = meta.Name
	}
	if meta.MimeType != "" {
		f.MimeType = meta.MimeType
	}
	f.Content = content
	f.ModifiedTime = s.modifiedTime(meta.ModifiedTime)

	writeJSON(w, map[string]string{"id": f.ID})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	op := OpMetadata
	if r.URL.Query().Get("alt") == "media" {
		op = OpMedia
	}
	if !s.record(w, op) {
		return
	}

	f, ok := s.Get(chi.URLParam(r, "fileID"))
	if !ok {
		http.Error(w, `{"error":{"code":404,"message":"File not found"}}`, http.StatusNotFound)
		return
	}

	if op == OpMedia {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(f.Content)
		return
	}

	writeJSON(w, map[string]string{
		"id":           f.ID,
		"modifiedTime": f.ModifiedTime.Format(timeLayout),
	})
}

// modifiedTime must be called with s.mu held.
func (s *Server) modifiedTime(v string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t.UTC().Truncate(time.Millisecond)
	}
	return s.now().UTC().Truncate(time.Millisecond)
}

type metadata struct {
	Name         string   `json:"name"`
	MimeType     string   `json:"mimeType"`
	Parents      []string `json:"parents"`
	ModifiedTime string   `json:"modifiedTime"`
}

func readMultipart(r *http.Request) (metadata, []byte, error) {
	var meta metadata

	if r.URL.Query().Get("uploadType") != "multipart" {
		return meta, nil, fmt.Errorf("unexpected uploadType %q", r.URL.Query().Get("uploadType"))
	}
	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/related") {
		return meta, nil, fmt.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
	}

	mr := multipart.NewReader(r.Body, params["boundary"])
	metaPart, err := mr.NextPart()
	if err != nil {
		return meta, nil, fmt.Errorf("read metadata part: %w", err)
	}
	if err = json.NewDecoder(metaPart).Decode(&meta); err != nil {
		return meta, nil, fmt.Errorf("decode metadata part: %w", err)
	}

	mediaPart, err := mr.NextPart()
	if err != nil {
		return meta, nil, fmt.Errorf("read media part: %w", err)
	}
	content, err := io.ReadAll(mediaPart)
	if err != nil {
		return meta, nil, fmt.Errorf("read media body: %w", err)
	}

	return meta, content, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
