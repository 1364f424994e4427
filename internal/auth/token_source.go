// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

//go:generate mockgen -source=token_source.go -destination=../mock/token_source_mock.go -package=mock

const (
	// DriveFileScope grants create/read/modify access to files the
	// application itself created, and nothing else.
	DriveFileScope = "https://www.googleapis.com/auth/drive.file"

	// DefaultTokenURL is used when neither the key nor the config names one.
	DefaultTokenURL = "https://oauth2.googleapis.com/token"

	jwtBearerGrant = "urn:ietf:params:oauth:grant-type:jwt-bearer"

	assertionLifetime = time.Hour
	// expiryDelta makes a cached token count as expired slightly early so it
	// never lapses mid-request.
	expiryDelta = time.Minute
)

// TokenSource hands out bearer tokens for remote calls.
type TokenSource interface {
	// Token returns a valid access token, fetching a new one when the cached
	// token is missing or about to expire.
	Token(ctx context.Context) (string, error)
}

// TokenSourceConfig configures [NewServiceAccountTokenSource].
type TokenSourceConfig struct {
	// TokenURL overrides the key's token_uri when non-empty.
	TokenURL string
	// Timeout bounds a single token request. Zero leaves resty's default.
	Timeout time.Duration
	// Clock drives assertion timestamps and token expiry. Nil means the
	// real clock.
	Clock clockwork.Clock
}

type serviceAccountTokenSource struct {
	client   *resty.Client
	clock    clockwork.Clock
	signer   *rsa.PrivateKey
	keyID    string
	email    string
	tokenURL string

	mu     sync.Mutex
	token  string
	expiry time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// NewServiceAccountTokenSource builds a [TokenSource] for key. The private
// key is parsed up front so a broken key file fails before any remote call.
func NewServiceAccountTokenSource(key ServiceAccountKey, cfg TokenSourceConfig) (TokenSource, error) {
	signer, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(key.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("%w: parse private key: %w", ErrInvalidCredentials, err)
	}

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = key.TokenURI
	}
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}

	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	cli := resty.New()
	if cfg.Timeout > 0 {
		cli.SetTimeout(cfg.Timeout)
	}

	return &serviceAccountTokenSource{
		client:   cli,
		clock:    clock,
		signer:   signer,
		keyID:    key.PrivateKeyID,
		email:    key.ClientEmail,
		tokenURL: tokenURL,
	}, nil
}

func (s *serviceAccountTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.clock.Now().Before(s.expiry.Add(-expiryDelta)) {
		return s.token, nil
	}

	assertion, err := s.assertion()
	if err != nil {
		return "", fmt.Errorf("sign assertion: %w", err)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type": jwtBearerGrant,
			"assertion":  assertion,
		}).
		Post(s.tokenURL)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	if err = mapTokenError(resp); err != nil {
		return "", err
	}

	var tr tokenResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrTokenRejected)
	}

	s.token = tr.AccessToken
	s.expiry = s.clock.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	return s.token, nil
}

func (s *serviceAccountTokenSource) assertion() (string, error) {
	now := s.clock.Now()
	claims := jwt.MapClaims{
		"iss":   s.email,
		"scope": DriveFileScope,
		"aud":   s.tokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if s.keyID != "" {
		token.Header["kid"] = s.keyID
	}

	return token.SignedString(s.signer)
}

func mapTokenError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var te tokenErrorResponse
	if err := json.Unmarshal(resp.Body(), &te); err == nil && te.Error != "" {
		return fmt.Errorf("%w: %s: %s", ErrTokenRejected, te.Error, te.ErrorDescription)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	if resp.StatusCode() < http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrTokenRejected, resp.StatusCode(), body)
	}
	return fmt.Errorf("token endpoint: http %d: %s", resp.StatusCode(), body)
}
