// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package drivetest

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"testing"
)

// ServiceAccountKey generates a fresh RSA key and returns it with the JSON
// body of a matching service-account key file whose token_uri is tokenURL.
func ServiceAccountKey(t testing.TB, email, tokenURL string) (*rsa.PrivateKey, []byte) {
	t.Helper()

	pk, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}

	der, err := x509.MarshalPKCS8PrivateKey(pk)
	if err != nil {
		t.Fatalf("marshal rsa key: %v", err)
	}
	pemBlock := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})

	body, err := json.Marshal(map[string]string{
		"type":           "service_account",
		"project_id":     "drivesync-test",
		"private_key_id": "test-key-id",
		"private_key":    string(pemBlock),
		"client_email":   email,
		"token_uri":      tokenURL,
	})
	if err != nil {
		t.Fatalf("marshal key file: %v", err)
	}

	return pk, body
}
