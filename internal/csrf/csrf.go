// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package csrf implements a double-submit-cookie defense for state-changing
// requests reachable by a browser session.
//
// The server stores a random per-session secret in an http-only cookie and
// hands the client a token derived from that secret with a keyed
// HMAC-SHA256. A state-changing request must echo the derived token back;
// the guard recomputes the derivation from the cookie secret and compares
// in constant time. A token presented without the matching cookie secret
// can never verify, because the derivation key never leaves the server.
package csrf

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"net/http"
)

const (
	// CookieName is the http-only cookie holding the per-session secret.
	CookieName = "_csrf"

	// HeaderName is the request header the client echoes the derived
	// token back in.
	HeaderName = "X-CSRF-Token"

	secretLength = 32
)

// ErrNoSecret is returned by SecretFromRequest when the session cookie is
// absent.
var ErrNoSecret = errors.New("csrf secret cookie is missing")

// Guard derives and verifies CSRF tokens. The derivation key and the
// secure-cookie flag are fixed at construction and read-only afterwards.
type Guard struct {
	hashKey       []byte
	secureCookies bool
}

// NewGuard constructs a Guard with the given derivation key. secureCookies
// should be true in production deployments so the secret cookie is only
// sent over TLS.
func NewGuard(hashKey string, secureCookies bool) (*Guard, error) {
	if hashKey == "" {
		return nil, errors.New("csrf hash key must not be empty")
	}

	return &Guard{
		hashKey:       []byte(hashKey),
		secureCookies: secureCookies,
	}, nil
}

// IssueSecret generates a fresh random per-session secret, sets it as an
// http-only cookie on w, and returns the secret so the caller can derive
// the paired token within the same response.
func (g *Guard) IssueSecret(w http.ResponseWriter) (string, error) {
	raw := make([]byte, secretLength)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}

	secret := base64.RawURLEncoding.EncodeToString(raw)
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    secret,
		Path:     "/",
		HttpOnly: true,
		Secure:   g.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	return secret, nil
}

// DeriveToken computes the client-visible token for the given secret: a
// hex-encoded HMAC-SHA256 of the secret under the guard's derivation key.
// The value is safe to hand to the client; reproducing it requires the
// paired secret.
func (g *Guard) DeriveToken(secret string) string {
	hasher := hmac.New(sha256.New, g.hashKey)
	hasher.Write([]byte(secret))
	return hex.EncodeToString(hasher.Sum(nil))
}

// Verify recomputes the derived token from the cookie-held secret and
// compares it to what the client presented, in constant time.
func (g *Guard) Verify(secret, presented string) bool {
	if secret == "" || presented == "" {
		return false
	}
	return hmac.Equal([]byte(g.DeriveToken(secret)), []byte(presented))
}

// SecretFromRequest extracts the per-session secret from the request's
// cookie jar.
func SecretFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoSecret
	}
	return cookie.Value, nil
}
