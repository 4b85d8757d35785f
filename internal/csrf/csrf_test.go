// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package csrf

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuard(t *testing.T) *Guard {
	t.Helper()
	g, err := NewGuard("test-derivation-key", false)
	require.NoError(t, err)
	return g
}

// TestNewGuard_EmptyKey verifies that the guard refuses an empty
// derivation key.
func TestNewGuard_EmptyKey(t *testing.T) {
	_, err := NewGuard("", false)
	assert.Error(t, err)
}

// TestDeriveVerify_Pairing verifies that a derived token verifies against
// its own secret and fails against any other secret.
func TestDeriveVerify_Pairing(t *testing.T) {
	g := newTestGuard(t)

	rec := httptest.NewRecorder()
	secret, err := g.IssueSecret(rec)
	require.NoError(t, err)

	otherRec := httptest.NewRecorder()
	otherSecret, err := g.IssueSecret(otherRec)
	require.NoError(t, err)
	require.NotEqual(t, secret, otherSecret)

	token := g.DeriveToken(secret)
	assert.True(t, g.Verify(secret, token))
	assert.False(t, g.Verify(otherSecret, token))
	assert.False(t, g.Verify(secret, g.DeriveToken(otherSecret)))
}

// TestVerify_EmptyInputs verifies that missing secrets or tokens never
// verify.
func TestVerify_EmptyInputs(t *testing.T) {
	g := newTestGuard(t)

	assert.False(t, g.Verify("", g.DeriveToken("secret")))
	assert.False(t, g.Verify("secret", ""))
}

// TestVerify_DifferentKey verifies that a token derived under a different
// key fails even with the right secret.
func TestVerify_DifferentKey(t *testing.T) {
	g := newTestGuard(t)
	foreign, err := NewGuard("another-key", false)
	require.NoError(t, err)

	assert.False(t, g.Verify("secret", foreign.DeriveToken("secret")))
}

// TestIssueSecret_CookieAttributes verifies the http-only cookie contract
// and the secure flag wiring.
func TestIssueSecret_CookieAttributes(t *testing.T) {
	secure, err := NewGuard("key", true)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	secret, err := secure.IssueSecret(rec)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]

	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, secret, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

// TestSecretFromRequest verifies cookie extraction and the missing-cookie
// failure.
func TestSecretFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	_, err := SecretFromRequest(req)
	assert.ErrorIs(t, err, ErrNoSecret)

	req.AddCookie(&http.Cookie{Name: CookieName, Value: "the-secret"})
	secret, err := SecretFromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "the-secret", secret)
}
