package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "storefront-api"
)

func newTestService(t *testing.T, duration time.Duration) *Service {
	t.Helper()
	svc, err := NewService(testSignKey, testIssuer, duration)
	require.NoError(t, err)
	return svc
}

// TestNewService_InvalidParams verifies that the service refuses empty
// secrets, issuers, and zero lifetimes.
func TestNewService_InvalidParams(t *testing.T) {
	_, err := NewService("", testIssuer, time.Hour)
	assert.Error(t, err)

	_, err = NewService(testSignKey, "", time.Hour)
	assert.Error(t, err)

	_, err = NewService(testSignKey, testIssuer, 0)
	assert.Error(t, err)
}

// TestIssueVerify_RoundTrip verifies that a token issued for a subject
// verifies back to exactly that subject.
func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := newTestService(t, time.Hour)

	issued, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, issued.SignedString)

	verified, err := svc.Verify(issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), verified.UserID)
}

// TestIssue_InvalidUserID verifies that non-positive subjects are rejected.
func TestIssue_InvalidUserID(t *testing.T) {
	svc := newTestService(t, time.Hour)

	_, err := svc.Issue(0)
	assert.Error(t, err)
	_, err = svc.Issue(-7)
	assert.Error(t, err)
}

// TestVerify_Garbage verifies that unparseable input fails with
// ErrInvalidToken.
func TestVerify_Garbage(t *testing.T) {
	svc := newTestService(t, time.Hour)

	_, err := svc.Verify("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// TestVerify_WrongKey verifies that a token signed with a different secret
// is rejected.
func TestVerify_WrongKey(t *testing.T) {
	svc := newTestService(t, time.Hour)

	other, err := NewService("another-key", testIssuer, time.Hour)
	require.NoError(t, err)
	foreign, err := other.Issue(42)
	require.NoError(t, err)

	_, err = svc.Verify(foreign.SignedString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// TestVerify_WrongIssuer verifies that the issuer claim is enforced.
func TestVerify_WrongIssuer(t *testing.T) {
	svc := newTestService(t, time.Hour)

	other, err := NewService(testSignKey, "someone-else", time.Hour)
	require.NoError(t, err)
	foreign, err := other.Issue(42)
	require.NoError(t, err)

	_, err = svc.Verify(foreign.SignedString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// TestVerify_Expired verifies that an expired token fails with the same
// ErrInvalidToken as every other failure mode.
func TestVerify_Expired(t *testing.T) {
	svc := newTestService(t, time.Nanosecond)

	issued, err := svc.Issue(42)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = svc.Verify(issued.SignedString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
