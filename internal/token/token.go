// Package token implements the identity token service: issuing and
// verifying the signed, self-contained bearer credential that represents an
// authenticated subject. Tokens are HMAC-SHA256 JWTs carrying the standard
// iss/sub/iat/exp claim set; verification is stateless and deterministic
// given the token and the signing secret.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/storefront-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single failure returned by Verify. Expired,
// forged, malformed, and wrong-issuer tokens are deliberately
// indistinguishable to callers so the client-visible message cannot be
// used as an oracle; the wrapped cause remains available for server logs.
var ErrInvalidToken = errors.New("invalid token")

// Service issues and verifies identity tokens. All fields are fixed at
// construction from configuration and read-only afterwards, so a single
// Service is safe for concurrent use.
type Service struct {
	signKey  string
	issuer   string
	duration time.Duration
}

// NewService constructs a Service from the given signing secret, issuer
// label, and token lifetime. An error is returned if any parameter is
// empty or zero: the service refuses to run with a missing secret.
func NewService(signKey, issuer string, duration time.Duration) (*Service, error) {
	if signKey == "" || issuer == "" || duration == 0 {
		return nil, errors.New("invalid params for token service")
	}

	return &Service{
		signKey:  signKey,
		issuer:   issuer,
		duration: duration,
	}, nil
}

// Issue creates a signed HMAC-SHA256 JWT for the given user.
//
// The token includes the following standard claims:
//   - Issuer    (iss): the configured issuer label
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus the configured duration
//
// Returns an error if userID is not positive or signing fails.
func (s *Service) Issue(userID int64) (models.Token, error) {
	if userID <= 0 {
		return models.Token{}, errors.New("invalid user id for token issue")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// Verify validates the given JWT string and extracts the subject.
//
// Validation includes:
//   - Signature verification against the configured sign key
//   - Issuer (iss) claim check
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// Every failure is normalised to ErrInvalidToken with the low-level cause
// wrapped for internal logging only.
func (s *Service) Verify(tokenString string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.signKey), nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userIDStr, err := token.Claims.GetSubject()
	if err != nil || userIDStr == "" {
		return models.Token{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: malformed subject", ErrInvalidToken)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}
