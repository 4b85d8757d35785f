// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/storefront-api/internal/apperr"
	"github.com/MKhiriev/storefront-api/internal/logger"
	"github.com/MKhiriev/storefront-api/internal/store"
	"github.com/MKhiriev/storefront-api/internal/token"
	"github.com/MKhiriev/storefront-api/internal/vault"
	"github.com/MKhiriev/storefront-api/models"
)

// badCredentialsMessage deliberately covers both the unknown-email and the
// wrong-password outcome so the endpoint does not leak which one occurred.
const badCredentialsMessage = "Invalid Email Or Password"

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification and token
// issuance using a UserRepository for persistence, bcrypt for password
// storage and signed JWTs for session identity.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// vault hashes plaintext passwords before storage and verifies
	// presented passwords against stored hashes.
	vault *vault.Vault

	// tokens issues and verifies the signed identity tokens returned to
	// clients after signup and login.
	tokens *token.Service

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository, credential vault and token service.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, vault *vault.Vault, tokens *token.Service, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		vault:          vault,
		tokens:         tokens,
		logger:         logger,
	}
}

// Register creates a new account from an already validated signup request.
//
// The plaintext password is hashed before it reaches the repository and is
// never stored or logged. A duplicate email surfaces as a conflict naming
// the violated field.
//
// Returns the persisted user together with a freshly issued identity token.
func (a *authService) Register(ctx context.Context, req models.SignupRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	hash, err := a.vault.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, mapStoreError(err, "user")
	}

	issued, err := a.tokens.Issue(user.ID)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("token issuance failed")
		return models.User{}, models.Token{}, fmt.Errorf("token issuance failed: %w", err)
	}

	return user, issued, nil
}

// Login authenticates an existing account.
//
// Both an unknown email and a wrong password collapse to the same conflict
// response so the endpoint cannot be used to probe which emails are
// registered. A malformed stored hash is an internal failure, not a
// credential mismatch.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, models.Token{}, apperr.New(apperr.Conflict, badCredentialsMessage)
		}

		log.Err(err).Str("email", req.Email).Msg("user lookup failed")
		return models.User{}, models.Token{}, fmt.Errorf("user lookup failed: %w", err)
	}

	ok, err := a.vault.Verify(req.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("stored credential could not be verified")
		return models.User{}, models.Token{}, fmt.Errorf("stored credential could not be verified: %w", err)
	}
	if !ok {
		return models.User{}, models.Token{}, apperr.New(apperr.Conflict, badCredentialsMessage)
	}

	issued, err := a.tokens.Issue(user.ID)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("token issuance failed")
		return models.User{}, models.Token{}, fmt.Errorf("token issuance failed: %w", err)
	}

	return user, issued, nil
}

// ParseToken validates a raw token string.
//
// Every verification failure (expired, forged, malformed, wrong issuer) is
// normalised to the same invalid-token failure so callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	parsed, err := a.tokens.Verify(tokenString)
	if err != nil {
		return models.Token{}, apperr.Wrap(apperr.InvalidToken, "Invalid Token", err)
	}

	return parsed, nil
}
