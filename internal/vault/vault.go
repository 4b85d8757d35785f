// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault provides one-way password hashing and constant-time
// verification on top of bcrypt. It performs no I/O and keeps no state
// beyond the configured cost factor.
package vault

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when the configuration does
// not specify one.
const DefaultCost = 10

var (
	// ErrEmptyPassword is returned by Hash when the secret is empty.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrCorruptCredential is returned by Verify when the stored hash is
	// not a well-formed bcrypt string. This is a server fault, not a
	// mismatch: the account record is damaged.
	ErrCorruptCredential = errors.New("stored credential hash is corrupt")
)

// Vault hashes and verifies passwords with a fixed cost factor.
// The zero value is not usable; construct with New.
type Vault struct {
	cost int
}

// New constructs a Vault with the given bcrypt cost. Costs outside the
// range bcrypt accepts fall back to DefaultCost.
func New(cost int) *Vault {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Vault{cost: cost}
}

// Hash derives a one-way bcrypt hash of secret. The returned string embeds
// its own salt and cost factor. Empty input is rejected with
// ErrEmptyPassword.
func (v *Vault) Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), v.cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// Verify compares secret against a stored bcrypt hash in constant time.
//
// A mismatch returns (false, nil). A stored hash that bcrypt cannot parse
// returns ErrCorruptCredential so the caller can surface a server fault
// instead of silently denying access.
func (v *Vault) Verify(secret, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(secret))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, ErrCorruptCredential
	}
}
