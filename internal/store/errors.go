// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by repositories. Callers match against them
// with [errors.Is]; DuplicateError additionally carries the violating
// field for conflict reporting.
var (
	// ErrNotFound is returned when a queried document does not exist.
	ErrNotFound = errors.New("document was not found")

	// ErrDuplicate is the target matched by every DuplicateError.
	ErrDuplicate = errors.New("unique constraint violated")
)

// DuplicateError reports a unique-constraint violation together with the
// violating field name, so the transport layer can emit a conflict
// response that names the field instead of a generic failure.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("unique constraint violated on field %q", e.Field)
}

// Is makes errors.Is(err, ErrDuplicate) succeed for any DuplicateError.
func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// newDuplicateError builds a DuplicateError for the given violated field.
func newDuplicateError(field string) error {
	return &DuplicateError{Field: field}
}
