// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apperr defines the tagged failure type shared by every fallible
// stage of the request pipeline.
//
// Each failure carries a Kind instead of relying on runtime type identity,
// so the terminal HTTP error normalizer can match on the tag and translate
// validation failures, domain failures, and storage-conflict failures into
// one stable wire envelope. The underlying cause is preserved for
// server-side logging but never reaches a client.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure for the terminal normalizer. The zero value is
// deliberately invalid; unknown kinds are treated as Internal.
type Kind int

const (
	// ValidationFailed marks an input shape, range, or transform violation.
	ValidationFailed Kind = iota + 1

	// AccessDenied marks a missing or malformed credential.
	AccessDenied

	// InvalidToken marks a bearer token that is present but unverifiable.
	InvalidToken

	// CsrfFailed marks a failed double-submit-cookie check.
	CsrfFailed

	// NotFound marks a lookup of a resource that does not exist.
	NotFound

	// Conflict marks a unique-constraint violation reported by storage.
	Conflict

	// Internal marks any unexpected or unclassified failure.
	Internal
)

// Issue is a single violated constraint, addressed by the JSON path of the
// offending field. Bulk validation prefixes paths with the element index.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Error is the tagged failure raised by pipeline stages. It implements the
// error interface and is constructed once at the point a failure is
// detected; intermediate layers pass it through without re-wrapping.
type Error struct {
	kind    Kind
	message string
	issues  []Issue
	cause   error
}

// New constructs an *Error of the given kind with a client-safe message.
func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Wrap constructs an *Error of the given kind keeping cause for internal
// logging. The client-visible message remains the provided one.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{kind: kind, message: message, cause: cause}
}

// Validation constructs a ValidationFailed error from an ordered issue
// list. The client-visible message joins the issues in order, so repeated
// validation of the same input yields a byte-identical message.
func Validation(issues []Issue) *Error {
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		parts = append(parts, issue.String())
	}

	return &Error{
		kind:    ValidationFailed,
		message: strings.Join(parts, "; "),
		issues:  issues,
	}
}

// Error implements the error interface. The internal representation
// includes the cause; use Message for the client-safe text.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap exposes the cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the failure tag.
func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns the client-safe text that may appear in a wire envelope.
func (e *Error) Message() string {
	return e.message
}

// Issues returns the ordered constraint violations, or nil for
// non-validation failures.
func (e *Error) Issues() []Issue {
	return e.issues
}

// KindOf extracts the Kind tag from any error. Errors that do not carry an
// *Error anywhere in their chain are classified Internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return Internal
}

// Envelope is the exact wire shape returned for every failure, independent
// of its origin: status is "fail" for caller-caused conditions and "error"
// for server-caused ones.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewEnvelope builds the wire envelope for an HTTP status code: "fail" for
// 4xx responses, "error" for everything above.
func NewEnvelope(httpStatus int, message string) Envelope {
	status := "fail"
	if httpStatus >= 500 {
		status = "error"
	}
	return Envelope{Status: status, Message: message}
}
