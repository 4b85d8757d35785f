// Package schema turns untrusted request input into typed values or
// structured validation failures.
//
// Validation is declarative: request models carry `validate` struct tags
// interpreted by go-playground/validator, extended with the domain rules
// registered in rules.go. Failures are reported as ordered
// (path, message) issues addressed by JSON field names, stable across
// repeated calls with the same input.
//
// Side-effecting normalization (phone canonicalization, search-pattern
// construction, string-to-integer coercion) lives in transform.go and runs
// only after primitive validation has succeeded. A transform never panics
// on expected domain conditions: an unparseable phone number is a
// validation failure, not a crash.
package schema

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/storefront-api/internal/apperr"
	"github.com/go-playground/validator/v10"
)

// Validator validates request models against their declarative tags.
// A single instance is safe for concurrent use and should be constructed
// once at startup.
type Validator struct {
	validate *validator.Validate
}

// Result is the outcome of SafeParse: either OK with no issues, or a
// non-empty ordered issue list. It never carries a panic path.
type Result struct {
	OK     bool
	Issues []apperr.Issue
}

// New constructs a Validator with the domain rules registered and issue
// paths reported by JSON field name.
func New() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	registerTagNames(validate)
	if err := registerDomainRules(validate); err != nil {
		return nil, fmt.Errorf("error registering validation rules: %w", err)
	}

	return &Validator{validate: validate}, nil
}

// Parse validates v and returns nil on success or a ValidationFailed
// *apperr.Error carrying the ordered issue list.
func (s *Validator) Parse(v any) error {
	result := s.SafeParse(v)
	if result.OK {
		return nil
	}
	return apperr.Validation(result.Issues)
}

// SafeParse validates v and reports the outcome without constructing an
// error value. Handlers may use either entry point; both produce the same
// issues for the same input.
func (s *Validator) SafeParse(v any) Result {
	err := s.validate.Struct(v)
	if err == nil {
		return Result{OK: true}
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Struct() was handed something it cannot inspect. Surface it as
		// a single unlocated issue rather than a panic path.
		return Result{Issues: []apperr.Issue{{Message: "input could not be validated"}}}
	}

	issues := make([]apperr.Issue, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		issues = append(issues, apperr.Issue{
			Path:    issuePath(fieldError),
			Message: issueMessage(fieldError),
		})
	}

	return Result{Issues: issues}
}

// ParseSlice validates every element of items independently and aggregates
// all failures into one ValidationFailed error, each issue path prefixed
// with the element index. No element is reported as valid while another
// silently fails: the caller gets either nil or the complete defect list.
func ParseSlice[T any](s *Validator, items []T) error {
	var issues []apperr.Issue
	for i, item := range items {
		result := s.SafeParse(item)
		if result.OK {
			continue
		}
		for _, issue := range result.Issues {
			issue.Path = fmt.Sprintf("[%d].%s", i, issue.Path)
			issues = append(issues, issue)
		}
	}

	if len(issues) > 0 {
		return apperr.Validation(issues)
	}
	return nil
}

// issuePath converts a validator namespace like "Customer.address.geo.lat"
// into the JSON path "address.geo.lat": the leading struct type name is
// dropped, nested segments already carry JSON names via registerTagNames.
func issuePath(fieldError validator.FieldError) string {
	namespace := fieldError.Namespace()
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
