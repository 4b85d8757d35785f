package schema

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/storefront-api/internal/apperr"
	"github.com/nyaruka/phonenumbers"
)

// DefaultPhoneRegion is the region used to resolve phone numbers written
// without an international prefix.
const DefaultPhoneRegion = "US"

// NormalizePhone canonicalizes a phone number to E.164. Numbers without an
// international prefix are interpreted in DefaultPhoneRegion. The
// transform is idempotent: an already-canonical E.164 number is returned
// unchanged.
//
// An unparseable or impossible number is an expected domain condition and
// comes back as a ValidationFailed error on the "phone" path, never as a
// panic from the parsing library.
func NormalizePhone(raw string) (string, error) {
	parsed, err := phonenumbers.Parse(raw, DefaultPhoneRegion)
	if err != nil {
		return "", apperr.Validation([]apperr.Issue{
			{Path: "phone", Message: "must be a valid phone number"},
		})
	}

	if !phonenumbers.IsPossibleNumber(parsed) {
		return "", apperr.Validation([]apperr.Issue{
			{Path: "phone", Message: "must be a possible phone number"},
		})
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// SearchPattern builds a case-insensitive substring-match pattern from a
// free-text term for use with SQL ILIKE. The term is escaped so that LIKE
// metacharacters ('%', '_', '\') in the term match themselves literally:
// search semantics are exactly "contains, case-insensitive", nothing more.
func SearchPattern(term string) string {
	escaped := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	).Replace(term)

	return "%" + escaped + "%"
}

// ParseInt coerces a decimal string to an int. Non-numeric input fails
// with a ValidationFailed error instead of producing a zero value the
// caller cannot distinguish from real data.
func ParseInt(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, apperr.Validation([]apperr.Issue{
			{Message: "expected a number, got " + strconv.Quote(raw)},
		})
	}
	return value, nil
}

// ParseFloat coerces a decimal string to a float64 with the same failure
// contract as ParseInt.
func ParseFloat(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, apperr.Validation([]apperr.Issue{
			{Message: "expected a number, got " + strconv.Quote(raw)},
		})
	}
	return value, nil
}
