package schema

import (
	"strings"

	"github.com/MKhiriev/storefront-api/internal/apperr"
	"github.com/MKhiriev/storefront-api/models"
)

// Text fields a search may target. The any-field branch matches all three.
var searchTextFields = []string{"title", "description", "category"}

// SearchQuery is the resolved form of a models.SearchRequest: exactly one
// of the two branches is populated.
//
// For text branches, Fields lists the columns to match and Pattern holds
// the escaped case-insensitive contains pattern. For numeric branches,
// Field names the column and Value holds the coerced number.
type SearchQuery struct {
	Fields  []string
	Pattern string

	Field   string
	Value   float64
	Numeric bool
}

// ResolveSearch validates a search request and selects the branch its
// "type" tag discriminates to:
//
//   - "title", "description", "category" — contains match on that field;
//   - "price" — exact match on price, term coerced to a number;
//   - "rating" — exact match on the rating rate, term coerced to a number;
//   - absent or unknown — contains match across title, description and
//     category (the documented any-field default, never a failure).
func ResolveSearch(req models.SearchRequest) (SearchQuery, error) {
	term := strings.TrimSpace(req.Term)
	if term == "" {
		return SearchQuery{}, apperr.Validation([]apperr.Issue{
			{Path: "term", Message: "search term cannot be empty"},
		})
	}

	switch req.Type {
	case "price":
		value, err := ParseFloat(term)
		if err != nil {
			return SearchQuery{}, err
		}
		return SearchQuery{Field: "price", Value: value, Numeric: true}, nil

	case "rating":
		value, err := ParseFloat(term)
		if err != nil {
			return SearchQuery{}, err
		}
		return SearchQuery{Field: "rating_rate", Value: value, Numeric: true}, nil
	}

	pattern := SearchPattern(term)
	for _, field := range searchTextFields {
		if req.Type == field {
			return SearchQuery{Fields: []string{field}, Pattern: pattern}, nil
		}
	}

	// Unknown or absent type: deterministic any-field branch.
	return SearchQuery{Fields: searchTextFields, Pattern: pattern}, nil
}
