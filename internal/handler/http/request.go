package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/storefront-api/internal/apperr"
	"github.com/go-chi/chi/v5"
)

// decodeJSON reads the request body into v. A malformed body is a
// validation failure, not a server fault.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Wrap(apperr.ValidationFailed, "Invalid JSON was passed", err)
	}
	return nil
}

// idParam extracts the {id} URL parameter as an int64.
func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.Validation([]apperr.Issue{
			{Path: "id", Message: "expected a number, got " + strconv.Quote(raw)},
		})
	}
	return id, nil
}

// pageParam extracts the {number} URL parameter as an int.
func pageParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "number")
	number, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Validation([]apperr.Issue{
			{Path: "number", Message: "expected a number, got " + strconv.Quote(raw)},
		})
	}
	return number, nil
}
