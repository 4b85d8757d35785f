package http

import (
	"net/http"

	"github.com/MKhiriev/storefront-api/internal/apperr"
	"github.com/MKhiriev/storefront-api/internal/csrf"
	"github.com/MKhiriev/storefront-api/internal/logger"
)

// withCSRF enforces the double-submit check on state-changing requests.
//
// Safe methods (GET, HEAD, OPTIONS) pass through untouched. Every other
// request must carry the secret cookie issued by GET /api/csrf together
// with the derived token in the X-CSRF-Token header; a missing cookie,
// a missing header or a token that does not match the secret is rejected
// with HTTP 403 before the downstream handler runs.
func (h *Handler) withCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		secret, err := csrf.SecretFromRequest(r)
		if err != nil {
			log.Warn().Err(err).Msg("csrf secret cookie missing")
			h.renderError(w, r, apperr.Wrap(apperr.CsrfFailed, "invalid csrf token", err))
			return
		}

		presented := r.Header.Get(csrf.HeaderName)
		if !h.csrf.Verify(secret, presented) {
			log.Warn().Msg("csrf token mismatch")
			h.renderError(w, r, apperr.New(apperr.CsrfFailed, "invalid csrf token"))
			return
		}

		next.ServeHTTP(w, r)
	})
}
