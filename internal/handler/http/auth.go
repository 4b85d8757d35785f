package http

import (
	"net/http"

	"github.com/MKhiriev/storefront-api/internal/logger"
	"github.com/MKhiriev/storefront-api/internal/utils"
	"github.com/MKhiriev/storefront-api/models"
)

// authTokenHeader carries the freshly issued identity token on signup.
const authTokenHeader = "x-auth-token"

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := h.schema.Parse(req); err != nil {
		h.renderError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	log.Info().Int64("id", user.ID).Msg("user registered")

	w.Header().Set(authTokenHeader, token.SignedString)
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := h.schema.Parse(req); err != nil {
		h.renderError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	secret, err := h.csrf.IssueSecret(w)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	log.Info().Int64("id", user.ID).Msg("user logged in")

	utils.WriteJSON(w, models.TokenResponse{
		Token:     token.SignedString,
		CsrfToken: h.csrf.DeriveToken(secret),
	}, http.StatusOK)
}

// csrfToken issues (or rotates) the double-submit secret cookie and returns
// the derived token the client must echo in the X-CSRF-Token header.
func (h *Handler) csrfToken(w http.ResponseWriter, r *http.Request) {
	secret, err := h.csrf.IssueSecret(w)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CsrfResponse{CsrfToken: h.csrf.DeriveToken(secret)}, http.StatusOK)
}
