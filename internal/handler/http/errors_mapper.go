package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/storefront-api/internal/apperr"
	"github.com/MKhiriev/storefront-api/internal/logger"
	"github.com/MKhiriev/storefront-api/internal/utils"
)

var kindStatusMap = map[apperr.Kind]int{
	apperr.ValidationFailed: http.StatusBadRequest,
	apperr.AccessDenied:     http.StatusUnauthorized,
	apperr.InvalidToken:     http.StatusUnauthorized,
	apperr.CsrfFailed:       http.StatusForbidden,
	apperr.NotFound:         http.StatusNotFound,
	apperr.Conflict:         http.StatusConflict,
	apperr.Internal:         http.StatusInternalServerError,
}

func statusFromKind(kind apperr.Kind) int {
	if status, ok := kindStatusMap[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// renderError is the single terminal point every failed request passes
// through. It maps the failure kind to a status code and writes the wire
// envelope: {"status":"fail"|"error","message":...}, "fail" for client
// faults and "error" for server faults.
//
// Internal failures never leak their cause to the client; the full detail
// goes to the request log and the body carries a generic message.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	kind := apperr.KindOf(err)
	status := statusFromKind(kind)

	message := err.Error()
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		message = appErr.Message()
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed with server fault")
		message = "Something went wrong"
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, apperr.NewEnvelope(status, message), status)
}
