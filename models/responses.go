package models

// TokenResponse is the success payload of signup and login. CsrfToken is
// only populated on login, where the CSRF cookie pair is established.
type TokenResponse struct {
	Token     string `json:"token"`
	CsrfToken string `json:"csrfToken,omitempty"`
}

// CsrfResponse is the payload of the CSRF token endpoint.
type CsrfResponse struct {
	CsrfToken string `json:"csrfToken"`
}

// BulkResponse reports the outcome of a bulk insert. Count is the number
// of documents written; Items carries the persisted documents with their
// server-assigned identifiers.
type BulkResponse[T any] struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Items   []T  `json:"items"`
}
