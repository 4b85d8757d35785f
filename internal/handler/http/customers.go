package http

import (
	"net/http"

	"github.com/MKhiriev/storefront-api/internal/schema"
	"github.com/MKhiriev/storefront-api/internal/utils"
	"github.com/MKhiriev/storefront-api/models"
)

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var customer models.Customer
	if err := decodeJSON(r, &customer); err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := h.schema.Parse(customer); err != nil {
		h.renderError(w, r, err)
		return
	}

	created, err := h.services.CustomerService.Create(r.Context(), customer)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// createCustomers persists a whole batch at once. Validation failures of
// any element abort the entire request before a single write happens.
func (h *Handler) createCustomers(w http.ResponseWriter, r *http.Request) {
	var customers []models.Customer
	if err := decodeJSON(r, &customers); err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := schema.ParseSlice(h.schema, customers); err != nil {
		h.renderError(w, r, err)
		return
	}

	inserted, err := h.services.CustomerService.CreateMany(r.Context(), customers)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.BulkResponse[models.Customer]{
		Success: true,
		Count:   len(inserted),
		Items:   inserted,
	}, http.StatusCreated)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.services.CustomerService.List(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, customers, http.StatusOK)
}

func (h *Handler) customersPage(w http.ResponseWriter, r *http.Request) {
	number, err := pageParam(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	customers, err := h.services.CustomerService.Page(r.Context(), number)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, customers, http.StatusOK)
}

func (h *Handler) customerByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	customer, err := h.services.CustomerService.FindByID(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, customer, http.StatusOK)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	var update models.CustomerUpdate
	if err := decodeJSON(r, &update); err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := h.schema.Parse(update); err != nil {
		h.renderError(w, r, err)
		return
	}

	updated, err := h.services.CustomerService.Update(r.Context(), id, update)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := h.services.CustomerService.Delete(r.Context(), id); err != nil {
		h.renderError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
