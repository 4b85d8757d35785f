package http

import (
	"net/http"

	"github.com/MKhiriev/storefront-api/internal/schema"
	"github.com/MKhiriev/storefront-api/internal/utils"
	"github.com/MKhiriev/storefront-api/models"
)

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := decodeJSON(r, &product); err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := h.schema.Parse(product); err != nil {
		h.renderError(w, r, err)
		return
	}

	created, err := h.services.ProductService.Create(r.Context(), product)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) createProducts(w http.ResponseWriter, r *http.Request) {
	var products []models.Product
	if err := decodeJSON(r, &products); err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := schema.ParseSlice(h.schema, products); err != nil {
		h.renderError(w, r, err)
		return
	}

	inserted, err := h.services.ProductService.CreateMany(r.Context(), products)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.BulkResponse[models.Product]{
		Success: true,
		Count:   len(inserted),
		Items:   inserted,
	}, http.StatusCreated)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.services.ProductService.List(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

func (h *Handler) productsPage(w http.ResponseWriter, r *http.Request) {
	number, err := pageParam(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	products, err := h.services.ProductService.Page(r.Context(), number)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

func (h *Handler) productByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	product, err := h.services.ProductService.FindByID(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

// searchProducts resolves the discriminated search request and returns all
// matching products. LIKE metacharacters in the term match literally.
func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := h.schema.Parse(req); err != nil {
		h.renderError(w, r, err)
		return
	}

	found, err := h.services.ProductService.Search(r.Context(), req)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	var update models.ProductUpdate
	if err := decodeJSON(r, &update); err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := h.schema.Parse(update); err != nil {
		h.renderError(w, r, err)
		return
	}

	updated, err := h.services.ProductService.Update(r.Context(), id, update)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := h.services.ProductService.Delete(r.Context(), id); err != nil {
		h.renderError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
