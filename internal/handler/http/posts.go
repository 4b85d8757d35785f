package http

import (
	"net/http"

	"github.com/MKhiriev/storefront-api/internal/schema"
	"github.com/MKhiriev/storefront-api/internal/utils"
	"github.com/MKhiriev/storefront-api/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := decodeJSON(r, &post); err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := h.schema.Parse(post); err != nil {
		h.renderError(w, r, err)
		return
	}

	created, err := h.services.PostService.Create(r.Context(), post)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) createPosts(w http.ResponseWriter, r *http.Request) {
	var posts []models.Post
	if err := decodeJSON(r, &posts); err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := schema.ParseSlice(h.schema, posts); err != nil {
		h.renderError(w, r, err)
		return
	}

	inserted, err := h.services.PostService.CreateMany(r.Context(), posts)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.BulkResponse[models.Post]{
		Success: true,
		Count:   len(inserted),
		Items:   inserted,
	}, http.StatusCreated)
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.List(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) postsPage(w http.ResponseWriter, r *http.Request) {
	number, err := pageParam(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	posts, err := h.services.PostService.Page(r.Context(), number)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

// customerPosts lists the posts authored by one customer.
func (h *Handler) customerPosts(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	posts, err := h.services.PostService.ListByCustomer(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) postByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	post, err := h.services.PostService.FindByID(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	var update models.PostUpdate
	if err := decodeJSON(r, &update); err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := h.schema.Parse(update); err != nil {
		h.renderError(w, r, err)
		return
	}

	updated, err := h.services.PostService.Update(r.Context(), id, update)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if err := h.services.PostService.Delete(r.Context(), id); err != nil {
		h.renderError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
