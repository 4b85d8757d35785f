package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/signup", h.signup)
		r.Post("/api/login", h.login)
		r.Get("/api/csrf", h.csrfToken)

		r.Get("/api/customers", h.listCustomers)
		r.Get("/api/customers/page/{number}", h.customersPage)
		r.Get("/api/customers/{id}", h.customerByID)
		r.Get("/api/customers/{id}/posts", h.customerPosts)

		r.Get("/api/products", h.listProducts)
		r.Get("/api/products/page/{number}", h.productsPage)
		r.Get("/api/products/{id}", h.productByID)
		r.Post("/api/products/search", h.searchProducts)

		r.Get("/api/posts", h.listPosts)
		r.Get("/api/posts/page/{number}", h.postsPage)
		r.Get("/api/posts/{id}", h.postByID)
	})

	// state-changing routes: CSRF double-submit, then identity token
	router.Group(func(r chi.Router) {
		r.Use(h.withCSRF)
		r.Use(h.auth)

		r.Post("/api/customers", h.createCustomer)
		r.Post("/api/customers/bulk", h.createCustomers)
		r.Put("/api/customers/{id}", h.updateCustomer)
		r.Delete("/api/customers/{id}", h.deleteCustomer)

		r.Post("/api/products", h.createProduct)
		r.Post("/api/products/bulk", h.createProducts)
		r.Put("/api/products/{id}", h.updateProduct)
		r.Delete("/api/products/{id}", h.deleteProduct)

		r.Post("/api/posts", h.createPost)
		r.Post("/api/posts/bulk", h.createPosts)
		r.Put("/api/posts/{id}", h.updatePost)
		r.Delete("/api/posts/{id}", h.deletePost)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
