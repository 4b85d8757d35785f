// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/storefront-api/internal/apperr"
	"github.com/MKhiriev/storefront-api/internal/csrf"
	"github.com/MKhiriev/storefront-api/internal/logger"
	"github.com/MKhiriev/storefront-api/internal/schema"
	"github.com/MKhiriev/storefront-api/internal/service"
	"github.com/MKhiriev/storefront-api/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn   func(ctx context.Context, req models.SignupRequest) (models.User, models.Token, error)
	loginFn      func(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.SignupRequest) (models.User, models.Token, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, apperr.New(apperr.InvalidToken, "Invalid Token")
}

// ─────────────────────────────────────────────
// Mock CustomerService
// ─────────────────────────────────────────────

type mockCustomerService struct {
	createFn     func(ctx context.Context, customer models.Customer) (models.Customer, error)
	createManyFn func(ctx context.Context, customers []models.Customer) ([]models.Customer, error)
	listFn       func(ctx context.Context) ([]models.Customer, error)
	pageFn       func(ctx context.Context, number int) ([]models.Customer, error)
	findFn       func(ctx context.Context, id int64) (models.Customer, error)
	updateFn     func(ctx context.Context, id int64, update models.CustomerUpdate) (models.Customer, error)
	deleteFn     func(ctx context.Context, id int64) error
}

func (m *mockCustomerService) Create(ctx context.Context, customer models.Customer) (models.Customer, error) {
	if m.createFn != nil {
		return m.createFn(ctx, customer)
	}
	customer.ID = 1
	return customer, nil
}

func (m *mockCustomerService) CreateMany(ctx context.Context, customers []models.Customer) ([]models.Customer, error) {
	if m.createManyFn != nil {
		return m.createManyFn(ctx, customers)
	}
	return customers, nil
}

func (m *mockCustomerService) List(ctx context.Context) ([]models.Customer, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockCustomerService) Page(ctx context.Context, number int) ([]models.Customer, error) {
	if m.pageFn != nil {
		return m.pageFn(ctx, number)
	}
	return nil, nil
}

func (m *mockCustomerService) FindByID(ctx context.Context, id int64) (models.Customer, error) {
	if m.findFn != nil {
		return m.findFn(ctx, id)
	}
	return models.Customer{ID: id}, nil
}

func (m *mockCustomerService) Update(ctx context.Context, id int64, update models.CustomerUpdate) (models.Customer, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return models.Customer{ID: id}, nil
}

func (m *mockCustomerService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock ProductService
// ─────────────────────────────────────────────

type mockProductService struct {
	createFn     func(ctx context.Context, product models.Product) (models.Product, error)
	createManyFn func(ctx context.Context, products []models.Product) ([]models.Product, error)
	listFn       func(ctx context.Context) ([]models.Product, error)
	pageFn       func(ctx context.Context, number int) ([]models.Product, error)
	findFn       func(ctx context.Context, id int64) (models.Product, error)
	updateFn     func(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)
	deleteFn     func(ctx context.Context, id int64) error
	searchFn     func(ctx context.Context, req models.SearchRequest) ([]models.Product, error)
}

func (m *mockProductService) Create(ctx context.Context, product models.Product) (models.Product, error) {
	if m.createFn != nil {
		return m.createFn(ctx, product)
	}
	product.ID = 1
	return product, nil
}

func (m *mockProductService) CreateMany(ctx context.Context, products []models.Product) ([]models.Product, error) {
	if m.createManyFn != nil {
		return m.createManyFn(ctx, products)
	}
	return products, nil
}

func (m *mockProductService) List(ctx context.Context) ([]models.Product, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockProductService) Page(ctx context.Context, number int) ([]models.Product, error) {
	if m.pageFn != nil {
		return m.pageFn(ctx, number)
	}
	return nil, nil
}

func (m *mockProductService) FindByID(ctx context.Context, id int64) (models.Product, error) {
	if m.findFn != nil {
		return m.findFn(ctx, id)
	}
	return models.Product{ID: id}, nil
}

func (m *mockProductService) Update(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return models.Product{ID: id}, nil
}

func (m *mockProductService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockProductService) Search(ctx context.Context, req models.SearchRequest) ([]models.Product, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, req)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock PostService
// ─────────────────────────────────────────────

type mockPostService struct {
	createFn         func(ctx context.Context, post models.Post) (models.Post, error)
	createManyFn     func(ctx context.Context, posts []models.Post) ([]models.Post, error)
	listFn           func(ctx context.Context) ([]models.Post, error)
	pageFn           func(ctx context.Context, number int) ([]models.Post, error)
	listByCustomerFn func(ctx context.Context, customerID int64) ([]models.Post, error)
	findFn           func(ctx context.Context, id int64) (models.Post, error)
	updateFn         func(ctx context.Context, id int64, update models.PostUpdate) (models.Post, error)
	deleteFn         func(ctx context.Context, id int64) error
}

func (m *mockPostService) Create(ctx context.Context, post models.Post) (models.Post, error) {
	if m.createFn != nil {
		return m.createFn(ctx, post)
	}
	post.ID = 1
	return post, nil
}

func (m *mockPostService) CreateMany(ctx context.Context, posts []models.Post) ([]models.Post, error) {
	if m.createManyFn != nil {
		return m.createManyFn(ctx, posts)
	}
	return posts, nil
}

func (m *mockPostService) List(ctx context.Context) ([]models.Post, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockPostService) Page(ctx context.Context, number int) ([]models.Post, error) {
	if m.pageFn != nil {
		return m.pageFn(ctx, number)
	}
	return nil, nil
}

func (m *mockPostService) ListByCustomer(ctx context.Context, customerID int64) ([]models.Post, error) {
	if m.listByCustomerFn != nil {
		return m.listByCustomerFn(ctx, customerID)
	}
	return nil, nil
}

func (m *mockPostService) FindByID(ctx context.Context, id int64) (models.Post, error) {
	if m.findFn != nil {
		return m.findFn(ctx, id)
	}
	return models.Post{ID: id}, nil
}

func (m *mockPostService) Update(ctx context.Context, id int64, update models.PostUpdate) (models.Post, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return models.Post{ID: id}, nil
}

func (m *mockPostService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testCsrfHashKey = "test-csrf-hash-key"

// newTestHandler builds a Handler with a real schema validator and CSRF
// guard wired to the given service mocks.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	validator, err := schema.New()
	require.NoError(t, err)

	guard, err := csrf.NewGuard(testCsrfHashKey, false)
	require.NoError(t, err)

	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.CustomerService == nil {
		svcs.CustomerService = &mockCustomerService{}
	}
	if svcs.ProductService == nil {
		svcs.ProductService = &mockProductService{}
	}
	if svcs.PostService == nil {
		svcs.PostService = &mockPostService{}
	}

	return NewHandler(svcs, validator, guard, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeEnvelope parses the wire failure envelope from a response body.
func decodeEnvelope(t *testing.T, body []byte) apperr.Envelope {
	t.Helper()
	var envelope apperr.Envelope
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// serviceNotFound mirrors the not-found failure the service layer emits.
func serviceNotFound(resource string) error {
	return apperr.New(apperr.NotFound, "The "+resource+" with the given ID was not found.")
}

// attachCsrfPair adds a matching csrf cookie and header so a request can
// pass the double-submit guard in front of the protected routes.
func attachCsrfPair(h *Handler, req *http.Request) {
	secret := "test-secret"
	req.AddCookie(&http.Cookie{Name: csrf.CookieName, Value: secret})
	req.Header.Set(csrf.HeaderName, h.csrf.DeriveToken(secret))
}

// withURLParam attaches a chi URL parameter to a request built outside the
// router, so handlers can be exercised directly.
func withURLParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}
