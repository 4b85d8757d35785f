package service

import (
	"context"

	"github.com/MKhiriev/storefront-api/models"
)

type AuthService interface {
	Register(ctx context.Context, req models.SignupRequest) (models.User, models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type CustomerService interface {
	Create(ctx context.Context, customer models.Customer) (models.Customer, error)
	CreateMany(ctx context.Context, customers []models.Customer) ([]models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Page(ctx context.Context, number int) ([]models.Customer, error)
	FindByID(ctx context.Context, id int64) (models.Customer, error)
	Update(ctx context.Context, id int64, update models.CustomerUpdate) (models.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type ProductService interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	CreateMany(ctx context.Context, products []models.Product) ([]models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Page(ctx context.Context, number int) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (models.Product, error)
	Update(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, req models.SearchRequest) ([]models.Product, error)
}

type PostService interface {
	Create(ctx context.Context, post models.Post) (models.Post, error)
	CreateMany(ctx context.Context, posts []models.Post) ([]models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Page(ctx context.Context, number int) ([]models.Post, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]models.Post, error)
	FindByID(ctx context.Context, id int64) (models.Post, error)
	Update(ctx context.Context, id int64, update models.PostUpdate) (models.Post, error)
	Delete(ctx context.Context, id int64) error
}
