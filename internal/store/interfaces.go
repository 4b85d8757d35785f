package store

import (
	"context"

	"github.com/MKhiriev/storefront-api/internal/schema"
	"github.com/MKhiriev/storefront-api/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer models.Customer) (models.Customer, error)
	InsertMany(ctx context.Context, customers []models.Customer) ([]models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Page(ctx context.Context, number int) ([]models.Customer, error)
	FindByID(ctx context.Context, id int64) (models.Customer, error)
	Update(ctx context.Context, id int64, update models.CustomerUpdate) (models.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	InsertMany(ctx context.Context, products []models.Product) ([]models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Page(ctx context.Context, number int) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (models.Product, error)
	Update(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, search schema.SearchQuery) ([]models.Product, error)
}

type PostRepository interface {
	Create(ctx context.Context, post models.Post) (models.Post, error)
	InsertMany(ctx context.Context, posts []models.Post) ([]models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Page(ctx context.Context, number int) ([]models.Post, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]models.Post, error)
	FindByID(ctx context.Context, id int64) (models.Post, error)
	Update(ctx context.Context, id int64, update models.PostUpdate) (models.Post, error)
	Delete(ctx context.Context, id int64) error
}
