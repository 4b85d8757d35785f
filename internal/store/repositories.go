package store

import "github.com/MKhiriev/storefront-api/internal/logger"

type Repositories struct {
	UserRepository     UserRepository
	CustomerRepository CustomerRepository
	ProductRepository  ProductRepository
	PostRepository     PostRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, logger),
		CustomerRepository: NewCustomerRepository(db, logger),
		ProductRepository:  NewProductRepository(db, logger),
		PostRepository:     NewPostRepository(db, logger),
	}
}
