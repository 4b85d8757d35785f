package service

import (
	"github.com/MKhiriev/storefront-api/internal/logger"
	"github.com/MKhiriev/storefront-api/internal/store"
	"github.com/MKhiriev/storefront-api/internal/token"
	"github.com/MKhiriev/storefront-api/internal/vault"
)

type Services struct {
	AuthService     AuthService
	CustomerService CustomerService
	ProductService  ProductService
	PostService     PostService
}

func NewServices(repositories *store.Repositories, vault *vault.Vault, tokens *token.Service, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(repositories.UserRepository, vault, tokens, logger),
		CustomerService: NewCustomerService(repositories.CustomerRepository, logger),
		ProductService:  NewProductService(repositories.ProductRepository, logger),
		PostService:     NewPostService(repositories.PostRepository, logger),
	}
}
