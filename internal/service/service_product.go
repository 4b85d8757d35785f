package service

import (
	"context"

	"github.com/MKhiriev/storefront-api/internal/logger"
	"github.com/MKhiriev/storefront-api/internal/schema"
	"github.com/MKhiriev/storefront-api/internal/store"
	"github.com/MKhiriev/storefront-api/models"
)

type productService struct {
	productRepository store.ProductRepository
	logger            *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		logger:            logger,
	}
}

func (s *productService) Create(ctx context.Context, product models.Product) (models.Product, error) {
	created, err := s.productRepository.Create(ctx, product)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productService.Create").Msg("product creation ended with error")
		return models.Product{}, mapStoreError(err, "product")
	}
	return created, nil
}

func (s *productService) CreateMany(ctx context.Context, products []models.Product) ([]models.Product, error) {
	inserted, err := s.productRepository.InsertMany(ctx, products)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productService.CreateMany").Msg("bulk product creation ended with error")
		return nil, mapStoreError(err, "product")
	}
	return inserted, nil
}

func (s *productService) List(ctx context.Context) ([]models.Product, error) {
	return s.productRepository.List(ctx)
}

func (s *productService) Page(ctx context.Context, number int) ([]models.Product, error) {
	return s.productRepository.Page(ctx, number)
}

func (s *productService) FindByID(ctx context.Context, id int64) (models.Product, error) {
	product, err := s.productRepository.FindByID(ctx, id)
	if err != nil {
		return models.Product{}, mapStoreError(err, "product")
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	updated, err := s.productRepository.Update(ctx, id, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("product update ended with error")
		return models.Product{}, mapStoreError(err, "product")
	}
	return updated, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	if err := s.productRepository.Delete(ctx, id); err != nil {
		return mapStoreError(err, "product")
	}
	return nil
}

// Search resolves the discriminated request into a concrete query first;
// a resolution failure (empty term, non-numeric price) never reaches the
// repository.
func (s *productService) Search(ctx context.Context, req models.SearchRequest) ([]models.Product, error) {
	query, err := schema.ResolveSearch(req)
	if err != nil {
		return nil, err
	}

	found, err := s.productRepository.Search(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productService.Search").Msg("product search ended with error")
		return nil, err
	}

	return found, nil
}
