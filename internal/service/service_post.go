package service

import (
	"context"

	"github.com/MKhiriev/storefront-api/internal/logger"
	"github.com/MKhiriev/storefront-api/internal/store"
	"github.com/MKhiriev/storefront-api/models"
)

type postService struct {
	postRepository store.PostRepository
	logger         *logger.Logger
}

func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

func (s *postService) Create(ctx context.Context, post models.Post) (models.Post, error) {
	created, err := s.postRepository.Create(ctx, post)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.Create").Msg("post creation ended with error")
		// a missing customer_id reference surfaces as not found
		return models.Post{}, mapStoreError(err, "customer")
	}
	return created, nil
}

func (s *postService) CreateMany(ctx context.Context, posts []models.Post) ([]models.Post, error) {
	inserted, err := s.postRepository.InsertMany(ctx, posts)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.CreateMany").Msg("bulk post creation ended with error")
		return nil, mapStoreError(err, "customer")
	}
	return inserted, nil
}

func (s *postService) List(ctx context.Context) ([]models.Post, error) {
	return s.postRepository.List(ctx)
}

func (s *postService) Page(ctx context.Context, number int) ([]models.Post, error) {
	return s.postRepository.Page(ctx, number)
}

// ListByCustomer lists one customer's posts. An unknown customer has no
// posts, so the result is simply empty.
func (s *postService) ListByCustomer(ctx context.Context, customerID int64) ([]models.Post, error) {
	return s.postRepository.ListByCustomer(ctx, customerID)
}

func (s *postService) FindByID(ctx context.Context, id int64) (models.Post, error) {
	post, err := s.postRepository.FindByID(ctx, id)
	if err != nil {
		return models.Post{}, mapStoreError(err, "post")
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, id int64, update models.PostUpdate) (models.Post, error) {
	updated, err := s.postRepository.Update(ctx, id, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("post update ended with error")
		return models.Post{}, mapStoreError(err, "post")
	}
	return updated, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	if err := s.postRepository.Delete(ctx, id); err != nil {
		return mapStoreError(err, "post")
	}
	return nil
}
