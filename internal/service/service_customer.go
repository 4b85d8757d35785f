package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/storefront-api/internal/apperr"
	"github.com/MKhiriev/storefront-api/internal/logger"
	"github.com/MKhiriev/storefront-api/internal/schema"
	"github.com/MKhiriev/storefront-api/internal/store"
	"github.com/MKhiriev/storefront-api/models"
)

// customerService is the concrete implementation of CustomerService.
// Besides thin persistence calls it owns the phone canonicalization step:
// every phone number that reaches the repository is already in E.164 form.
type customerService struct {
	customerRepository store.CustomerRepository
	logger             *logger.Logger
}

func NewCustomerService(customerRepository store.CustomerRepository, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		logger:             logger,
	}
}

func (s *customerService) Create(ctx context.Context, customer models.Customer) (models.Customer, error) {
	phone, err := schema.NormalizePhone(customer.Phone)
	if err != nil {
		return models.Customer{}, err
	}
	customer.Phone = phone

	created, err := s.customerRepository.Create(ctx, customer)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*customerService.Create").Msg("customer creation ended with error")
		return models.Customer{}, mapStoreError(err, "customer")
	}

	return created, nil
}

// CreateMany normalizes every phone number first and aggregates all
// normalization failures, indexed by element, before any write happens.
// The batch is persisted in one transaction.
func (s *customerService) CreateMany(ctx context.Context, customers []models.Customer) ([]models.Customer, error) {
	issues := make([]apperr.Issue, 0)
	for i := range customers {
		phone, err := schema.NormalizePhone(customers[i].Phone)
		if err != nil {
			var appErr *apperr.Error
			if errors.As(err, &appErr) {
				for _, issue := range appErr.Issues() {
					issues = append(issues, apperr.Issue{
						Path:    fmt.Sprintf("[%d].%s", i, issue.Path),
						Message: issue.Message,
					})
				}
				continue
			}
			return nil, err
		}
		customers[i].Phone = phone
	}
	if len(issues) > 0 {
		return nil, apperr.Validation(issues)
	}

	inserted, err := s.customerRepository.InsertMany(ctx, customers)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*customerService.CreateMany").Msg("bulk customer creation ended with error")
		return nil, mapStoreError(err, "customer")
	}

	return inserted, nil
}

func (s *customerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.customerRepository.List(ctx)
}

func (s *customerService) Page(ctx context.Context, number int) ([]models.Customer, error) {
	return s.customerRepository.Page(ctx, number)
}

func (s *customerService) FindByID(ctx context.Context, id int64) (models.Customer, error) {
	customer, err := s.customerRepository.FindByID(ctx, id)
	if err != nil {
		return models.Customer{}, mapStoreError(err, "customer")
	}
	return customer, nil
}

func (s *customerService) Update(ctx context.Context, id int64, update models.CustomerUpdate) (models.Customer, error) {
	if update.Phone != nil {
		phone, err := schema.NormalizePhone(*update.Phone)
		if err != nil {
			return models.Customer{}, err
		}
		update.Phone = &phone
	}

	updated, err := s.customerRepository.Update(ctx, id, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("customer update ended with error")
		return models.Customer{}, mapStoreError(err, "customer")
	}

	return updated, nil
}

func (s *customerService) Delete(ctx context.Context, id int64) error {
	if err := s.customerRepository.Delete(ctx, id); err != nil {
		return mapStoreError(err, "customer")
	}
	return nil
}
