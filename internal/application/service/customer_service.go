package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/rkjewellers/billing-api/internal/domain/entity"
	"github.com/rkjewellers/billing-api/internal/domain/repository"
	"github.com/rkjewellers/billing-api/pkg/apperror"
)

// searchLimit caps the number of customers returned by a name search.
const searchLimit = 5

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
	mirror       repository.MirrorSink
	logger       *zap.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, mirror repository.MirrorSink, logger *zap.Logger) *CustomerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerService{customerRepo: customerRepo, mirror: mirror, logger: logger}
}

// CreateCustomer stores a customer, idempotently on (name, contact): a repeat
// call returns the existing row. New rows are mirrored to the tabular export
// best-effort after the store commit. It reports whether a row was created.
func (s *CustomerService) CreateCustomer(ctx context.Context, name, contact string) (*entity.Customer, bool, error) {
	customer := &entity.Customer{Name: name, Contact: contact}

	created, err := s.customerRepo.FirstOrCreate(ctx, customer)
	if err != nil {
		return nil, false, apperror.NewStoreError(err)
	}

	if created {
		if err := s.mirror.AppendCustomer(ctx, customer); err != nil {
			s.logger.Warn("customer mirror write failed",
				zap.Uint("customer_id", customer.ID),
				zap.Error(err))
		}
	}

	return customer, created, nil
}

// SearchCustomers returns up to five customers whose name contains query.
// A blank query matches nothing.
func (s *CustomerService) SearchCustomers(ctx context.Context, query string) ([]entity.Customer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.Customer{}, nil
	}

	customers, err := s.customerRepo.SearchByName(ctx, query, searchLimit)
	if err != nil {
		return nil, apperror.NewStoreError(err)
	}
	if customers == nil {
		customers = []entity.Customer{}
	}
	return customers, nil
}
