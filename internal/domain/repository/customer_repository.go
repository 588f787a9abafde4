package repository

import (
	"context"

	"github.com/rkjewellers/billing-api/internal/domain/entity"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	// FirstOrCreate looks up a customer by (name, contact) and creates it when
	// absent, all within one transaction. It reports whether a row was created.
	FirstOrCreate(ctx context.Context, customer *entity.Customer) (created bool, err error)
	// GetByID returns the customer or nil when no row matches.
	GetByID(ctx context.Context, id uint) (*entity.Customer, error)
	// SearchByName returns up to limit customers whose name contains query.
	SearchByName(ctx context.Context, query string, limit int) ([]entity.Customer, error)
}

// VisitRepository defines the interface for visit data operations
type VisitRepository interface {
	// Create stores a new visit within one transaction.
	Create(ctx context.Context, visit *entity.Visit) error
	// ListByCustomer returns the customer's visits, newest first.
	ListByCustomer(ctx context.Context, customerID uint) ([]entity.Visit, error)
	// LatestByCustomer returns the most recent visit or nil when none exists.
	LatestByCustomer(ctx context.Context, customerID uint) (*entity.Visit, error)
}
