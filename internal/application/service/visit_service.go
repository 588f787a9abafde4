package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/rkjewellers/billing-api/internal/domain/entity"
	"github.com/rkjewellers/billing-api/internal/domain/repository"
	"github.com/rkjewellers/billing-api/pkg/apperror"
	"github.com/rkjewellers/billing-api/pkg/lineitem"
)

// VisitService handles purchase-visit operations
type VisitService struct {
	visitRepo    repository.VisitRepository
	customerRepo repository.CustomerRepository
	mirror       repository.MirrorSink
	logger       *zap.Logger
}

// NewVisitService creates a new visit service
func NewVisitService(visitRepo repository.VisitRepository, customerRepo repository.CustomerRepository, mirror repository.MirrorSink, logger *zap.Logger) *VisitService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VisitService{
		visitRepo:    visitRepo,
		customerRepo: customerRepo,
		mirror:       mirror,
		logger:       logger,
	}
}

// RecordVisitInput represents the record visit input
type RecordVisitInput struct {
	CustomerID     uint
	PurchasedItems []string
	PaidAmount     float64
	DueAmount      float64
}

// RecordVisit stores a visit with its items joined into the newline-separated
// blob, then mirrors it to the tabular export best-effort.
func (s *VisitService) RecordVisit(ctx context.Context, input *RecordVisitInput) (*entity.Visit, error) {
	visit := &entity.Visit{
		CustomerID:     input.CustomerID,
		PurchasedItems: lineitem.JoinItems(input.PurchasedItems),
		PaidAmount:     input.PaidAmount,
		DueAmount:      input.DueAmount,
	}

	if err := s.visitRepo.Create(ctx, visit); err != nil {
		return nil, apperror.NewStoreError(err)
	}

	if err := s.mirror.AppendVisit(ctx, visit); err != nil {
		s.logger.Warn("visit mirror write failed",
			zap.Uint("visit_id", visit.ID),
			zap.Error(err))
	}

	return visit, nil
}

// GetCustomerHistory returns the customer's visits, newest first.
func (s *VisitService) GetCustomerHistory(ctx context.Context, customerID uint) ([]entity.Visit, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, apperror.NewStoreError(err)
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer not found")
	}

	visits, err := s.visitRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperror.NewStoreError(err)
	}
	return visits, nil
}
