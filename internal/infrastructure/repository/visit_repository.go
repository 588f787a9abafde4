package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rkjewellers/billing-api/internal/domain/entity"
	domainRepo "github.com/rkjewellers/billing-api/internal/domain/repository"
)

type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository creates a new visit repository
func NewVisitRepository(db *gorm.DB) domainRepo.VisitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) Create(ctx context.Context, visit *entity.Visit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(visit).Error
	})
}

func (r *visitRepository) ListByCustomer(ctx context.Context, customerID uint) ([]entity.Visit, error) {
	var visits []entity.Visit
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date DESC").
		Find(&visits).Error
	return visits, err
}

func (r *visitRepository) LatestByCustomer(ctx context.Context, customerID uint) (*entity.Visit, error) {
	var visit entity.Visit
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date DESC").
		First(&visit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &visit, nil
}
