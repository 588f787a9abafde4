package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rkjewellers/billing-api/internal/domain/entity"
	domainRepo "github.com/rkjewellers/billing-api/internal/domain/repository"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) FirstOrCreate(ctx context.Context, customer *entity.Customer) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entity.Customer
		err := tx.Where("name = ? AND contact = ?", customer.Name, customer.Contact).
			First(&existing).Error
		if err == nil {
			*customer = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		created = true
		return tx.Create(customer).Error
	})
	return created, err
}

func (r *customerRepository) GetByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) SearchByName(ctx context.Context, query string, limit int) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.db.WithContext(ctx).
		Where("name LIKE ?", "%"+query+"%").
		Limit(limit).
		Find(&customers).Error
	return customers, err
}
