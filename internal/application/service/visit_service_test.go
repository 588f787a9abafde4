package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkjewellers/billing-api/internal/domain/entity"
	"github.com/rkjewellers/billing-api/pkg/apperror"
)

func TestRecordVisitJoinsItems(t *testing.T) {
	visitRepo := newFakeVisitRepo()
	mirror := &fakeMirror{}
	svc := NewVisitService(visitRepo, newFakeCustomerRepo(), mirror, nil)

	visit, err := svc.RecordVisit(context.Background(), &RecordVisitInput{
		CustomerID:     1,
		PurchasedItems: []string{"Item: Ring | Gross: 5g", "Item: Chain | Gross: 12g"},
		PaidAmount:     1000,
		DueAmount:      500,
	})
	require.NoError(t, err)
	assert.Equal(t, "Item: Ring | Gross: 5g\nItem: Chain | Gross: 12g", visit.PurchasedItems)
	assert.Equal(t, 1, mirror.visitAppends)
}

func TestRecordVisitEmptyItemsStoresEmptyBlob(t *testing.T) {
	visitRepo := newFakeVisitRepo()
	svc := NewVisitService(visitRepo, newFakeCustomerRepo(), &fakeMirror{}, nil)

	visit, err := svc.RecordVisit(context.Background(), &RecordVisitInput{
		CustomerID:     1,
		PurchasedItems: []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, "", visit.PurchasedItems)
	assert.Zero(t, visit.PaidAmount)
	assert.Zero(t, visit.DueAmount)
}

func TestRecordVisitMirrorFailureIsNonFatal(t *testing.T) {
	visitRepo := newFakeVisitRepo()
	mirror := &fakeMirror{err: errors.New("sheet unavailable")}
	svc := NewVisitService(visitRepo, newFakeCustomerRepo(), mirror, nil)

	_, err := svc.RecordVisit(context.Background(), &RecordVisitInput{CustomerID: 1})
	require.NoError(t, err)
	assert.Len(t, visitRepo.visits, 1)
}

func TestRecordVisitStoreError(t *testing.T) {
	visitRepo := newFakeVisitRepo()
	visitRepo.err = errors.New("disk full")
	svc := NewVisitService(visitRepo, newFakeCustomerRepo(), &fakeMirror{}, nil)

	_, err := svc.RecordVisit(context.Background(), &RecordVisitInput{CustomerID: 1})
	require.Error(t, err)
	assert.Equal(t, 500, apperror.GetAppError(err).Code)
}

func TestGetCustomerHistoryUnknownCustomer(t *testing.T) {
	svc := NewVisitService(newFakeVisitRepo(), newFakeCustomerRepo(), &fakeMirror{}, nil)

	_, err := svc.GetCustomerHistory(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestGetCustomerHistoryNewestFirst(t *testing.T) {
	customerRepo := newFakeCustomerRepo()
	visitRepo := newFakeVisitRepo()
	svc := NewVisitService(visitRepo, customerRepo, &fakeMirror{}, nil)
	ctx := context.Background()

	customer := &entity.Customer{Name: "Asha", Contact: "111"}
	_, err := customerRepo.FirstOrCreate(ctx, customer)
	require.NoError(t, err)

	for _, blob := range []string{"first", "second", "third"} {
		_, err := svc.RecordVisit(ctx, &RecordVisitInput{
			CustomerID:     customer.ID,
			PurchasedItems: []string{blob},
		})
		require.NoError(t, err)
	}

	visits, err := svc.GetCustomerHistory(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, visits, 3)
	assert.Equal(t, "third", visits[0].PurchasedItems)
	assert.Equal(t, "first", visits[2].PurchasedItems)
}
