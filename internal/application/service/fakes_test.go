package service

import (
	"context"
	"strings"
	"time"

	"github.com/rkjewellers/billing-api/internal/domain/entity"
	"github.com/rkjewellers/billing-api/pkg/invoice"
)

// In-memory fakes so service behavior is tested without a live store.

type fakeCustomerRepo struct {
	customers []entity.Customer
	nextID    uint
	err       error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{nextID: 1}
}

func (r *fakeCustomerRepo) FirstOrCreate(_ context.Context, customer *entity.Customer) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, c := range r.customers {
		if c.Name == customer.Name && c.Contact == customer.Contact {
			*customer = c
			return false, nil
		}
	}
	customer.ID = r.nextID
	r.nextID++
	r.customers = append(r.customers, *customer)
	return true, nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uint) (*entity.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.customers {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) SearchByName(_ context.Context, query string, limit int) ([]entity.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.Customer
	for _, c := range r.customers {
		if strings.Contains(c.Name, query) {
			out = append(out, c)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

type fakeVisitRepo struct {
	visits []entity.Visit
	nextID uint
	err    error
}

func newFakeVisitRepo() *fakeVisitRepo {
	return &fakeVisitRepo{nextID: 1}
}

func (r *fakeVisitRepo) Create(_ context.Context, visit *entity.Visit) error {
	if r.err != nil {
		return r.err
	}
	visit.ID = r.nextID
	r.nextID++
	if visit.Date.IsZero() {
		visit.Date = time.Now()
	}
	r.visits = append(r.visits, *visit)
	return nil
}

func (r *fakeVisitRepo) ListByCustomer(_ context.Context, customerID uint) ([]entity.Visit, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.Visit
	// newest first: iterate insertion order in reverse
	for i := len(r.visits) - 1; i >= 0; i-- {
		if r.visits[i].CustomerID == customerID {
			out = append(out, r.visits[i])
		}
	}
	return out, nil
}

func (r *fakeVisitRepo) LatestByCustomer(ctx context.Context, customerID uint) (*entity.Visit, error) {
	visits, err := r.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(visits) == 0 {
		return nil, nil
	}
	return &visits[0], nil
}

type fakeMirror struct {
	customerAppends int
	visitAppends    int
	err             error
}

func (m *fakeMirror) AppendCustomer(context.Context, *entity.Customer) error {
	m.customerAppends++
	return m.err
}

func (m *fakeMirror) AppendVisit(context.Context, *entity.Visit) error {
	m.visitAppends++
	return m.err
}

type fakeRenderer struct {
	rendered *invoice.Document
	out      []byte
	err      error
}

func (r *fakeRenderer) Render(doc *invoice.Document) ([]byte, error) {
	r.rendered = doc
	if r.err != nil {
		return nil, r.err
	}
	return r.out, nil
}
