package repository

import (
	"context"

	"github.com/rkjewellers/billing-api/internal/domain/entity"
)

// MirrorSink appends records to the external tabular export. Mirror writes
// are best-effort side effects: they run outside the store transaction and a
// failure must be logged, never surfaced to the caller.
type MirrorSink interface {
	AppendCustomer(ctx context.Context, customer *entity.Customer) error
	AppendVisit(ctx context.Context, visit *entity.Visit) error
}
