// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work and the client-request
// (idempotency) store. These interfaces enable dependency inversion and
// testability.
package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and assigns its store-generated order
	// number to the aggregate via SetID. Items and the initial history
	// entry are written atomically with the order row.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status transition under optimistic concurrency:
	// the write only succeeds if the stored version still matches the
	// version the aggregate was loaded with. A concurrent-writer loss is
	// reported as a version error (errs.ErrVersionIsInvalid); the caller
	// reloads and reapplies. Order items are never touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its order number, with items and the full
	// status history. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetSubmittedOlderThan retrieves orders still in Submitted status that
	// were created before the cutoff. Used by the grace-period job to start
	// stock validation.
	GetSubmittedOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
