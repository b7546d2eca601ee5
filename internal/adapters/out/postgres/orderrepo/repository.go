package orderrepo

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items to the database. The store assigns
// the order number, which is written back to the aggregate via SetID.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err = aggregate.SetID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists a status change under optimistic concurrency. Only the
// status, history and version columns are written: items are immutable and the
// rest of the row never changes after creation. The write is conditional on
// the version the aggregate was loaded with; losing the race yields a
// version-is-invalid error so the caller can reload and retry.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":  dto.Status,
			"history": dto.History,
			"version": dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("order version", nil)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its line items by order number.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("OrderNumber")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetSubmittedOlderThan retrieves all orders still in Submitted status that
// were placed before the cutoff. Used by the grace-period job to find orders
// whose stock validation is due.
func (r *GormOrderRepository) GetSubmittedOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("id").
		Find(&dtos, "status = ? AND order_date < ?", int(order.Submitted), cutoff).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
