package requestrepo

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"

	"gorm.io/gorm"
)

// GormClientRequestRepository implements ClientRequestRepository using GORM.
// Requires a connection opened with TranslateError so unique-key violations
// surface as gorm.ErrDuplicatedKey.
type GormClientRequestRepository struct {
	db *gorm.DB
}

// NewGormClientRequestRepository creates a new GORM client request repository.
func NewGormClientRequestRepository(db *gorm.DB) *GormClientRequestRepository {
	return &GormClientRequestRepository{db: db}
}

// Record inserts the request id into the ledger. Returns
// ports.ErrRequestAlreadyProcessed when the id was recorded before.
func (r *GormClientRequestRepository) Record(ctx context.Context, requestID kernel.UUID, commandName string) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	dto := RequestDTO{
		ID:   requestID.Bytes(),
		Name: commandName,
		Time: time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).Create(&dto).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ports.ErrRequestAlreadyProcessed
	}

	return err
}
