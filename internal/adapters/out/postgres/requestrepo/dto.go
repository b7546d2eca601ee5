// Package requestrepo persists the client-request ledger backing request
// deduplication. Each processed request id is inserted exactly once; the
// primary key makes a duplicate insert fail atomically, which is what the
// idempotency guard relies on.
package requestrepo

import (
	"time"

	"github.com/google/uuid"
)

// RequestDTO is one processed client request. The request id is the primary
// key, so concurrent inserts of the same id conflict at the database level.
type RequestDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	Time time.Time
}

// TableName specifies the database table name for client request entities.
func (RequestDTO) TableName() string {
	return "client_requests"
}
