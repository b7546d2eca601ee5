package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCardTypesQueryHandler retrieves the card types seeded at startup.
type GetCardTypesQueryHandler struct {
	db *gorm.DB
}

// NewGetCardTypesQueryHandler creates a handler for card type queries.
// Requires a GORM database connection for query execution.
func NewGetCardTypesQueryHandler(db *gorm.DB) GetCardTypesQueryHandler {
	return GetCardTypesQueryHandler{db: db}
}

// Handle executes the query to retrieve all accepted card types,
// sorted by id for consistent output.
func (h GetCardTypesQueryHandler) Handle(
	ctx context.Context,
	query GetCardTypesQuery,
) ([]GetCardTypesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cardTypes := make([]GetCardTypesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name
		FROM card_types
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cardType GetCardTypesQueryResponse
		if err = rows.Scan(&cardType.ID, &cardType.Name); err != nil {
			return nil, err
		}
		cardTypes = append(cardTypes, cardType)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cardTypes, nil
}
