package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrGetCardTypesQueryIsNotConstructed = errors.New(
	"GetCardTypesQuery must be created via NewGetCardTypesQuery constructor",
)

// GetCardTypesQuery retrieves the payment card types accepted at checkout.
type GetCardTypesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCardTypesQuery creates a query to retrieve accepted card types.
func NewGetCardTypesQuery() GetCardTypesQuery {
	return GetCardTypesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCardTypesQueryIsNotConstructed if validation fails.
func (q GetCardTypesQuery) Validate() error {
	return q.guard.Validate(ErrGetCardTypesQueryIsNotConstructed)
}

// GetCardTypesQueryResponse is one accepted card type.
type GetCardTypesQueryResponse struct {
	ID   int
	Name string
}
