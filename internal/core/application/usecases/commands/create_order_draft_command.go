package commands

import (
	"errors"

	"ordering/internal/core/domain/model/basket"
	"ordering/internal/pkg/guard"
)

var ErrCreateOrderDraftCommandIsNotConstructed = errors.New(
	"CreateOrderDraftCommand must be created via NewCreateOrderDraftCommand constructor",
)

// CreateOrderDraftCommand requests a priced preview of a basket. The draft is
// never persisted, so the command is not routed through the request-dedupe
// guard.
type CreateOrderDraftCommand struct { //nolint:recvcheck //using for validation
	customerBasket basket.CustomerBasket

	guard guard.ConstructorGuard
}

// NewCreateOrderDraftCommand creates a draft-pricing command for the basket.
func NewCreateOrderDraftCommand(customerBasket basket.CustomerBasket) (CreateOrderDraftCommand, error) {
	if err := customerBasket.Validate(); err != nil {
		return CreateOrderDraftCommand{}, err
	}

	return CreateOrderDraftCommand{
		customerBasket: customerBasket,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderDraftCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderDraftCommandIsNotConstructed)
}

// Basket returns the basket snapshot to price.
func (c CreateOrderDraftCommand) Basket() basket.CustomerBasket {
	return c.customerBasket
}
