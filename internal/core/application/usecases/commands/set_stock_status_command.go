package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrSetStockStatusCommandIsNotConstructed = errors.New(
	"SetStockStatusCommand must be created via NewSetStockStatusCommand constructor",
)

// SetStockStatusCommand records the outcome of a stock check for an order in
// AwaitingStockValidation: confirmation moves it to StockConfirmed, rejection
// cancels it. System-triggered, not user-facing.
type SetStockStatusCommand struct { //nolint:recvcheck //using for validation
	orderNumber int64
	confirmed   bool

	guard guard.ConstructorGuard
}

// NewSetStockStatusCommand creates the command with the stock-check outcome.
func NewSetStockStatusCommand(orderNumber int64, confirmed bool) (SetStockStatusCommand, error) {
	if orderNumber <= 0 {
		return SetStockStatusCommand{}, errs.NewValueIsRequiredError("OrderNumber")
	}

	return SetStockStatusCommand{
		orderNumber: orderNumber,
		confirmed:   confirmed,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetStockStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetStockStatusCommandIsNotConstructed)
}

// OrderNumber returns the number of the checked order.
func (c SetStockStatusCommand) OrderNumber() int64 {
	return c.orderNumber
}

// Confirmed reports whether every item was available.
func (c SetStockStatusCommand) Confirmed() bool {
	return c.confirmed
}
