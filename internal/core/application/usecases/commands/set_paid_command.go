package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrSetPaidCommandIsNotConstructed = errors.New(
	"SetPaidCommand must be created via NewSetPaidCommand constructor",
)

// SetPaidCommand records a successful payment for a StockConfirmed order.
// System-triggered by the payment integration, not user-facing.
type SetPaidCommand struct { //nolint:recvcheck //using for validation
	orderNumber int64

	guard guard.ConstructorGuard
}

// NewSetPaidCommand creates the command for the paid order.
func NewSetPaidCommand(orderNumber int64) (SetPaidCommand, error) {
	if orderNumber <= 0 {
		return SetPaidCommand{}, errs.NewValueIsRequiredError("OrderNumber")
	}

	return SetPaidCommand{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPaidCommand) Validate() error {
	return c.guard.Validate(ErrSetPaidCommandIsNotConstructed)
}

// OrderNumber returns the number of the paid order.
func (c SetPaidCommand) OrderNumber() int64 {
	return c.orderNumber
}
