package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand requests cancellation of an existing order. Cancellation
// is legal from every non-terminal status; a shipped or already cancelled
// order rejects the transition.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber int64

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation command for the given order
// number.
func NewCancelOrderCommand(orderNumber int64) (CancelOrderCommand, error) {
	if orderNumber <= 0 {
		return CancelOrderCommand{}, errs.NewValueIsRequiredError("OrderNumber")
	}

	return CancelOrderCommand{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderNumber returns the number of the order to cancel.
func (c CancelOrderCommand) OrderNumber() int64 {
	return c.orderNumber
}
