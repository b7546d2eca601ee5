package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand requests shipment of an order. Only a Paid order may ship.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber int64

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a shipment command for the given order number.
func NewShipOrderCommand(orderNumber int64) (ShipOrderCommand, error) {
	if orderNumber <= 0 {
		return ShipOrderCommand{}, errs.NewValueIsRequiredError("OrderNumber")
	}

	return ShipOrderCommand{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderNumber returns the number of the order to ship.
func (c ShipOrderCommand) OrderNumber() int64 {
	return c.orderNumber
}
