package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// ShipOrderCommandHandler applies the Ship transition to an order.
type ShipOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewShipOrderCommandHandler creates a handler for order shipment.
func NewShipOrderCommandHandler(uowFactory OrderUoWFactory) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle ships the order. Fails with a not-found error when the order does
// not exist and with a transition error unless the order is Paid.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyTransition(ctx, h.uowFactory, cmd.OrderNumber(), func(aggregate *order.Order) error {
		return aggregate.SetShippedStatus()
	})
}
