package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// CancelOrderCommandHandler applies the Cancel transition to an order.
// A concurrent transition on the same order loses at most the optimistic
// write; the handler then reloads and observes the new state, so Cancel and
// Ship racing on one order can never both succeed.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the order. Fails with a not-found error when the order does
// not exist and with a transition error when the order is already Shipped or
// Cancelled.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyTransition(ctx, h.uowFactory, cmd.OrderNumber(), func(aggregate *order.Order) error {
		return aggregate.SetCancelledStatus()
	})
}
