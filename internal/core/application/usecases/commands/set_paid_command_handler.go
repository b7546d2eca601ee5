package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// SetPaidCommandHandler applies the Pay transition to an order.
type SetPaidCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetPaidCommandHandler creates a handler for payment confirmations.
func NewSetPaidCommandHandler(uowFactory OrderUoWFactory) SetPaidCommandHandler {
	return SetPaidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the order as paid. Fails unless the order is StockConfirmed.
func (h *SetPaidCommandHandler) Handle(ctx context.Context, cmd SetPaidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyTransition(ctx, h.uowFactory, cmd.OrderNumber(), func(aggregate *order.Order) error {
		return aggregate.SetPaidStatus()
	})
}
