package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// SetStockStatusCommandHandler applies the stock-check outcome to an order.
type SetStockStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetStockStatusCommandHandler creates a handler for stock-check outcomes.
func NewSetStockStatusCommandHandler(uowFactory OrderUoWFactory) SetStockStatusCommandHandler {
	return SetStockStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle confirms or rejects stock for the order. Rejection cancels the
// order and its history records the reason.
func (h *SetStockStatusCommandHandler) Handle(ctx context.Context, cmd SetStockStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyTransition(ctx, h.uowFactory, cmd.OrderNumber(), func(aggregate *order.Order) error {
		if cmd.Confirmed() {
			return aggregate.SetStockConfirmedStatus()
		}
		return aggregate.SetStockRejectedStatus()
	})
}
