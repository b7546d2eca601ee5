package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// CreateOrderCommandHandler persists new orders. The aggregate starts in
// Submitted status with its first history entry; the store assigns the order
// number during the insert.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the order and returns its store-assigned order number.
// The order row, its items and the initial history entry commit together or
// not at all.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	newOrder, err := order.NewOrder(cmd.BuyerID(), cmd.Address(), cmd.Payment(), cmd.Items())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newOrder.ID(), nil
}
