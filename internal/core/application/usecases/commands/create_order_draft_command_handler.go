package commands

import (
	"context"

	"ordering/internal/core/domain/services"
)

// CreateOrderDraftCommandHandler prices baskets through the draft calculator.
// It has no unit of work: drafts touch no shared state.
type CreateOrderDraftCommandHandler struct {
	calculator services.DraftCalculator
}

// NewCreateOrderDraftCommandHandler creates a handler around the calculator.
func NewCreateOrderDraftCommandHandler(calculator services.DraftCalculator) CreateOrderDraftCommandHandler {
	return CreateOrderDraftCommandHandler{
		calculator: calculator,
	}
}

// Handle computes the priced draft for the command's basket.
func (h *CreateOrderDraftCommandHandler) Handle(_ context.Context, cmd CreateOrderDraftCommand) (services.OrderDraft, error) {
	if err := cmd.Validate(); err != nil {
		return services.OrderDraft{}, err
	}

	return h.calculator.ComputeDraft(cmd.Basket())
}
