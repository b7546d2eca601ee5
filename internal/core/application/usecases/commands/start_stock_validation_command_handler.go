package commands

import (
	"context"
	"errors"

	"ordering/internal/pkg/errs"
)

// StartStockValidationCommandHandler advances expired Submitted orders to
// AwaitingStockValidation. Runs concurrently on every replica; losing a
// version race on an individual order just means another replica advanced it
// first, so those orders are skipped rather than failed.
type StartStockValidationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartStockValidationCommandHandler creates the grace-period handler.
func NewStartStockValidationCommandHandler(uowFactory OrderUoWFactory) StartStockValidationCommandHandler {
	return StartStockValidationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle starts stock validation for every order submitted before the
// command's cutoff and returns how many orders it advanced.
func (h *StartStockValidationCommandHandler) Handle(ctx context.Context, cmd StartStockValidationCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	expired, err := repo.GetSubmittedOlderThan(ctx, cmd.SubmittedBefore())
	if err != nil {
		return 0, err
	}

	advanced := 0
	for _, aggregate := range expired {
		if err = aggregate.SetAwaitingStockValidationStatus(); err != nil {
			return advanced, err
		}

		if err = repo.Update(ctx, aggregate); err != nil {
			if errors.Is(err, errs.ErrVersionIsInvalid) {
				continue
			}
			return advanced, err
		}
		advanced++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return advanced, nil
}
