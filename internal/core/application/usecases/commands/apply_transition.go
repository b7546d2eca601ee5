package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// maxTransitionAttempts bounds retries after losing an optimistic-concurrency
// race. Each retry reloads the aggregate, so a loser that finds the order
// already moved fails with the transition error instead of retrying forever.
const maxTransitionAttempts = 3

// applyTransition loads an order, applies one state-machine edge and persists
// it under optimistic concurrency. On a version conflict the aggregate is
// reloaded and the edge reapplied; any other failure is returned as is. The
// status update and its history append commit in one transaction.
func applyTransition(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID int64,
	apply func(*order.Order) error,
) error {
	var lastErr error

	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		lastErr = applyTransitionOnce(ctx, uowFactory, orderID, apply)
		if lastErr == nil || !errors.Is(lastErr, errs.ErrVersionIsInvalid) {
			return lastErr
		}
	}

	return lastErr
}

func applyTransitionOnce(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID int64,
	apply func(*order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = apply(aggregate); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
