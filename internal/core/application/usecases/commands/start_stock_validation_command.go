package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrStartStockValidationCommandIsNotConstructed = errors.New(
	"StartStockValidationCommand must be created via NewStartStockValidationCommand constructor",
)

// StartStockValidationCommand moves every order whose grace period has
// elapsed from Submitted to AwaitingStockValidation. It is system-triggered
// by the grace-period job, not user-facing.
type StartStockValidationCommand struct { //nolint:recvcheck //using for validation
	submittedBefore time.Time

	guard guard.ConstructorGuard
}

// NewStartStockValidationCommand creates the command with the cutoff instant:
// orders submitted before it have outlived their grace period.
func NewStartStockValidationCommand(submittedBefore time.Time) (StartStockValidationCommand, error) {
	if submittedBefore.IsZero() {
		return StartStockValidationCommand{}, errs.NewValueIsRequiredError("SubmittedBefore")
	}

	return StartStockValidationCommand{
		submittedBefore: submittedBefore,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartStockValidationCommand) Validate() error {
	return c.guard.Validate(ErrStartStockValidationCommandIsNotConstructed)
}

// SubmittedBefore returns the grace-period cutoff.
func (c StartStockValidationCommand) SubmittedBefore() time.Time {
	return c.submittedBefore
}
