package commands

import (
	"context"
	"errors"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
)

// IdentifiedCommandHandler is the idempotency guard wrapped around every
// mutating command. Each wire request carries a client-supplied request id;
// the guard records the id in the shared client-request ledger before running
// the command, so a retried request finds the record and is acknowledged
// without executing the handler again.
//
// The ledger insert is atomic (unique key on the request id), which makes the
// guard safe across replicas: of N concurrent submissions with the same id,
// exactly one runs the command. The guard deduplicates, it does not lock:
// requests with different ids are never serialized against each other.
type IdentifiedCommandHandler struct {
	requests ports.ClientRequestRepository
	logger   *slog.Logger
}

// NewIdentifiedCommandHandler creates the guard around the given
// client-request ledger.
func NewIdentifiedCommandHandler(requests ports.ClientRequestRepository, logger *slog.Logger) IdentifiedCommandHandler {
	return IdentifiedCommandHandler{
		requests: requests,
		logger:   logger.With("component", "identified_command_handler"),
	}
}

// Handle records the request id and invokes handle exactly once per distinct
// id. A nil or unconstructed request id fails with a validation error before
// any domain logic runs. A duplicate id returns nil without invoking handle:
// outcomes are not cached, so the retried caller gets a no-op acknowledgment.
//
// The ledger record is kept even if handle fails; retrying a failed command
// requires a fresh request id, which keeps "at most once" strict.
func (h IdentifiedCommandHandler) Handle(
	ctx context.Context,
	requestID kernel.UUID,
	commandName string,
	handle func(ctx context.Context) error,
) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	err := h.requests.Record(ctx, requestID, commandName)
	if errors.Is(err, ports.ErrRequestAlreadyProcessed) {
		h.logger.InfoContext(ctx, "Duplicate request ignored",
			"request_id", requestID.String(), "command", commandName)
		return nil
	}
	if err != nil {
		return err
	}

	return handle(ctx)
}
