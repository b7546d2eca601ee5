package ports

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
)

// ErrRequestAlreadyProcessed is returned by Record when the request id was
// seen before. The dedupe guard treats it as "the work already happened" and
// skips the handler.
var ErrRequestAlreadyProcessed = errors.New("client request was already processed")

// ClientRequestRepository is the shared idempotency ledger. Record must be
// atomic against concurrent duplicate submissions across replicas: when two
// workers race on the same new request id, exactly one Record succeeds and
// every other caller gets ErrRequestAlreadyProcessed. Records are created
// once and never updated.
type ClientRequestRepository interface {
	Record(ctx context.Context, requestID kernel.UUID, commandName string) error
}
