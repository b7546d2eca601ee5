package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

// ErrInvalidStatusTransition is the unwrap target for every illegal lifecycle
// move. Handlers map it to the invalid-operation error category, distinct from
// validation failures.
var ErrInvalidStatusTransition = errors.New("status transition is not allowed")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Submitted ──> AwaitingStockValidation ──> StockConfirmed ──> Paid ──> Shipped
//	    │                   │ │                     │              │
//	    └───────────────────┴─┴─────────────────────┴──────────────┘
//	                            Cancelled
//
// Shipped and Cancelled are terminal: no outgoing transitions exist.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Submitted is the initial status assigned at order creation.
	Submitted

	// AwaitingStockValidation indicates the grace period elapsed and the
	// order is waiting for stock availability to be checked.
	AwaitingStockValidation

	// StockConfirmed indicates every ordered item is available.
	StockConfirmed

	// Paid indicates payment for the order succeeded.
	Paid

	// Shipped indicates the order left the warehouse. Terminal.
	Shipped

	// Cancelled indicates the order was cancelled by the buyer or by a
	// stock rejection. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                 "Unknown",
		Submitted:               "Submitted",
		AwaitingStockValidation: "AwaitingStockValidation",
		StockConfirmed:          "StockConfirmed",
		Paid:                    "Paid",
		Shipped:                 "Shipped",
		Cancelled:               "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Submitted:               "Submitted",
		AwaitingStockValidation: "AwaitingStockValidation",
		StockConfirmed:          "StockConfirmed",
		Paid:                    "Paid",
		Shipped:                 "Shipped",
		Cancelled:               "Cancelled",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid. Used when reconstructing
// orders from persistence or parsing external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Shipped || s == Cancelled
}

func (s Status) transitionError(target Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, s, target)
}

// StartStockValidation transitions the status to AwaitingStockValidation.
// Only legal from Submitted; this edge is system-triggered when the grace
// period after creation elapses.
func (s Status) StartStockValidation() (Status, error) {
	if s != Submitted {
		return 0, s.transitionError(AwaitingStockValidation)
	}
	return AwaitingStockValidation, nil
}

// ConfirmStock transitions the status to StockConfirmed.
// Only legal from AwaitingStockValidation, when all items are available.
func (s Status) ConfirmStock() (Status, error) {
	if s != AwaitingStockValidation {
		return 0, s.transitionError(StockConfirmed)
	}
	return StockConfirmed, nil
}

// RejectStock transitions the status to Cancelled as the outcome of a failed
// stock check. Only legal from AwaitingStockValidation.
func (s Status) RejectStock() (Status, error) {
	if s != AwaitingStockValidation {
		return 0, s.transitionError(Cancelled)
	}
	return Cancelled, nil
}

// Pay transitions the status to Paid. Only legal from StockConfirmed.
func (s Status) Pay() (Status, error) {
	if s != StockConfirmed {
		return 0, s.transitionError(Paid)
	}
	return Paid, nil
}

// Ship transitions the status to Shipped. Only legal from Paid.
func (s Status) Ship() (Status, error) {
	if s != Paid {
		return 0, s.transitionError(Shipped)
	}
	return Shipped, nil
}

// Cancel transitions the status to Cancelled. Legal from every state except
// the terminal ones: a shipped order cannot be cancelled and cancelling twice
// is an error.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, s.transitionError(Cancelled)
	}
	return Cancelled, nil
}
