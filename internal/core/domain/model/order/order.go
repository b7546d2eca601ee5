package order

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when SetID is called on an order
	// that already carries a store-assigned identifier.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")
)

// History entry descriptions, one per lifecycle transition.
const (
	descriptionSubmitted      = "Order was created"
	descriptionAwaitingStock  = "Grace period elapsed; order is awaiting stock validation"
	descriptionStockConfirmed = "All the items were confirmed with available stock"
	descriptionStockRejected  = "Some items were rejected by stock; the order was cancelled"
	descriptionPaid           = "The payment was performed"
	descriptionShipped        = "The order was shipped"
	descriptionCancelled      = "The order was cancelled"
)

// StatusChange is one entry of the order's append-only audit log. Entries are
// recorded on every lifecycle transition and never mutated afterwards.
type StatusChange struct {
	Status      Status
	ChangedAt   time.Time
	Description string
}

// Order is the aggregate root of the ordering domain: the consistency
// boundary for a single customer order.
//
// Order maintains these invariants:
//   - Items are non-empty after successful creation and immutable afterwards
//   - Status moves only along the edges defined on Status; illegal moves
//     leave both status and history untouched
//   - Every successful transition appends exactly one StatusChange
//   - The payment summary never contains a raw card number
//
// The version field supports optimistic concurrency in the store: two
// concurrent transitions on the same order cannot both commit.
type Order struct {
	id        int64
	buyerID   string
	address   Address
	payment   PaymentDetails
	items     []OrderItem
	status    Status
	history   []StatusChange
	orderDate time.Time
	version   int

	isConstructed bool
}

// NewOrder creates a new order in Submitted status with one history entry.
// The item list must be non-empty and every value object must have been built
// through its validated constructor. The store assigns the order number later
// via SetID.
func NewOrder(buyerID string, address Address, payment PaymentDetails, items []OrderItem) (*Order, error) {
	if buyerID == "" {
		return nil, errs.NewValueIsRequiredError("BuyerId")
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}
	if err := payment.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("OrderItems")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	copied := make([]OrderItem, len(items))
	copy(copied, items)

	now := time.Now().UTC()
	return &Order{
		buyerID:   buyerID,
		address:   address,
		payment:   payment,
		items:     copied,
		status:    Submitted,
		orderDate: now,
		history: []StatusChange{{
			Status:      Submitted,
			ChangedAt:   now,
			Description: descriptionSubmitted,
		}},
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// creation-time validation of the payment details. Repositories are the only
// intended caller.
func RestoreOrder(
	id int64,
	buyerID string,
	address Address,
	payment PaymentDetails,
	items []OrderItem,
	status Status,
	history []StatusChange,
	orderDate time.Time,
	version int,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("OrderNumber")
	}
	if buyerID == "" {
		return nil, errs.NewValueIsRequiredError("BuyerId")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	copiedItems := make([]OrderItem, len(items))
	copy(copiedItems, items)
	copiedHistory := make([]StatusChange, len(history))
	copy(copiedHistory, history)

	return &Order{
		id:            id,
		buyerID:       buyerID,
		address:       address,
		payment:       payment,
		items:         copiedItems,
		status:        status,
		history:       copiedHistory,
		orderDate:     orderDate,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// SetID assigns the store-generated order number. It may be called once, by
// the repository, right after the initial insert.
func (o *Order) SetID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("OrderNumber")
	}
	o.id = id
	return nil
}

// ID returns the store-assigned order number, 0 before the first insert.
func (o *Order) ID() int64 {
	return o.id
}

// BuyerID returns the identity of the buyer who placed the order.
func (o *Order) BuyerID() string {
	return o.buyerID
}

// Address returns the shipping address.
func (o *Order) Address() Address {
	return o.address
}

// PaymentDetails returns the masked payment summary.
func (o *Order) PaymentDetails() PaymentDetails {
	return o.payment
}

// Items returns the order lines in creation order.
// The returned slice is a copy; order items are immutable.
func (o *Order) Items() []OrderItem {
	copied := make([]OrderItem, len(o.items))
	copy(copied, o.items)
	return copied
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// StatusHistory returns a copy of the append-only audit log, oldest first.
func (o *Order) StatusHistory() []StatusChange {
	copied := make([]StatusChange, len(o.history))
	copy(copied, o.history)
	return copied
}

// OrderDate returns the creation instant.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Version returns the optimistic-concurrency version loaded from the store.
func (o *Order) Version() int {
	return o.version
}

// Total returns the sum of all line totals.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Total())
	}
	return total
}

// SetAwaitingStockValidationStatus moves the order from Submitted to
// AwaitingStockValidation once the grace period elapses.
func (o *Order) SetAwaitingStockValidationStatus() error {
	return o.transition(Status.StartStockValidation, descriptionAwaitingStock)
}

// SetStockConfirmedStatus records that all items are available.
func (o *Order) SetStockConfirmedStatus() error {
	return o.transition(Status.ConfirmStock, descriptionStockConfirmed)
}

// SetStockRejectedStatus cancels the order because of unavailable items.
func (o *Order) SetStockRejectedStatus() error {
	return o.transition(Status.RejectStock, descriptionStockRejected)
}

// SetPaidStatus records a successful payment.
func (o *Order) SetPaidStatus() error {
	return o.transition(Status.Pay, descriptionPaid)
}

// SetShippedStatus marks the order as shipped. Only legal from Paid.
func (o *Order) SetShippedStatus() error {
	return o.transition(Status.Ship, descriptionShipped)
}

// SetCancelledStatus cancels the order. Illegal once the order is Shipped or
// already Cancelled.
func (o *Order) SetCancelledStatus() error {
	return o.transition(Status.Cancel, descriptionCancelled)
}

// transition applies one state-machine edge. On failure neither status nor
// history is touched.
func (o *Order) transition(edge func(Status) (Status, error), description string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	next, err := edge(o.status)
	if err != nil {
		return err
	}

	o.status = next
	o.history = append(o.history, StatusChange{
		Status:      next,
		ChangedAt:   time.Now().UTC(),
		Description: description,
	})
	return nil
}
