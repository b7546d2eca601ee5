package commands

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/basket"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order. The
// constructor validates the raw request fields into domain value objects, so
// a constructed command always carries a valid address, a masked payment
// summary and at least one projected order item. Every validation failure
// names the offending field (e.g. "CardNumber") for field-level client
// messages.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	buyerID  string
	userName string
	address  order.Address
	payment  order.PaymentDetails
	items    []order.OrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates raw order-creation input and builds the
// command. Basket items are projected into immutable order items, locking in
// their current unit prices.
func NewCreateOrderCommand(
	buyerID string,
	userName string,
	street, city, state, country, zipCode string,
	cardNumber, cardHolderName string,
	cardExpiration time.Time,
	cardSecurityNumber string,
	cardTypeID int,
	basketItems []basket.BasketItem,
) (CreateOrderCommand, error) {
	if buyerID == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("BuyerId")
	}
	if len(basketItems) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("OrderItems")
	}

	address, err := order.NewAddress(street, city, state, country, zipCode)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	payment, err := order.NewPaymentDetails(
		cardTypeID, cardNumber, cardHolderName, cardExpiration, cardSecurityNumber)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	items := make([]order.OrderItem, 0, len(basketItems))
	for _, basketItem := range basketItems {
		item, itemErr := order.OrderItemFromBasketItem(basketItem)
		if itemErr != nil {
			return CreateOrderCommand{}, itemErr
		}
		items = append(items, item)
	}

	return CreateOrderCommand{
		buyerID:  buyerID,
		userName: userName,
		address:  address,
		payment:  payment,
		items:    items,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// BuyerID returns the identity of the buyer placing the order.
func (c CreateOrderCommand) BuyerID() string {
	return c.buyerID
}

// UserName returns the display name of the buyer.
func (c CreateOrderCommand) UserName() string {
	return c.userName
}

// Address returns the validated shipping address.
func (c CreateOrderCommand) Address() order.Address {
	return c.address
}

// Payment returns the masked payment summary.
func (c CreateOrderCommand) Payment() order.PaymentDetails {
	return c.payment
}

// Items returns the projected order items in basket order.
func (c CreateOrderCommand) Items() []order.OrderItem {
	copied := make([]order.OrderItem, len(c.items))
	copy(copied, c.items)
	return copied
}
