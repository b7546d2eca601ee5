package order

import (
	"errors"

	"ordering/internal/core/domain/model/basket"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is the persisted projection of a basket line at order-creation
// time. It is immutable: the unit price is locked when the order is created
// and does not follow later catalog changes.
type OrderItem struct {
	productID   int
	productName string
	unitPrice   decimal.Decimal
	discount    decimal.Decimal
	quantity    int
	pictureURL  string

	guard guard.ConstructorGuard
}

// NewOrderItem creates an order line. The discount must not exceed the line
// total.
func NewOrderItem(
	productID int,
	productName string,
	unitPrice decimal.Decimal,
	discount decimal.Decimal,
	quantity int,
	pictureURL string,
) (OrderItem, error) {
	if productName == "" {
		return OrderItem{}, errs.NewValueIsRequiredError("ProductName")
	}
	if quantity <= 0 {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause("Units",
			errors.New("invalid number of units"))
	}
	if unitPrice.IsNegative() {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause("UnitPrice",
			errors.New("unit price must not be negative"))
	}
	if discount.IsNegative() {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause("Discount",
			errors.New("discount must not be negative"))
	}
	if discount.GreaterThan(unitPrice.Mul(decimal.NewFromInt(int64(quantity)))) {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause("Discount",
			errors.New("the total of the order item is lower than the applied discount"))
	}

	return OrderItem{
		productID:   productID,
		productName: productName,
		unitPrice:   unitPrice,
		discount:    discount,
		quantity:    quantity,
		pictureURL:  pictureURL,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// OrderItemFromBasketItem projects a basket line into an order line,
// locking in the current unit price with no discount applied.
func OrderItemFromBasketItem(item basket.BasketItem) (OrderItem, error) {
	if err := item.Validate(); err != nil {
		return OrderItem{}, err
	}
	return NewOrderItem(
		item.ProductID(),
		item.ProductName(),
		item.UnitPrice(),
		decimal.Zero,
		item.Quantity(),
		item.PictureURL(),
	)
}

// Validate ensures the item was created through a constructor.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ProductID returns the catalog product identifier.
func (i OrderItem) ProductID() int {
	return i.productID
}

// ProductName returns the product name captured at creation time.
func (i OrderItem) ProductName() string {
	return i.productName
}

// UnitPrice returns the price per unit locked at order creation.
func (i OrderItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Discount returns the absolute discount applied to the line.
func (i OrderItem) Discount() decimal.Decimal {
	return i.discount
}

// Quantity returns the number of ordered units.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// PictureURL returns the product image location, empty when unknown.
func (i OrderItem) PictureURL() string {
	return i.pictureURL
}

// Total returns unitPrice*quantity minus the discount.
func (i OrderItem) Total() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity))).Sub(i.discount)
}
