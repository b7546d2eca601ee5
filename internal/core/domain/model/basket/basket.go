// Package basket contains the customer basket snapshot consumed by the
// ordering domain. A basket is a transient value object supplied by the
// caller: the draft calculator prices it and order creation projects it into
// immutable order items. Nothing in this package is persisted.
package basket

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrBasketItemIsNotConstructed = errors.New("BasketItem must be created via NewBasketItem constructor")

// BasketItem is a single line of a customer basket: the product reference,
// its current and previous unit price and the requested quantity.
type BasketItem struct {
	id           string
	productID    int
	productName  string
	unitPrice    decimal.Decimal
	oldUnitPrice decimal.Decimal
	quantity     int
	pictureURL   string

	guard guard.ConstructorGuard
}

// NewBasketItem creates a basket line item. Quantity must be positive and
// the unit price must not be negative; violations name the offending field.
func NewBasketItem(
	id string,
	productID int,
	productName string,
	unitPrice decimal.Decimal,
	oldUnitPrice decimal.Decimal,
	quantity int,
	pictureURL string,
) (BasketItem, error) {
	if productName == "" {
		return BasketItem{}, errs.NewValueIsRequiredError("ProductName")
	}
	if quantity <= 0 {
		return BasketItem{}, errs.NewValueIsInvalidErrorWithCause("Quantity",
			errors.New("quantity must be greater than 0"))
	}
	if unitPrice.IsNegative() {
		return BasketItem{}, errs.NewValueIsInvalidErrorWithCause("UnitPrice",
			errors.New("unit price must not be negative"))
	}

	return BasketItem{
		id:           id,
		productID:    productID,
		productName:  productName,
		unitPrice:    unitPrice,
		oldUnitPrice: oldUnitPrice,
		quantity:     quantity,
		pictureURL:   pictureURL,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through the constructor.
func (i BasketItem) Validate() error {
	return i.guard.Validate(ErrBasketItemIsNotConstructed)
}

// ID returns the caller-assigned line identifier.
func (i BasketItem) ID() string {
	return i.id
}

// ProductID returns the catalog product identifier.
func (i BasketItem) ProductID() int {
	return i.productID
}

// ProductName returns the display name of the product.
func (i BasketItem) ProductName() string {
	return i.productName
}

// UnitPrice returns the current price per unit.
func (i BasketItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// OldUnitPrice returns the price per unit before the last catalog change.
func (i BasketItem) OldUnitPrice() decimal.Decimal {
	return i.oldUnitPrice
}

// Quantity returns the number of units requested.
func (i BasketItem) Quantity() int {
	return i.quantity
}

// PictureURL returns the product image location, empty when unknown.
func (i BasketItem) PictureURL() string {
	return i.pictureURL
}

var ErrCustomerBasketIsNotConstructed = errors.New("CustomerBasket must be created via NewCustomerBasket constructor")

// CustomerBasket is an immutable snapshot of a buyer's basket. Item order is
// significant and preserved through pricing and order creation.
type CustomerBasket struct {
	buyerID string
	items   []BasketItem

	guard guard.ConstructorGuard
}

// NewCustomerBasket creates a basket snapshot for the given buyer. The item
// list may be empty; every present item must have been built through
// NewBasketItem.
func NewCustomerBasket(buyerID string, items []BasketItem) (CustomerBasket, error) {
	if buyerID == "" {
		return CustomerBasket{}, errs.NewValueIsRequiredError("BuyerId")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return CustomerBasket{}, err
		}
	}

	copied := make([]BasketItem, len(items))
	copy(copied, items)

	return CustomerBasket{
		buyerID: buyerID,
		items:   copied,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the basket was created through the constructor.
func (b CustomerBasket) Validate() error {
	return b.guard.Validate(ErrCustomerBasketIsNotConstructed)
}

// BuyerID returns the identity of the basket's owner.
func (b CustomerBasket) BuyerID() string {
	return b.buyerID
}

// Items returns the basket lines in their original order.
// The returned slice is a copy; mutating it does not affect the basket.
func (b CustomerBasket) Items() []BasketItem {
	copied := make([]BasketItem, len(b.items))
	copy(copied, b.items)
	return copied
}
