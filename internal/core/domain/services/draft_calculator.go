package services

import (
	"ordering/internal/core/domain/model/basket"

	"github.com/shopspring/decimal"
)

// DraftItem is the priced projection of one basket line inside a draft.
type DraftItem struct {
	ProductID   int
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	PictureURL  string
}

// OrderDraft is a priced preview of a basket that has not been persisted as a
// real order.
type OrderDraft struct {
	Items []DraftItem
	Total decimal.Decimal
}

// DraftCalculator is a stateless domain service that prices a customer basket
// without creating an order.
//
// ComputeDraft is a pure function: it has no side effects, is safe for
// concurrent use, and identical baskets always produce identical drafts.
type DraftCalculator struct{}

// NewDraftCalculator creates a new DraftCalculator instance.
func NewDraftCalculator() DraftCalculator {
	return DraftCalculator{}
}

// ComputeDraft turns a basket snapshot into priced line projections and a
// total. The line total of each item is unitPrice*quantity; the draft total
// is the sum over all lines. Item ordering is preserved from the basket.
// An empty basket produces an empty draft with a zero total.
func (DraftCalculator) ComputeDraft(customerBasket basket.CustomerBasket) (OrderDraft, error) {
	if err := customerBasket.Validate(); err != nil {
		return OrderDraft{}, err
	}

	basketItems := customerBasket.Items()
	items := make([]DraftItem, 0, len(basketItems))
	total := decimal.Zero

	for _, item := range basketItems {
		if err := item.Validate(); err != nil {
			return OrderDraft{}, err
		}

		items = append(items, DraftItem{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			PictureURL:  item.PictureURL(),
		})
		total = total.Add(item.UnitPrice().Mul(decimal.NewFromInt(int64(item.Quantity()))))
	}

	return OrderDraft{Items: items, Total: total}, nil
}
