package queries

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order with its line items,
// shipping address and status history.
//
// Example:
//
//	query, err := NewGetOrderByIDQuery(42)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderByIDQueryHandler(db)
//	order, err := handler.Handle(ctx, query)
type GetOrderByIDQuery struct {
	orderNumber int64

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for the given order number.
// The order number must be positive.
func NewGetOrderByIDQuery(orderNumber int64) (GetOrderByIDQuery, error) {
	if orderNumber <= 0 {
		return GetOrderByIDQuery{}, errs.NewValueIsRequiredError("OrderNumber")
	}

	return GetOrderByIDQuery{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByIDQueryIsNotConstructed if validation fails.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderNumber returns the order to look up.
func (q GetOrderByIDQuery) OrderNumber() int64 {
	return q.orderNumber
}

// GetOrderByIDQueryResponse is the full read model of one order.
type GetOrderByIDQueryResponse struct {
	OrderNumber int64
	Date        time.Time
	Status      string
	Street      string
	City        string
	State       string
	Country     string
	ZipCode     string
	Items       []OrderItemResponse
	History     []StatusChangeResponse
	Total       decimal.Decimal
}

// OrderItemResponse is one line item of an order read model.
type OrderItemResponse struct {
	ProductName string
	Units       int
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	PictureURL  string
}

// StatusChangeResponse is one entry of the order's status history.
type StatusChangeResponse struct {
	Status      string
	ChangedAt   time.Time
	Description string
}
