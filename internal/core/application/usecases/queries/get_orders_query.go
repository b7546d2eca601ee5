package queries

import (
	"errors"
	"time"

	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves summaries of all orders for list views.
// Each summary carries the order number, date, current status and the
// order total computed from its line items.
//
// Example:
//
//	query := NewGetOrdersQuery()
//	handler := NewGetOrdersQueryHandler(db)
//
//	summaries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
//
//	for _, s := range summaries {
//	    fmt.Printf("Order %d: %s, total %s\n", s.OrderNumber, s.Status, s.Total)
//	}
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve order summaries.
// This is a parameterless query that fetches every stored order.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse is one order summary row.
// Total is the sum of units times unit price over the order's items.
type GetOrdersQueryResponse struct {
	OrderNumber int64
	Date        time.Time
	Status      string
	Total       decimal.Decimal
}
