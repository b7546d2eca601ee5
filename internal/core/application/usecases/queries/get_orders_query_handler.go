package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order summaries straight from the database.
// Reads bypass the aggregate and its repositories: list views need no domain
// behavior, only rows.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query := NewGetOrdersQuery()
//
//	summaries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("%d orders on record\n", len(summaries))
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order summary queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all order summaries.
// The total is aggregated over the order's line items in SQL.
// Results are sorted by order number for consistent output.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_date,
			o.status,
			COALESCE(SUM(i.units * i.unit_price), 0) AS total
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		GROUP BY o.id, o.order_date, o.status
		ORDER BY o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary GetOrdersQueryResponse
		var status int
		var total decimal.Decimal

		err = rows.Scan(
			&summary.OrderNumber,
			&summary.Date,
			&status,
			&total,
		)
		if err != nil {
			return nil, err
		}

		summary.Status = order.Status(status).String()
		summary.Total = total
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
