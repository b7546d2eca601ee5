package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves one order with its items and history.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

type historyEntryRow struct {
	Status      int       `json:"status"`
	ChangedAt   time.Time `json:"changed_at"`
	Description string    `json:"description"`
}

// Handle executes the lookup. Returns an object-not-found error when no order
// exists with the requested number.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	var resp GetOrderByIDQueryResponse
	var status int
	var history []byte

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_date,
			status,
			street,
			city,
			state,
			country,
			zip_code,
			history
		FROM orders
		WHERE id = ?
	`, query.OrderNumber()).Row()

	err := row.Scan(
		&resp.OrderNumber,
		&resp.Date,
		&status,
		&resp.Street,
		&resp.City,
		&resp.State,
		&resp.Country,
		&resp.ZipCode,
		&history,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderByIDQueryResponse{},
			errs.NewObjectNotFoundError("orderID", query.OrderNumber())
	}
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	resp.Status = order.Status(status).String()

	var entries []historyEntryRow
	if len(history) > 0 {
		if err = json.Unmarshal(history, &entries); err != nil {
			return GetOrderByIDQueryResponse{}, err
		}
	}
	resp.History = make([]StatusChangeResponse, 0, len(entries))
	for _, e := range entries {
		resp.History = append(resp.History, StatusChangeResponse{
			Status:      order.Status(e.Status).String(),
			ChangedAt:   e.ChangedAt,
			Description: e.Description,
		})
	}

	items, total, err := h.loadItems(ctx, query.OrderNumber())
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	resp.Items = items
	resp.Total = total

	return resp, nil
}

func (h GetOrderByIDQueryHandler) loadItems(
	ctx context.Context,
	orderNumber int64,
) ([]OrderItemResponse, decimal.Decimal, error) {
	items := make([]OrderItemResponse, 0)
	total := decimal.Zero

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_name,
			units,
			unit_price,
			discount,
			picture_url
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderNumber).Rows()
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		err = rows.Scan(
			&item.ProductName,
			&item.Units,
			&item.UnitPrice,
			&item.Discount,
			&item.PictureURL,
		)
		if err != nil {
			return nil, decimal.Zero, err
		}

		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Units))))
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, decimal.Zero, err
	}

	return items, total, nil
}
