package http

import (
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"
)

// ErrorResponse is the uniform error body returned by every handler.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// BasketItemRequest is one basket line as submitted by the client.
type BasketItemRequest struct {
	ID           string  `json:"id"`
	ProductID    int     `json:"productId"`
	ProductName  string  `json:"productName"`
	UnitPrice    float64 `json:"unitPrice"`
	OldUnitPrice float64 `json:"oldUnitPrice"`
	Quantity     int     `json:"quantity"`
	PictureURL   string  `json:"pictureUrl"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	UserID             string              `json:"userId"`
	UserName           string              `json:"userName"`
	City               string              `json:"city"`
	Street             string              `json:"street"`
	State              string              `json:"state"`
	Country            string              `json:"country"`
	ZipCode            string              `json:"zipCode"`
	CardNumber         string              `json:"cardNumber"`
	CardHolderName     string              `json:"cardHolderName"`
	CardExpiration     time.Time           `json:"cardExpiration"`
	CardSecurityNumber string              `json:"cardSecurityNumber"`
	CardTypeID         int                 `json:"cardTypeId"`
	Items              []BasketItemRequest `json:"items"`
}

// CreateOrderDraftRequest is the body of POST /api/orders/draft.
type CreateOrderDraftRequest struct {
	BuyerID string              `json:"buyerId"`
	Items   []BasketItemRequest `json:"items"`
}

// CancelOrderRequest is the body of PUT /api/orders/cancel.
type CancelOrderRequest struct {
	OrderNumber int64 `json:"orderNumber"`
}

// ShipOrderRequest is the body of PUT /api/orders/ship.
type ShipOrderRequest struct {
	OrderNumber int64 `json:"orderNumber"`
}

// OrderSummaryResponse is one element of the GET /api/orders body.
type OrderSummaryResponse struct {
	OrderNumber int64     `json:"orderNumber"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Total       float64   `json:"total"`
}

// OrderItemResponse is one line of an order or draft body.
type OrderItemResponse struct {
	ProductName string  `json:"productName"`
	Units       int     `json:"units"`
	UnitPrice   float64 `json:"unitPrice"`
	Discount    float64 `json:"discount"`
	PictureURL  string  `json:"pictureUrl"`
}

// StatusChangeResponse is one entry of the order's status history.
type StatusChangeResponse struct {
	Status      string    `json:"status"`
	ChangedAt   time.Time `json:"changedAt"`
	Description string    `json:"description"`
}

// OrderResponse is the body of GET /api/orders/:id.
type OrderResponse struct {
	OrderNumber int64                  `json:"orderNumber"`
	Date        time.Time              `json:"date"`
	Status      string                 `json:"status"`
	Street      string                 `json:"street"`
	City        string                 `json:"city"`
	State       string                 `json:"state"`
	Country     string                 `json:"country"`
	ZipCode     string                 `json:"zipCode"`
	OrderItems  []OrderItemResponse    `json:"orderItems"`
	History     []StatusChangeResponse `json:"history"`
	Total       float64                `json:"total"`
}

// CardTypeResponse is one element of the GET /api/orders/cardtypes body.
type CardTypeResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DraftItemResponse is one priced line of an order draft.
type DraftItemResponse struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	PictureURL  string  `json:"pictureUrl"`
}

// OrderDraftResponse is the body of POST /api/orders/draft.
type OrderDraftResponse struct {
	OrderItems []DraftItemResponse `json:"orderItems"`
	Total      float64             `json:"total"`
}

// CreatedOrderResponse is the body of POST /api/orders.
type CreatedOrderResponse struct {
	OrderNumber int64 `json:"orderNumber"`
}

func toOrderResponse(result queries.GetOrderByIDQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, OrderItemResponse{
			ProductName: item.ProductName,
			Units:       item.Units,
			UnitPrice:   item.UnitPrice.InexactFloat64(),
			Discount:    item.Discount.InexactFloat64(),
			PictureURL:  item.PictureURL,
		})
	}

	history := make([]StatusChangeResponse, 0, len(result.History))
	for _, change := range result.History {
		history = append(history, StatusChangeResponse{
			Status:      change.Status,
			ChangedAt:   change.ChangedAt,
			Description: change.Description,
		})
	}

	return OrderResponse{
		OrderNumber: result.OrderNumber,
		Date:        result.Date,
		Status:      result.Status,
		Street:      result.Street,
		City:        result.City,
		State:       result.State,
		Country:     result.Country,
		ZipCode:     result.ZipCode,
		OrderItems:  items,
		History:     history,
		Total:       result.Total.InexactFloat64(),
	}
}

func toOrderDraftResponse(draft services.OrderDraft) OrderDraftResponse {
	items := make([]DraftItemResponse, 0, len(draft.Items))
	for _, item := range draft.Items {
		items = append(items, DraftItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice.InexactFloat64(),
			Quantity:    item.Quantity,
			PictureURL:  item.PictureURL,
		})
	}

	return OrderDraftResponse{
		OrderItems: items,
		Total:      draft.Total.InexactFloat64(),
	}
}
