// Package http is the inbound HTTP adapter: echo handlers that translate the
// wire surface into commands and queries. Mutating endpoints require the
// x-requestid header; its value keys request deduplication.
package http

import (
	"context"
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/basket"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// RequestIDHeader carries the client-supplied request id on every mutating
// endpoint.
const RequestIDHeader = "x-requestid"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	identifiedHandler commands.IdentifiedCommandHandler

	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler
	shipOrderHandler   commands.ShipOrderCommandHandler
	draftHandler       commands.CreateOrderDraftCommandHandler

	// Query handlers
	getOrdersHandler    queries.GetOrdersQueryHandler
	getOrderByIDHandler queries.GetOrderByIDQueryHandler
	getCardTypesHandler queries.GetCardTypesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	identifiedHandler commands.IdentifiedCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	draftHandler commands.CreateOrderDraftCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getCardTypesHandler queries.GetCardTypesQueryHandler,
) *Server {
	return &Server{
		identifiedHandler:   identifiedHandler,
		createOrderHandler:  createOrderHandler,
		cancelOrderHandler:  cancelOrderHandler,
		shipOrderHandler:    shipOrderHandler,
		draftHandler:        draftHandler,
		getOrdersHandler:    getOrdersHandler,
		getOrderByIDHandler: getOrderByIDHandler,
		getCardTypesHandler: getCardTypesHandler,
	}
}

// RegisterRoutes attaches every handler to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/api/orders", s.GetOrders)
	e.GET("/api/orders/cardtypes", s.GetCardTypes)
	e.GET("/api/orders/:id", s.GetOrderByID)
	e.POST("/api/orders", s.CreateOrder)
	e.POST("/api/orders/draft", s.CreateOrderDraft)
	e.PUT("/api/orders/cancel", s.CancelOrder)
	e.PUT("/api/orders/ship", s.ShipOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /api/orders - retrieves all order summaries.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()

	summaries, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, OrderSummaryResponse{
			OrderNumber: summary.OrderNumber,
			Date:        summary.Date,
			Status:      summary.Status,
			Total:       summary.Total.InexactFloat64(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /api/orders/:id - retrieves one order.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	var orderNumber int64
	if err := echo.PathParamsBinder(ctx).Int64("id", &orderNumber).BindError(); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderByIDQuery(orderNumber)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	result, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result))
}

// GetCardTypes handles GET /api/orders/cardtypes - retrieves accepted card types.
func (s *Server) GetCardTypes(ctx echo.Context) error {
	cardTypes, err := s.getCardTypesHandler.Handle(ctx.Request().Context(), queries.NewGetCardTypesQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve card types",
		})
	}

	response := make([]CardTypeResponse, 0, len(cardTypes))
	for _, cardType := range cardTypes {
		response = append(response, CardTypeResponse{ID: cardType.ID, Name: cardType.Name})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders - creates a new order.
// Requires the x-requestid header; a retried request id is acknowledged with
// 200 and no new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	requestID, err := s.requestID(ctx)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	basketItems, err := toBasketItems(req.Items)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.UserID, req.UserName,
		req.Street, req.City, req.State, req.Country, req.ZipCode,
		req.CardNumber, req.CardHolderName, req.CardExpiration,
		req.CardSecurityNumber, req.CardTypeID,
		basketItems,
	)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	var orderNumber int64
	err = s.identifiedHandler.Handle(ctx.Request().Context(), requestID, "CreateOrderCommand",
		func(c context.Context) error {
			var handleErr error
			orderNumber, handleErr = s.createOrderHandler.Handle(c, cmd)
			return handleErr
		})
	if err != nil {
		return s.mapCommandError(ctx, err)
	}

	if orderNumber == 0 {
		// Duplicate request: already acknowledged, no new order was created.
		return ctx.NoContent(http.StatusOK)
	}

	return ctx.JSON(http.StatusOK, CreatedOrderResponse{OrderNumber: orderNumber})
}

// CreateOrderDraft handles POST /api/orders/draft - prices a basket without
// persisting anything. The x-requestid header is still required, but drafts
// are pure and therefore not deduplicated.
func (s *Server) CreateOrderDraft(ctx echo.Context) error {
	if _, err := s.requestID(ctx); err != nil {
		return s.badRequest(ctx, err)
	}

	var req CreateOrderDraftRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	basketItems, err := toBasketItems(req.Items)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	customerBasket, err := basket.NewCustomerBasket(req.BuyerID, basketItems)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateOrderDraftCommand(customerBasket)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	draft, err := s.draftHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDraftResponse(draft))
}

// CancelOrder handles PUT /api/orders/cancel - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	requestID, err := s.requestID(ctx)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(req.OrderNumber)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	err = s.identifiedHandler.Handle(ctx.Request().Context(), requestID, "CancelOrderCommand",
		func(c context.Context) error {
			return s.cancelOrderHandler.Handle(c, cmd)
		})
	if err != nil {
		return s.mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ShipOrder handles PUT /api/orders/ship - ships an order.
func (s *Server) ShipOrder(ctx echo.Context) error {
	requestID, err := s.requestID(ctx)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	var req ShipOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewShipOrderCommand(req.OrderNumber)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	err = s.identifiedHandler.Handle(ctx.Request().Context(), requestID, "ShipOrderCommand",
		func(c context.Context) error {
			return s.shipOrderHandler.Handle(c, cmd)
		})
	if err != nil {
		return s.mapCommandError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// requestID extracts and validates the x-requestid header. The missing header,
// a malformed value and the nil UUID are all client errors.
func (s *Server) requestID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(RequestIDHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("x-requestid")
	}

	requestID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("x-requestid", err)
	}

	if err = requestID.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	return requestID, nil
}

func (s *Server) badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// mapCommandError translates domain failures into wire responses. A
// cancel/ship of a missing order deliberately surfaces as a server fault, not
// a 404: clients depend on the long-standing behavior.
func (s *Server) mapCommandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return s.badRequest(ctx, err)
	case errors.Is(err, order.ErrInvalidStatusTransition):
		return s.badRequest(ctx, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process the request",
		})
	}
}

func toBasketItems(items []BasketItemRequest) ([]basket.BasketItem, error) {
	basketItems := make([]basket.BasketItem, 0, len(items))
	for _, item := range items {
		basketItem, err := basket.NewBasketItem(
			item.ID,
			item.ProductID,
			item.ProductName,
			decimal.NewFromFloat(item.UnitPrice),
			decimal.NewFromFloat(item.OldUnitPrice),
			item.Quantity,
			item.PictureURL,
		)
		if err != nil {
			return nil, err
		}
		basketItems = append(basketItems, basketItem)
	}
	return basketItems, nil
}
