package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apihttp "ordering/internal/adapters/in/http"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRequestLedger keeps processed request ids in memory, mirroring the
// unique-key semantics of the client_requests table.
type fakeRequestLedger struct {
	seen map[string]bool
}

func newFakeRequestLedger() *fakeRequestLedger {
	return &fakeRequestLedger{seen: make(map[string]bool)}
}

func (l *fakeRequestLedger) Record(_ context.Context, requestID kernel.UUID, _ string) error {
	key := requestID.String()
	if l.seen[key] {
		return ports.ErrRequestAlreadyProcessed
	}
	l.seen[key] = true
	return nil
}

// fakeOrderStore implements the order repository and unit of work over a map.
type fakeOrderStore struct {
	orders  map[int64]*order.Order
	nextID  int64
	addCnt  int
	updates int
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[int64]*order.Order), nextID: 1}
}

func (s *fakeOrderStore) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.SetID(s.nextID); err != nil {
		return err
	}
	s.orders[s.nextID] = aggregate
	s.nextID++
	s.addCnt++
	return nil
}

func (s *fakeOrderStore) Update(_ context.Context, aggregate *order.Order) error {
	if _, ok := s.orders[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("orderID", aggregate.ID())
	}
	s.orders[aggregate.ID()] = aggregate
	s.updates++
	return nil
}

func (s *fakeOrderStore) Get(_ context.Context, id int64) (*order.Order, error) {
	aggregate, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}
	return aggregate, nil
}

func (s *fakeOrderStore) GetSubmittedOlderThan(_ context.Context, _ time.Time) ([]*order.Order, error) {
	return nil, nil
}

type fakeUoW struct{ store *fakeOrderStore }

func (u *fakeUoW) Begin(context.Context) error            { return nil }
func (u *fakeUoW) Commit(context.Context) error           { return nil }
func (u *fakeUoW) Rollback(context.Context) error         { return nil }
func (u *fakeUoW) OrderRepository() ports.OrderRepository { return u.store }

type fakeUoWFactory struct{ store *fakeOrderStore }

func (f *fakeUoWFactory) Create() commands.OrderUoW { return &fakeUoW{store: f.store} }

func newTestServer(store *fakeOrderStore) *apihttp.Server {
	factory := &fakeUoWFactory{store: store}
	identified := commands.NewIdentifiedCommandHandler(newFakeRequestLedger(), slog.Default())

	return apihttp.NewServer(
		identified,
		commands.NewCreateOrderCommandHandler(factory),
		commands.NewCancelOrderCommandHandler(factory),
		commands.NewShipOrderCommandHandler(factory),
		commands.NewCreateOrderDraftCommandHandler(services.NewDraftCalculator()),
		queries.GetOrdersQueryHandler{},
		queries.GetOrderByIDQueryHandler{},
		queries.GetCardTypesQueryHandler{},
	)
}

func doRequest(t *testing.T, server *apihttp.Server, method, path, requestID, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	server.RegisterRoutes(e)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(apihttp.RequestIDHeader, requestID)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createOrderBody() string {
	return fmt.Sprintf(`{
		"userId": "1",
		"userName": "TestUser",
		"city": "Seattle",
		"street": "123 Main St",
		"state": "WA",
		"country": "USA",
		"zipCode": "98101",
		"cardNumber": "4012888888881881",
		"cardHolderName": "Test User",
		"cardExpiration": %q,
		"cardSecurityNumber": "123",
		"cardTypeId": 1,
		"items": [{
			"id": "1", "productId": 1, "productName": "Test",
			"unitPrice": 10.2, "oldUnitPrice": 9.1, "quantity": 2, "pictureUrl": ""
		}]
	}`, time.Now().AddDate(2, 0, 0).Format(time.RFC3339))
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, newTestServer(newFakeOrderStore()), http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateOrder(t *testing.T) {
	t.Run("should create an order and return its number", func(t *testing.T) {
		store := newFakeOrderStore()
		rec := doRequest(t, newTestServer(store),
			http.MethodPost, "/api/orders", kernel.NewUUID().String(), createOrderBody())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, store.addCnt)

		var resp struct {
			OrderNumber int64 `json:"orderNumber"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.OrderNumber)
	})

	t.Run("should reject a missing request id", func(t *testing.T) {
		rec := doRequest(t, newTestServer(newFakeOrderStore()),
			http.MethodPost, "/api/orders", "", createOrderBody())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject the nil request id", func(t *testing.T) {
		store := newFakeOrderStore()
		rec := doRequest(t, newTestServer(store),
			http.MethodPost, "/api/orders",
			"00000000-0000-0000-0000-000000000000", createOrderBody())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, store.addCnt)
	})

	t.Run("should reject an empty card number naming the field", func(t *testing.T) {
		body := strings.Replace(createOrderBody(), `"4012888888881881"`, `""`, 1)
		store := newFakeOrderStore()
		rec := doRequest(t, newTestServer(store),
			http.MethodPost, "/api/orders", kernel.NewUUID().String(), body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "CardNumber")
		assert.Zero(t, store.addCnt)
	})

	t.Run("should process a retried request id exactly once", func(t *testing.T) {
		store := newFakeOrderStore()
		server := newTestServer(store)
		requestID := kernel.NewUUID().String()
		body := createOrderBody()

		first := doRequest(t, server, http.MethodPost, "/api/orders", requestID, body)
		second := doRequest(t, server, http.MethodPost, "/api/orders", requestID, body)

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusOK, second.Code)
		assert.Equal(t, 1, store.addCnt)
	})
}

func TestCreateOrderDraft(t *testing.T) {
	t.Run("should price the basket without persisting", func(t *testing.T) {
		store := newFakeOrderStore()
		body := `{
			"buyerId": "1",
			"items": [{
				"id": "1", "productId": 1, "productName": "Test",
				"unitPrice": 10.2, "oldUnitPrice": 9.1, "quantity": 2, "pictureUrl": ""
			}]
		}`
		rec := doRequest(t, newTestServer(store),
			http.MethodPost, "/api/orders/draft", kernel.NewUUID().String(), body)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Zero(t, store.addCnt)

		var resp struct {
			OrderItems []struct {
				ProductID int     `json:"productId"`
				UnitPrice float64 `json:"unitPrice"`
				Quantity  int     `json:"quantity"`
			} `json:"orderItems"`
			Total float64 `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.OrderItems, 1)
		assert.Equal(t, 1, resp.OrderItems[0].ProductID)
		assert.InDelta(t, 20.4, resp.Total, 0.0001)
	})

	t.Run("should reject a missing request id", func(t *testing.T) {
		rec := doRequest(t, newTestServer(newFakeOrderStore()),
			http.MethodPost, "/api/orders/draft", "", `{"buyerId":"1","items":[]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCancelOrder(t *testing.T) {
	t.Run("should cancel an existing order", func(t *testing.T) {
		store := newFakeOrderStore()
		server := newTestServer(store)

		created := doRequest(t, server,
			http.MethodPost, "/api/orders", kernel.NewUUID().String(), createOrderBody())
		require.Equal(t, http.StatusOK, created.Code)

		rec := doRequest(t, server,
			http.MethodPut, "/api/orders/cancel", kernel.NewUUID().String(),
			`{"orderNumber": 1}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, order.Cancelled, store.orders[1].Status())
	})

	t.Run("should reject the nil request id without touching state", func(t *testing.T) {
		rec := doRequest(t, newTestServer(newFakeOrderStore()),
			http.MethodPut, "/api/orders/cancel",
			"00000000-0000-0000-0000-000000000000", `{"orderNumber": 1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should surface a missing order as a server fault", func(t *testing.T) {
		rec := doRequest(t, newTestServer(newFakeOrderStore()),
			http.MethodPut, "/api/orders/cancel", kernel.NewUUID().String(),
			`{"orderNumber": 424242}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestShipOrder(t *testing.T) {
	t.Run("should reject shipping an order that is not paid", func(t *testing.T) {
		store := newFakeOrderStore()
		server := newTestServer(store)

		created := doRequest(t, server,
			http.MethodPost, "/api/orders", kernel.NewUUID().String(), createOrderBody())
		require.Equal(t, http.StatusOK, created.Code)

		rec := doRequest(t, server,
			http.MethodPut, "/api/orders/ship", kernel.NewUUID().String(),
			`{"orderNumber": 1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, order.Submitted, store.orders[1].Status())
	})

	t.Run("should surface a missing order as a server fault", func(t *testing.T) {
		rec := doRequest(t, newTestServer(newFakeOrderStore()),
			http.MethodPut, "/api/orders/ship", kernel.NewUUID().String(),
			`{"orderNumber": 424242}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
