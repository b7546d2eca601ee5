package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress("123 Main St", "Seattle", "WA", "USA", "98101")
	require.NoError(t, err)
	return address
}

func validPayment(t *testing.T) order.PaymentDetails {
	t.Helper()
	payment, err := order.NewPaymentDetails(
		1, "4012888888881881", "John Doe", time.Now().AddDate(2, 0, 0), "123")
	require.NoError(t, err)
	return payment
}

func validItems(t *testing.T) []order.OrderItem {
	t.Helper()
	item, err := order.NewOrderItem(12, "Test", decimal.NewFromInt(10), decimal.Zero, 1, "")
	require.NoError(t, err)
	return []order.OrderItem{item}
}

func newSubmittedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder("buyer-1", validAddress(t), validPayment(t), validItems(t))
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in Submitted status with one history entry", func(t *testing.T) {
		o := newSubmittedOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Submitted, o.Status())
		assert.Equal(t, "buyer-1", o.BuyerID())
		assert.Len(t, o.Items(), 1)

		history := o.StatusHistory()
		require.Len(t, history, 1)
		assert.Equal(t, order.Submitted, history[0].Status)
		assert.Equal(t, "Order was created", history[0].Description)
		assert.WithinDuration(t, time.Now().UTC(), history[0].ChangedAt, time.Minute)
	})

	t.Run("should reject empty item list", func(t *testing.T) {
		_, err := order.NewOrder("buyer-1", validAddress(t), validPayment(t), nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "OrderItems")
	})

	t.Run("should reject missing buyer", func(t *testing.T) {
		_, err := order.NewOrder("", validAddress(t), validPayment(t), validItems(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "BuyerId")
	})

	t.Run("should reject unconstructed payment details", func(t *testing.T) {
		_, err := order.NewOrder("buyer-1", validAddress(t), order.PaymentDetails{}, validItems(t))

		require.ErrorIs(t, err, order.ErrPaymentDetailsAreNotConstructed)
	})

	t.Run("should reject unconstructed address", func(t *testing.T) {
		_, err := order.NewOrder("buyer-1", order.Address{}, validPayment(t), validItems(t))

		require.ErrorIs(t, err, order.ErrAddressIsNotConstructed)
	})
}

func TestOrder_SetID(t *testing.T) {
	t.Run("should assign id once", func(t *testing.T) {
		o := newSubmittedOrder(t)

		require.NoError(t, o.SetID(42))
		assert.Equal(t, int64(42), o.ID())

		require.ErrorIs(t, o.SetID(43), order.ErrOrderIDAlreadyAssigned)
	})

	t.Run("should reject non-positive id", func(t *testing.T) {
		o := newSubmittedOrder(t)

		require.Error(t, o.SetID(0))
	})
}

func TestOrder_Transitions(t *testing.T) {
	t.Run("full happy path appends history per transition", func(t *testing.T) {
		o := newSubmittedOrder(t)

		require.NoError(t, o.SetAwaitingStockValidationStatus())
		require.NoError(t, o.SetStockConfirmedStatus())
		require.NoError(t, o.SetPaidStatus())
		require.NoError(t, o.SetShippedStatus())

		assert.Equal(t, order.Shipped, o.Status())
		history := o.StatusHistory()
		require.Len(t, history, 5)
		assert.Equal(t, order.Submitted, history[0].Status)
		assert.Equal(t, order.AwaitingStockValidation, history[1].Status)
		assert.Equal(t, order.StockConfirmed, history[2].Status)
		assert.Equal(t, order.Paid, history[3].Status)
		assert.Equal(t, order.Shipped, history[4].Status)
	})

	t.Run("shipping a Submitted order fails and mutates nothing", func(t *testing.T) {
		o := newSubmittedOrder(t)

		err := o.SetShippedStatus()

		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Submitted, o.Status())
		assert.Len(t, o.StatusHistory(), 1)
	})

	t.Run("stock rejection cancels the order", func(t *testing.T) {
		o := newSubmittedOrder(t)
		require.NoError(t, o.SetAwaitingStockValidationStatus())

		require.NoError(t, o.SetStockRejectedStatus())

		assert.Equal(t, order.Cancelled, o.Status())
		history := o.StatusHistory()
		assert.Contains(t, history[len(history)-1].Description, "rejected by stock")
	})

	t.Run("cancel succeeds from every non-terminal status", func(t *testing.T) {
		advance := map[string]func(o *order.Order){
			"Submitted": func(*order.Order) {},
			"AwaitingStockValidation": func(o *order.Order) {
				require.NoError(t, o.SetAwaitingStockValidationStatus())
			},
			"StockConfirmed": func(o *order.Order) {
				require.NoError(t, o.SetAwaitingStockValidationStatus())
				require.NoError(t, o.SetStockConfirmedStatus())
			},
			"Paid": func(o *order.Order) {
				require.NoError(t, o.SetAwaitingStockValidationStatus())
				require.NoError(t, o.SetStockConfirmedStatus())
				require.NoError(t, o.SetPaidStatus())
			},
		}

		for name, setup := range advance {
			t.Run(name, func(t *testing.T) {
				o := newSubmittedOrder(t)
				setup(o)

				require.NoError(t, o.SetCancelledStatus())
				assert.Equal(t, order.Cancelled, o.Status())
			})
		}
	})

	t.Run("terminal orders accept no further transitions", func(t *testing.T) {
		o := newSubmittedOrder(t)
		require.NoError(t, o.SetCancelledStatus())
		historyLen := len(o.StatusHistory())

		require.ErrorIs(t, o.SetCancelledStatus(), order.ErrInvalidStatusTransition)
		require.ErrorIs(t, o.SetShippedStatus(), order.ErrInvalidStatusTransition)
		require.ErrorIs(t, o.SetAwaitingStockValidationStatus(), order.ErrInvalidStatusTransition)

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Len(t, o.StatusHistory(), historyLen)
	})
}

func TestOrder_Total(t *testing.T) {
	item1, err := order.NewOrderItem(1, "First", decimal.NewFromFloat(10.2), decimal.Zero, 2, "")
	require.NoError(t, err)
	item2, err := order.NewOrderItem(2, "Second", decimal.NewFromInt(5), decimal.NewFromInt(1), 3, "")
	require.NoError(t, err)

	o, err := order.NewOrder("buyer-1", validAddress(t), validPayment(t), []order.OrderItem{item1, item2})
	require.NoError(t, err)

	// 10.2*2 + (5*3 - 1) = 34.4
	assert.True(t, decimal.NewFromFloat(34.4).Equal(o.Total()))
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore persisted state verbatim", func(t *testing.T) {
		created := newSubmittedOrder(t)
		require.NoError(t, created.SetID(7))

		restored, err := order.RestoreOrder(
			created.ID(),
			created.BuyerID(),
			created.Address(),
			created.PaymentDetails(),
			created.Items(),
			created.Status(),
			created.StatusHistory(),
			created.OrderDate(),
			3,
		)

		require.NoError(t, err)
		assert.Equal(t, int64(7), restored.ID())
		assert.Equal(t, order.Submitted, restored.Status())
		assert.Equal(t, 3, restored.Version())
		assert.Len(t, restored.StatusHistory(), 1)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		created := newSubmittedOrder(t)

		_, err := order.RestoreOrder(
			1, created.BuyerID(), created.Address(), created.PaymentDetails(),
			created.Items(), order.Unknown, created.StatusHistory(), created.OrderDate(), 0)

		require.Error(t, err)
	})
}

func TestNewPaymentDetails(t *testing.T) {
	expiry := time.Now().AddDate(1, 0, 0)

	t.Run("should mask the card number", func(t *testing.T) {
		payment, err := order.NewPaymentDetails(1, "4012888888881881", "John Doe", expiry, "123")

		require.NoError(t, err)
		assert.Equal(t, "XXXXXXXXXXXX1881", payment.MaskedCardNumber())
		assert.NotContains(t, payment.MaskedCardNumber(), "4012888888")
	})

	t.Run("should reject empty card number naming the field", func(t *testing.T) {
		_, err := order.NewPaymentDetails(1, "", "John Doe", expiry, "123")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "CardNumber")
	})

	t.Run("should reject expired card", func(t *testing.T) {
		_, err := order.NewPaymentDetails(1, "4012888888881881", "John Doe", time.Now().AddDate(-1, 0, 0), "123")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "CardExpiration")
	})

	t.Run("should reject missing holder name", func(t *testing.T) {
		_, err := order.NewPaymentDetails(1, "4012888888881881", "", expiry, "123")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "CardHolderName")
	})

	t.Run("should reject invalid card type", func(t *testing.T) {
		_, err := order.NewPaymentDetails(0, "4012888888881881", "John Doe", expiry, "123")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "CardTypeId")
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("should reject each missing field naming it", func(t *testing.T) {
		cases := []struct {
			field string
			build func() (order.Address, error)
		}{
			{"Street", func() (order.Address, error) { return order.NewAddress("", "c", "s", "co", "z") }},
			{"City", func() (order.Address, error) { return order.NewAddress("st", "", "s", "co", "z") }},
			{"State", func() (order.Address, error) { return order.NewAddress("st", "c", "", "co", "z") }},
			{"Country", func() (order.Address, error) { return order.NewAddress("st", "c", "s", "", "z") }},
			{"ZipCode", func() (order.Address, error) { return order.NewAddress("st", "c", "s", "co", "") }},
		}

		for _, tc := range cases {
			_, err := tc.build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)
		}
	})
}
