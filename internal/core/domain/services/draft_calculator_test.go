package services_test

import (
	"testing"

	"ordering/internal/core/domain/model/basket"
	"ordering/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basketWith(t *testing.T, items ...basket.BasketItem) basket.CustomerBasket {
	t.Helper()
	b, err := basket.NewCustomerBasket("buyer-1", items)
	require.NoError(t, err)
	return b
}

func item(t *testing.T, productID int, name string, price float64, quantity int) basket.BasketItem {
	t.Helper()
	i, err := basket.NewBasketItem(
		"line", productID, name, decimal.NewFromFloat(price), decimal.Zero, quantity, "")
	require.NoError(t, err)
	return i
}

func TestDraftCalculator_ComputeDraft(t *testing.T) {
	calculator := services.NewDraftCalculator()

	t.Run("should price a single line basket", func(t *testing.T) {
		b := basketWith(t, item(t, 1, "Test Product 1", 10.2, 2))

		draft, err := calculator.ComputeDraft(b)

		require.NoError(t, err)
		require.Len(t, draft.Items, 1)
		assert.Equal(t, 1, draft.Items[0].ProductID)
		assert.Equal(t, "Test Product 1", draft.Items[0].ProductName)
		assert.Equal(t, 2, draft.Items[0].Quantity)
		assert.True(t, decimal.NewFromFloat(20.4).Equal(draft.Total),
			"expected total 20.4, got %s", draft.Total)
	})

	t.Run("should sum line totals over all items", func(t *testing.T) {
		b := basketWith(t,
			item(t, 1, "First", 10.2, 2),
			item(t, 2, "Second", 5, 3),
		)

		draft, err := calculator.ComputeDraft(b)

		require.NoError(t, err)
		assert.Len(t, draft.Items, 2)
		assert.True(t, decimal.NewFromFloat(35.4).Equal(draft.Total))
	})

	t.Run("should preserve basket item ordering", func(t *testing.T) {
		b := basketWith(t,
			item(t, 3, "Third", 1, 1),
			item(t, 1, "First", 1, 1),
			item(t, 2, "Second", 1, 1),
		)

		draft, err := calculator.ComputeDraft(b)

		require.NoError(t, err)
		assert.Equal(t, []int{3, 1, 2}, []int{
			draft.Items[0].ProductID,
			draft.Items[1].ProductID,
			draft.Items[2].ProductID,
		})
	})

	t.Run("should produce empty draft for empty basket", func(t *testing.T) {
		b := basketWith(t)

		draft, err := calculator.ComputeDraft(b)

		require.NoError(t, err)
		assert.Empty(t, draft.Items)
		assert.True(t, draft.Total.IsZero())
	})

	t.Run("should be pure", func(t *testing.T) {
		b := basketWith(t, item(t, 1, "Test", 10.2, 2))

		first, err := calculator.ComputeDraft(b)
		require.NoError(t, err)
		second, err := calculator.ComputeDraft(b)
		require.NoError(t, err)

		assert.Equal(t, first.Items, second.Items)
		assert.True(t, first.Total.Equal(second.Total))
	})

	t.Run("should reject unconstructed basket", func(t *testing.T) {
		_, err := calculator.ComputeDraft(basket.CustomerBasket{})

		require.ErrorIs(t, err, basket.ErrCustomerBasketIsNotConstructed)
	})
}
