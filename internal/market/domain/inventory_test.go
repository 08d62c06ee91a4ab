package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserve(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		stock    int
		quantity int

		expectedQuantity int
		expectedErr      error
	}

	tests := []testCase{
		{name: "partial stock", stock: 10, quantity: 2, expectedQuantity: 8},
		{name: "last units", stock: 3, quantity: 3, expectedQuantity: 0},
		{name: "not enough stock", stock: 1, quantity: 2, expectedErr: &OutOfStockError{}},
		{name: "empty stock", stock: 0, quantity: 1, expectedErr: &OutOfStockError{}},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			product := Product{ID: "p-1", Name: "cup", Price: decimal.NewFromInt(20), Quantity: tt.stock}
			newQuantity, err := Reserve(product, tt.quantity)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Contains(t, err.Error(), "cup")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedQuantity, newQuantity)
		})
	}
}

func TestStockLedger(t *testing.T) {
	t.Parallel()

	cup := Product{ID: "p-cup", Name: "cup", Quantity: 5}
	pen := Product{ID: "p-pen", Name: "pen", Quantity: 2}

	t.Run("repeated product is reserved cumulatively", func(t *testing.T) {
		t.Parallel()

		ledger := NewStockLedger()
		require.NoError(t, ledger.Reserve(cup, 2))
		require.NoError(t, ledger.Reserve(pen, 1))
		require.NoError(t, ledger.Reserve(cup, 3))

		assert.Equal(t, []StockUpdate{
			{ProductID: "p-cup", NewQuantity: 0},
			{ProductID: "p-pen", NewQuantity: 1},
		}, ledger.Updates())
	})

	t.Run("repeated product exceeding stock fails", func(t *testing.T) {
		t.Parallel()

		ledger := NewStockLedger()
		require.NoError(t, ledger.Reserve(pen, 2))

		err := ledger.Reserve(pen, 1)
		assert.ErrorIs(t, err, &OutOfStockError{})
	})

	t.Run("empty ledger", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, NewStockLedger().Updates())
	})
}
