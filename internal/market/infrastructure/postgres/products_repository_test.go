package postgres

import (
	"testing"

	"github.com/Lexv0lk/bargain-market/internal/market/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsRepository_GetProduct(t *testing.T) {
	t.Parallel()

	columns := []string{"id", "merchant_id", "name", "price", "quantity"}

	type testCase struct {
		name      string
		productID string

		prepareFn func(t *testing.T, mock pgxmock.PgxPoolIface)

		expectedProduct domain.Product
		expectedErr     error
	}

	tests := []testCase{
		{
			name:      "product found",
			productID: "p-cup",
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectQuery("SELECT (.+) FROM products").
					WithArgs("p-cup").
					WillReturnRows(pgxmock.NewRows(columns).AddRow("p-cup", "merchant-1", "cup", "20.0000", 10))
			},
			expectedProduct: domain.Product{
				ID:         "p-cup",
				MerchantID: "merchant-1",
				Name:       "cup",
				Price:      decimal.RequireFromString("20.0000"),
				Quantity:   10,
			},
		},
		{
			name:      "product not found",
			productID: "p-none",
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectQuery("SELECT (.+) FROM products").
					WithArgs("p-none").
					WillReturnRows(pgxmock.NewRows(columns))
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
		{
			name:      "database error",
			productID: "p-cup",
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectQuery("SELECT (.+) FROM products").
					WithArgs("p-cup").
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.prepareFn(t, mock)

			repo := NewProductsRepository()
			product, err := repo.GetProduct(t.Context(), mock, tt.productID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedProduct, product)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProductsRepository_UpdateStock(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		updates []domain.StockUpdate

		prepareFn func(t *testing.T, mock pgxmock.PgxPoolIface)

		expectedErr error
	}

	tests := []testCase{
		{
			name:    "every product written",
			updates: []domain.StockUpdate{{ProductID: "p-cup", NewQuantity: 8}, {ProductID: "p-pen", NewQuantity: 0}},
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectExec("UPDATE products SET quantity").
					WithArgs(8, "p-cup").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec("UPDATE products SET quantity").
					WithArgs(0, "p-pen").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:    "product vanished",
			updates: []domain.StockUpdate{{ProductID: "p-cup", NewQuantity: 8}},
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectExec("UPDATE products SET quantity").
					WithArgs(8, "p-cup").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
		{
			name:    "check constraint violated",
			updates: []domain.StockUpdate{{ProductID: "p-cup", NewQuantity: 8}},
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectExec("UPDATE products SET quantity").
					WithArgs(8, "p-cup").
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.prepareFn(t, mock)

			repo := NewProductsRepository()
			err = repo.UpdateStock(t.Context(), mock, tt.updates...)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
