package postgres

import (
	"testing"

	"github.com/Lexv0lk/bargain-market/internal/market/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersRepository_GetUser(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		userID string

		prepareFn func(t *testing.T, mock pgxmock.PgxPoolIface)

		expectedUser domain.User
		expectedErr  error
	}

	tests := []testCase{
		{
			name:   "user found",
			userID: "buyer-1",
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("buyer-1").
					WillReturnRows(pgxmock.NewRows([]string{"id", "name", "wallet_balance", "negotiation_limit"}).
						AddRow("buyer-1", "Alice", "100.0000", "0.1000"))
			},
			expectedUser: domain.User{
				ID:               "buyer-1",
				Name:             "Alice",
				WalletBalance:    decimal.RequireFromString("100.0000"),
				NegotiationLimit: decimal.RequireFromString("0.1000"),
			},
		},
		{
			name:   "user not found",
			userID: "ghost",
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("ghost").
					WillReturnRows(pgxmock.NewRows([]string{"id", "name", "wallet_balance", "negotiation_limit"}))
			},
			expectedErr: &domain.UserNotFoundError{},
		},
		{
			name:   "database error",
			userID: "buyer-1",
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("buyer-1").
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

			repo := NewUsersRepository()
			user, err := repo.GetUser(t.Context(), mock, tt.userID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUsersRepository_UpdateBalances(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		updates []domain.BalanceUpdate

		prepareFn func(t *testing.T, mock pgxmock.PgxPoolIface)

		expectedErr error
	}

	updates := []domain.BalanceUpdate{
		{UserID: "buyer-1", NewBalance: decimal.RequireFromString("64")},
		{UserID: "merchant-1", NewBalance: decimal.RequireFromString("536")},
	}

	tests := []testCase{
		{
			name:    "both balances written",
			updates: updates,
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectExec("UPDATE users SET wallet_balance").
					WithArgs(decimalArg("64"), "buyer-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec("UPDATE users SET wallet_balance").
					WithArgs(decimalArg("536"), "merchant-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:    "user vanished",
			updates: updates,
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectExec("UPDATE users SET wallet_balance").
					WithArgs(decimalArg("64"), "buyer-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: &domain.UserNotFoundError{},
		},
		{
			name:    "second write fails",
			updates: updates,
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {
				t.Helper()
				mock.ExpectExec("UPDATE users SET wallet_balance").
					WithArgs(decimalArg("64"), "buyer-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec("UPDATE users SET wallet_balance").
					WithArgs(decimalArg("536"), "merchant-1").
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:      "nothing to write",
			prepareFn: func(t *testing.T, mock pgxmock.PgxPoolIface) {},
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

			repo := NewUsersRepository()
			err = repo.UpdateBalances(t.Context(), mock, tt.updates...)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
