package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/bargain-market/internal/market/domain"
	"github.com/Lexv0lk/bargain-market/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type UsersRepository struct{}

func NewUsersRepository() *UsersRepository {
	return &UsersRepository{}
}

func (ur *UsersRepository) GetUser(ctx context.Context, querier database.Querier, userID string) (domain.User, error) {
	findUserSQL := `SELECT id, name, wallet_balance, negotiation_limit FROM users WHERE id = $1`

	var user domain.User
	err := querier.QueryRow(ctx, findUserSQL, userID).
		Scan(&user.ID, &user.Name, &user.WalletBalance, &user.NegotiationLimit)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user %s not found", userID)}
		}

		return domain.User{}, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

func (ur *UsersRepository) UpdateBalances(ctx context.Context, executor database.Executor, updates ...domain.BalanceUpdate) error {
	updateBalanceSQL := `UPDATE users SET wallet_balance = $1 WHERE id = $2`

	for _, update := range updates {
		tag, err := executor.Exec(ctx, updateBalanceSQL, update.NewBalance, update.UserID)
		if err != nil {
			return fmt.Errorf("failed to update balance of user %s: %w", update.UserID, err)
		} else if tag.RowsAffected() == 0 {
			return &domain.UserNotFoundError{Msg: fmt.Sprintf("user %s not found", update.UserID)}
		}
	}

	return nil
}
