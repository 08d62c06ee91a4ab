package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Lexv0lk/bargain-market/internal/pkg/logging"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -source=transactions.go -destination=../../../gen/mocks/database/transactions_mock.go -package=mocks

const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

// ErrRetriesExhausted is returned when every attempt of a transaction was
// aborted by a write conflict.
var ErrRetriesExhausted = errors.New("transaction retries exhausted")

type TxManager interface {
	WithinTransaction(ctx context.Context, txFn TxFunc) error
}

// TxFunc must not produce side effects outside the executor: it is re-run from
// scratch when the transaction is retried.
type TxFunc func(ctx context.Context, executor QueryExecuter) error

type RetryPolicy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts:     5,
	InitialInterval: 10 * time.Millisecond,
	MaxInterval:     200 * time.Millisecond,
}

type DelegateTxManager struct {
	txBeginner TxBeginner
	policy     RetryPolicy
	logger     logging.Logger
}

func NewDelegateTxManager(txBeginner TxBeginner, policy RetryPolicy, logger logging.Logger) *DelegateTxManager {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}

	return &DelegateTxManager{
		txBeginner: txBeginner,
		policy:     policy,
		logger:     logger,
	}
}

// WithinTransaction runs txFn inside a serializable transaction. Attempts that
// fail with a serialization failure or a deadlock are rolled back and retried
// with fresh reads until the retry policy is exhausted.
func (tm *DelegateTxManager) WithinTransaction(ctx context.Context, txFn TxFunc) error {
	attempt := 0
	var lastConflict error

	operation := func() error {
		attempt++

		err := tm.runOnce(ctx, txFn)
		if err == nil {
			return nil
		}

		if IsWriteConflict(err) {
			lastConflict = err
			tm.logger.Warn("transaction conflict, retrying", "attempt", attempt, "error", err.Error())
			return err
		}

		return backoff.Permanent(err)
	}

	err := backoff.Retry(operation, backoff.WithContext(tm.newBackOff(), ctx))
	if err == nil {
		return nil
	}

	if lastConflict != nil && errors.Is(err, lastConflict) {
		return fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempt, err)
	}

	return err
}

func (tm *DelegateTxManager) runOnce(ctx context.Context, txFn TxFunc) error {
	tx, err := tm.txBeginner.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.Serializable,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			tm.logger.Error("failed to rollback transaction", "error", err.Error())
		}
	}()

	// logic errors reach the caller unchanged
	if err := txFn(ctx, tx); err != nil {
		return err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (tm *DelegateTxManager) newBackOff() backoff.BackOff {
	expBackOff := backoff.NewExponentialBackOff()
	expBackOff.InitialInterval = tm.policy.InitialInterval
	expBackOff.MaxInterval = tm.policy.MaxInterval
	expBackOff.MaxElapsedTime = 0

	return backoff.WithMaxRetries(expBackOff, uint64(tm.policy.MaxAttempts-1))
}

// IsWriteConflict reports whether err was caused by PostgreSQL aborting the
// transaction in favour of a concurrent one.
func IsWriteConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == sqlStateSerializationFailure || pgErr.Code == sqlStateDeadlockDetected
}
