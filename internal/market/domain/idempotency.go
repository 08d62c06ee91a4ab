package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=idempotency.go -destination=../../../gen/mocks/market/idempotency_mock.go -package=mocks

const (
	IdempotencyTTL = 24 * time.Hour

	// IdempotencyLockTTL bounds how long a key stays in flight when its holder
	// dies before storing a response.
	IdempotencyLockTTL = time.Minute
)

type CachedResponse struct {
	StatusCode int    `json:"status_code"`
	Body       []byte `json:"body"`
}

type IdempotencyRepository interface {
	// Reserve marks key as in flight. It reports false when key is already
	// in flight or holds a stored response.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Get returns nil without error when nothing is stored under key or the
	// key is still in flight.
	Get(ctx context.Context, key string) (*CachedResponse, error)
	// Save replaces the in-flight marker with the final response.
	Save(ctx context.Context, key string, response CachedResponse, ttl time.Duration) error
	// Release drops the in-flight marker so the request can be retried.
	Release(ctx context.Context, key string) error
}
