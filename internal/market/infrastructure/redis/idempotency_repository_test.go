package redis

import (
	"testing"
	"time"

	"github.com/Lexv0lk/bargain-market/internal/market/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*IdempotencyRepository, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewIdempotencyRepository(client), server
}

func TestIdempotencyRepository_SaveAndGet(t *testing.T) {
	t.Parallel()

	repo, server := newTestRepository(t)

	response := domain.CachedResponse{
		StatusCode: 200,
		Body:       []byte(`{"success":true,"receiptId":"r-1"}`),
	}

	require.NoError(t, repo.Save(t.Context(), "buyer-1:key-1", response, time.Hour))

	assert.True(t, server.Exists("idempotency:buyer-1:key-1"))
	assert.Equal(t, time.Hour, server.TTL("idempotency:buyer-1:key-1"))

	cached, err := repo.Get(t.Context(), "buyer-1:key-1")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, response, *cached)
}

func TestIdempotencyRepository_GetMissing(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	cached, err := repo.Get(t.Context(), "buyer-1:unknown")
	assert.NoError(t, err)
	assert.Nil(t, cached)
}

func TestIdempotencyRepository_Expired(t *testing.T) {
	t.Parallel()

	repo, server := newTestRepository(t)

	require.NoError(t, repo.Save(t.Context(), "buyer-1:key-2", domain.CachedResponse{StatusCode: 409}, time.Minute))
	server.FastForward(2 * time.Minute)

	cached, err := repo.Get(t.Context(), "buyer-1:key-2")
	assert.NoError(t, err)
	assert.Nil(t, cached)
}

func TestIdempotencyRepository_CorruptedValue(t *testing.T) {
	t.Parallel()

	repo, server := newTestRepository(t)

	require.NoError(t, server.Set("idempotency:buyer-1:key-3", "not-json"))

	cached, err := repo.Get(t.Context(), "buyer-1:key-3")
	assert.Error(t, err)
	assert.Nil(t, cached)
}

func TestIdempotencyRepository_Reserve(t *testing.T) {
	t.Parallel()

	repo, server := newTestRepository(t)

	reserved, err := repo.Reserve(t.Context(), "buyer-1:key-5", time.Minute)
	require.NoError(t, err)
	assert.True(t, reserved)
	assert.Equal(t, time.Minute, server.TTL("idempotency:buyer-1:key-5"))

	reserved, err = repo.Reserve(t.Context(), "buyer-1:key-5", time.Minute)
	require.NoError(t, err)
	assert.False(t, reserved)

	cached, err := repo.Get(t.Context(), "buyer-1:key-5")
	require.NoError(t, err)
	assert.Nil(t, cached)

	response := domain.CachedResponse{StatusCode: 200, Body: []byte(`{"receiptId":"r-5"}`)}
	require.NoError(t, repo.Save(t.Context(), "buyer-1:key-5", response, time.Hour))

	reserved, err = repo.Reserve(t.Context(), "buyer-1:key-5", time.Minute)
	require.NoError(t, err)
	assert.False(t, reserved)

	cached, err = repo.Get(t.Context(), "buyer-1:key-5")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, response, *cached)
}

func TestIdempotencyRepository_Release(t *testing.T) {
	t.Parallel()

	repo, server := newTestRepository(t)

	reserved, err := repo.Reserve(t.Context(), "buyer-1:key-6", time.Minute)
	require.NoError(t, err)
	require.True(t, reserved)

	require.NoError(t, repo.Release(t.Context(), "buyer-1:key-6"))
	assert.False(t, server.Exists("idempotency:buyer-1:key-6"))

	reserved, err = repo.Reserve(t.Context(), "buyer-1:key-6", time.Minute)
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestIdempotencyRepository_ServerDown(t *testing.T) {
	t.Parallel()

	repo, server := newTestRepository(t)
	server.Close()

	_, err := repo.Get(t.Context(), "buyer-1:key-4")
	assert.Error(t, err)

	err = repo.Save(t.Context(), "buyer-1:key-4", domain.CachedResponse{StatusCode: 200}, time.Minute)
	assert.Error(t, err)

	_, err = repo.Reserve(t.Context(), "buyer-1:key-4", time.Minute)
	assert.Error(t, err)

	err = repo.Release(t.Context(), "buyer-1:key-4")
	assert.Error(t, err)
}
