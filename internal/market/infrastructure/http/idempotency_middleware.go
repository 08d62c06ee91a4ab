package http

import (
	"bytes"
	"context"
	"net/http"

	"github.com/Lexv0lk/bargain-market/internal/market/domain"
	"github.com/Lexv0lk/bargain-market/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	IdempotencyHitHeader = "X-Idempotency-Hit"
)

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *bodyRecorder) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}

// NewIdempotencyMiddleware replays the stored response for a repeated
// Idempotency-Key of the same user. The key is reserved before the handler
// runs, so a concurrent request with the same key gets 409 instead of running
// twice. Server errors release the key so the request can be retried. A store
// that cannot reserve lets the request through.
func NewIdempotencyMiddleware(store domain.IdempotencyRepository, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		scopedKey := userIDFrom(c) + ":" + key

		reserved, err := store.Reserve(ctx, scopedKey, domain.IdempotencyLockTTL)
		if err != nil {
			logger.Error("failed to reserve idempotency key", "error", err.Error())
			c.Next()
			return
		}

		if !reserved {
			replayStored(c, store, scopedKey, logger)
			return
		}

		recorder := &bodyRecorder{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = recorder

		c.Next()

		// the purchase may have committed after the client went away
		storeCtx := context.WithoutCancel(ctx)

		if recorder.Status() >= http.StatusInternalServerError {
			if err := store.Release(storeCtx, scopedKey); err != nil {
				logger.Error("failed to release idempotency key", "error", err.Error())
			}
			return
		}

		err = store.Save(storeCtx, scopedKey, domain.CachedResponse{
			StatusCode: recorder.Status(),
			Body:       recorder.body.Bytes(),
		}, domain.IdempotencyTTL)
		if err != nil {
			logger.Error("failed to save idempotency key", "error", err.Error())
		}
	}
}

func replayStored(c *gin.Context, store domain.IdempotencyRepository, scopedKey string, logger logging.Logger) {
	cached, err := store.Get(c.Request.Context(), scopedKey)
	if err != nil {
		logger.Error("failed to read idempotency key", "error", err.Error())
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, errorResponse{
			Kind:   domain.KindTransient.String(),
			Errors: "idempotency store unavailable, try again",
		})
		return
	}

	if cached == nil {
		c.AbortWithStatusJSON(http.StatusConflict, errorResponse{
			Kind:   domain.KindFailedPrecondition.String(),
			Errors: "a request with this idempotency key is still in progress",
		})
		return
	}

	c.Header(IdempotencyHitHeader, "true")
	c.Data(cached.StatusCode, "application/json; charset=utf-8", cached.Body)
	c.Abort()
}
