package http

import (
	"net/http"

	"github.com/Lexv0lk/bargain-market/internal/market/domain"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Kind   string `json:"kind"`
	Errors string `json:"errors"`
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindUnauthenticated:
		return http.StatusUnauthorized
	case domain.KindInvalidArgument:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindFailedPrecondition:
		return http.StatusConflict
	case domain.KindTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func handleDomainError(c *gin.Context, err error) {
	kind := domain.KindOf(err)

	msg := err.Error()
	if kind == domain.KindInternal {
		msg = "internal server error"
	}

	c.JSON(statusForKind(kind), errorResponse{Kind: kind.String(), Errors: msg})
}
