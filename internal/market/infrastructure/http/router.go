package http

import (
	"github.com/Lexv0lk/bargain-market/internal/market/domain"
	"github.com/Lexv0lk/bargain-market/internal/pkg/jwt"
	"github.com/Lexv0lk/bargain-market/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	PurchaseHandler *PurchaseHandler
	TokenParser     jwt.TokenParser
	JwtSecret       string
	// IdempotencyStore is optional.
	IdempotencyStore domain.IdempotencyRepository
	Logger           logging.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	authenticated := api.Group("/", NewAuthMiddleware(deps.JwtSecret, deps.TokenParser, deps.Logger))
	{
		purchase := []gin.HandlerFunc{deps.PurchaseHandler.Purchase}
		if deps.IdempotencyStore != nil {
			purchase = append([]gin.HandlerFunc{NewIdempotencyMiddleware(deps.IdempotencyStore, deps.Logger)}, purchase...)
		}

		authenticated.POST("/purchase", purchase...)
		authenticated.GET("/receipts/:"+ReceiptIDKey, deps.PurchaseHandler.GetReceipt)
	}

	return router
}
