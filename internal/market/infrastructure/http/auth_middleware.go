package http

import (
	"net/http"
	"strings"

	"github.com/Lexv0lk/bargain-market/internal/pkg/jwt"
	"github.com/Lexv0lk/bargain-market/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

const (
	authHeaderName = "Authorization"

	UserIDKey = "user_id"
)

func NewAuthMiddleware(secretKey string, tokenParser jwt.TokenParser, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Kind: "unauthenticated", Errors: "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Kind: "unauthenticated", Errors: "invalid auth header"})
			return
		}

		claims, err := tokenParser.ParseToken([]byte(secretKey), parts[1])
		if err != nil {
			logger.Warn("failed to parse user token", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Kind: "unauthenticated", Errors: "invalid token"})
			return
		}

		c.Set(jwt.TokenContextKey, parts[1])
		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

func userIDFrom(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
