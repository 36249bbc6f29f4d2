package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/checkroom/backend/internal/lib/jwt"
)

const (
	userIDKey    = "uid"
	userRoleKey  = "role"
	requestIDKey = "request_id"
)

// RequestID tags every request with a generated id, exposed via the
// X-Request-ID header for log correlation.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := uuid.NewString()
		ctx.Set(requestIDKey, id)
		ctx.Header("X-Request-ID", id)
		ctx.Next()
	}
}

// AuthJWT requires a valid bearer token and stores its claims in the
// request context.
func AuthJWT(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			return
		}

		claims, err := jwt.ParseToken(tokenString, secret)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ctx.Set(userIDKey, claims.UserID)
		ctx.Set(userRoleKey, claims.Role)
		ctx.Next()
	}
}

func userIDFromContext(ctx *gin.Context) (int64, bool) {
	v, ok := ctx.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
