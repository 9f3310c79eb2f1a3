package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenValidator resolves a bearer token to the guest it was issued for.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

const ctxUserIDKey = "user_id"

var errMissingToken = errors.New("missing bearer token")

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokenValidator: tokenValidator}
}

// RequireAuth admits requests carrying "Authorization: Bearer <jwt>" and
// exposes the guest id to handlers through GetUserID.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		userID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("rejected bearer token", "request_id", GetRequestID(c), "error", err.Error())
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrExpiredToken) {
				msg = "Token expired"
			}
			httperr.AbortWithError(c, http.StatusUnauthorized, err, msg, nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
