//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/tests/common/authtest"
	"hotel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.JWTConfig{Secret: "unit-secret", Duration: time.Hour}
	svc := jwt.NewService(cfg)
	router := gin.New()
	router.GET("/me", middleware.NewAuthMiddleware(svc).RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.String())
	})

	t.Run("valid token exposes the guest id", func(t *testing.T) {
		userID := uuid.New()
		token, err := svc.GenerateToken(userID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, userID.String(), w.Body.String())
	})

	t.Run("rejections", func(t *testing.T) {
		helper := authtest.NewJWTHelper(cfg)
		expired := helper.CreateExpiredToken(t, uuid.New())
		foreign := helper.CreateForeignToken(t, uuid.New())

		cases := []struct {
			name  string
			token string
			msg   string
		}{
			{"missing", "", "Access token required"},
			{"garbage", "not-a-jwt", "Invalid token"},
			{"expired", expired, "Token expired"},
			{"foreign signature", foreign, "Invalid token"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, tc.token)
				httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, tc.msg)
			})
		}
	})
}
