package middleware

import (
	"log/slog"
	"slices"

	"hotel-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Retry-After and X-Request-ID are always exposed.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     slices.Concat(cfg.AllowHeaders, []string{requestIDHeader}),
		ExposeHeaders:    slices.Concat(cfg.ExposeHeaders, []string{"Retry-After", requestIDHeader}),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS configured", "allow_origins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}
