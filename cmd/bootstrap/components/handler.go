package components

import (
	"log/slog"

	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/infra/metrics"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewHotelHandler,
		api.NewBookingHandler,
		func(a *api.AvailabilityHandler, h *api.HotelHandler, b *api.BookingHandler) handler.Handlers {
			return handler.Handlers{Availability: a, Hotel: h, Booking: b}
		},
		fx.Annotate(
			func(s *jwt.Service) *jwt.Service { return s },
			fx.As(new(middleware.TokenValidator)),
		),
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(RegisterRoutes),
)

func RegisterRoutes(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	h handler.Handlers,
	auth *middleware.AuthMiddleware,
	m *metrics.Metrics,
	pool *pgxpool.Pool,
) {
	handler.NewRouter(handler.RouterParams{
		Engine:   engine,
		Config:   cfg,
		Logger:   logger,
		Handlers: h,
		Auth:     auth,
		Metrics:  m,
		Store:    pool,
	})
}
