package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/infra/metrics"
	"hotel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Hotel        *api.HotelHandler
	Booking      *api.BookingHandler
}

// Pinger reports whether the booking store answers; *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type RouterParams struct {
	Engine   *gin.Engine
	Config   config.Config
	Logger   *slog.Logger
	Handlers Handlers
	Auth     *middleware.AuthMiddleware
	Metrics  *metrics.Metrics
	Store    Pinger
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(p.Metrics.Middleware())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(middleware.RequestLogger(p.Logger))
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	h := p.Handlers
	p.Engine.GET("/health", healthCheck(p.Store))
	p.Engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		p.Engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := p.Engine.Group("/api")

	addRoutes(apiGroup.Group("/rooms"), []route{
		{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Availability.RoomsLeft},
	})

	addRoutes(apiGroup.Group("/hotels"), []route{
		{Method: http.MethodGet, Path: "/location/:location", Handler: h.Availability.HotelsInLocation},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Hotel.Get},
		{Method: http.MethodGet, Path: "/:id/rooms", Handler: h.Availability.HotelRooms},
	})

	addRoutes(apiGroup.Group("/bookings", p.Auth.RequireAuth()), []route{
		{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
		{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Delete},
	})
}

// @Summary Health check
// @Description Reports whether the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheck(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			slog.Warn("health check: database unreachable", "error", err.Error())
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
