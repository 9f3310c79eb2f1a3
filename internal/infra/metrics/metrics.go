package metrics

import (
	"net/http"
	"strconv"
	"time"

	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hotel_booking"

type Metrics struct {
	gatherer prometheus.Gatherer

	reservations         *prometheus.CounterVec
	reservationDuration  *prometheus.HistogramVec
	notificationsDropped prometheus.Counter
	requests             *prometheus.CounterVec
	requestDuration      *prometheus.HistogramVec
}

// New registers every collector on reg. Passing a fresh registry keeps
// tests isolated from the process-wide default.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		gatherer: reg,
		reservations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservations_total",
				Help:      "Reservation attempts by outcome",
			},
			[]string{"outcome"},
		),
		reservationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "reservation_duration_seconds",
				Help:      "Time spent in the reservation transaction including retries",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		notificationsDropped: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_dropped_total",
				Help:      "Booking notifications dropped because the queue was full",
			},
		),
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

func (m *Metrics) ObserveReservation(outcome commands.Outcome, elapsed time.Duration) {
	m.reservations.WithLabelValues(outcome.String()).Inc()
	m.reservationDuration.WithLabelValues(outcome.String()).Observe(elapsed.Seconds())
}

func (m *Metrics) NotificationDropped() {
	m.notificationsDropped.Inc()
}

// Middleware labels by route template so path parameters do not explode
// label cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "/metrics" {
			c.Next()
			return
		}
		if route == "" {
			route = "unmatched"
		}

		start := time.Now()
		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		m.requests.WithLabelValues(c.Request.Method, route, status).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
