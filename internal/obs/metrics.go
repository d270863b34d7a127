package obs

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth outcome labels.
const (
	ResultAuthorized       = "authorized"
	ResultMissingToken     = "missing_token"
	ResultInvalidSignature = "invalid_signature"
	ResultMalformed        = "malformed"
	ResultExpired          = "expired"
	ResultUserNotFound     = "user_not_found"
	ResultPasswordChanged  = "password_changed"
	ResultStoreError       = "store_error"
)

var (
	authOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_token_verifications_total",
			Help: "Token verification outcomes by result.",
		},
		[]string{"result"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
)

// Init registers the metrics with the default registry. Call once
// from main.
func Init() {
	prometheus.MustRegister(authOutcomes, httpRequestsTotal)
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordAuthOutcome counts one gate decision.
func RecordAuthOutcome(result string) {
	authOutcomes.WithLabelValues(result).Inc()
}

// Instrument counts requests per method/route/status.
func Instrument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		path := c.Route().Path
		status := strconv.Itoa(c.Response().StatusCode())
		httpRequestsTotal.WithLabelValues(c.Method(), path, status).Inc()

		return err
	}
}
