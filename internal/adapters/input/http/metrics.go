package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// httpRequests counts requests by method, route and status code
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamelink_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	// httpDuration records request duration by method and route
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamelink_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	httpInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "gamelink_http_requests_inflight",
			Help: "Current number of in-flight HTTP requests.",
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, httpInflight)
}

// Metrics func - fiber middleware that instruments every request. The route label is the
// registered route pattern, or "unmatched" for 404s, to keep label cardinality bounded.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		httpInflight.Inc()
		defer httpInflight.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		route := c.Route().Path
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
			if status == fiber.StatusNotFound {
				route = "unmatched"
			}
		}
		method := c.Method()

		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}
