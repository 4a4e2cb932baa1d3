package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// PostViews counts detail-page view increments.
	PostViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quill_post_views_total",
		Help: "Total number of post detail views recorded",
	})

	// ScheduledPromotions counts drafts promoted to published by the lazy sweep.
	ScheduledPromotions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quill_scheduled_promotions_total",
		Help: "Total number of scheduled drafts promoted to published",
	})
)

// InitMetrics creates the Prometheus HTTP metrics collector for the service.
func InitMetrics(service string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(service)
}

// MetricsMiddleware returns the request-instrumentation middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
