package observability

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler exposes the default registry over the Prometheus scrape format.
func MetricsHandler() fiber.Handler {
	RegisterMetrics()
	return adaptor.HTTPHandler(promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))
}

// ObserveOperation records the outcome of a domain operation.
func ObserveOperation(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	DomainOperations().WithLabelValues(operation, outcome).Inc()
}
