package utils

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// OrdersSubmitted counts checkout submissions handed off to WhatsApp.
	OrdersSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "dsburguer",
		Name:      "orders_submitted_total",
		Help:      "Total number of orders projected and handed off.",
	})

	// StudioEdits counts AI Studio generation attempts by outcome.
	StudioEdits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dsburguer",
		Name:      "studio_edits_total",
		Help:      "Total number of image edit requests.",
	}, []string{"status"})
)

func init() {
	prometheus.MustRegister(OrdersSubmitted, StudioEdits)
}

// MetricsHandler exposes the Prometheus scrape endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
