package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, path and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration tracks request latency by method and path.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// CheckinsTotal counts luggage check-ins accepted at the counter.
	CheckinsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cloakroom_checkins_total",
			Help: "Total number of luggage check-ins",
		},
	)

	// CheckoutsTotal counts settled check-outs.
	CheckoutsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cloakroom_checkouts_total",
			Help: "Total number of luggage check-outs",
		},
	)

	// RevenueTotal accumulates settled amounts in rupees.
	RevenueTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cloakroom_revenue_rupees_total",
			Help: "Total revenue collected at checkout, in rupees",
		},
	)
)
