package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ConversionsTotal counts baker's-percentage conversions by outcome
	// (success, not_found, invalid).
	ConversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recipe_conversions_total",
		Help: "Recipe conversion requests by outcome.",
	}, []string{"outcome"})

	// ExcelExportsTotal counts Excel workbook exports.
	ExcelExportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recipe_excel_exports_total",
		Help: "Excel exports of the recipe table.",
	})

	// RequestDuration observes API handler latency per route.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "API request duration by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)
