package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Resolution pipeline metrics
var (
	// ResolutionsTotal counts finished pipeline invocations by outcome and content type.
	ResolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "douyin_resolutions_total",
			Help: "Total number of resolution requests.",
		},
		[]string{"status", "type"},
	)

	// SourceAttemptsTotal counts individual source calls inside the fallback chain.
	SourceAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "douyin_source_attempts_total",
			Help: "Total number of resolution source attempts.",
		},
		[]string{"source", "status"},
	)

	// RedirectResolutionsTotal counts short-link redirect lookups by outcome.
	RedirectResolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "douyin_redirect_resolutions_total",
			Help: "Total number of short-link redirect resolutions.",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		ResolutionsTotal,
		SourceAttemptsTotal,
		RedirectResolutionsTotal,
	)
}
