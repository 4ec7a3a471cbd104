package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RejectedTotal запросы, получившие 429
	RejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limit_rejected_total",
			Help: "Requests rejected with 429 by the token bucket",
		},
		[]string{"method", "route"},
	)

	// AllowedTotal пропущенные запросы, вместе с RejectedTotal дают долю отказов
	AllowedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limit_allowed_total",
			Help: "Requests that passed the token bucket",
		},
	)
)
