package fee_calculated

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayPublishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_kafka_publish_total",
			Help: "Total number of Kafka publish attempts by result",
		},
		[]string{"topic", "result"},
	)

	GatewayPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_kafka_publish_duration_seconds",
			Help:    "Duration of Kafka publish calls",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"topic", "result"},
	)

	GatewayBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gateway_kafka_breaker_state",
			Help: "Circuit breaker state (0 - closed, 1 - half-open, 2 - open)",
		},
		[]string{"topic"},
	)
)
