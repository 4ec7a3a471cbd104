package fee

import (
	"strconv"

	"feecalc/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FeeCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_fee_calculations_total",
			Help: "Total number of delivery fee calculations",
		},
		[]string{"free_delivery", "rush_hour", "capped"},
	)

	FeeAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "delivery_fee_amount_minor_units",
			Help:    "Calculated delivery fee in minor currency units",
			Buckets: []float64{0, 100, 200, 300, 500, 750, 1000, 1250, 1500, 2000},
		},
	)
)

func observe(breakdown entities.FeeBreakdown) {
	FeeCalculationsTotal.WithLabelValues(
		strconv.FormatBool(breakdown.FreeDelivery),
		strconv.FormatBool(breakdown.RushHour),
		strconv.FormatBool(breakdown.Capped),
	).Inc()
	FeeAmount.Observe(float64(breakdown.Total))
}
