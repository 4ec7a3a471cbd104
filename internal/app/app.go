package app

import (
	"time"

	"feecalc/internal/handlers/kafka-consumer/fee_quote_requested"
	"feecalc/internal/handlers/rest/feecalc_post"
	"feecalc/internal/service/fee_profile"
	"feecalc/pkg/background"
)

type (
	SystemMetricsInterval time.Duration
)

type Application struct {
	ServiceFee        ServiceFee
	BackgroundWorkers *background.Worker
}

type ServiceFee interface {
	feecalc_post.Service
}

type KafkaWorkerApp struct {
	ServiceQuote ServiceQuote
}

type ServiceQuote interface {
	fee_quote_requested.Service
}

type FeeProfileApp struct {
	ProfileService *fee_profile.Profile
}
