package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"feecalc/internal/entities"
)

const (
	FeeSourceEnv      = "env"
	FeeSourcePostgres = "postgres"

	defaultFeeProfile = "default"
)

type (
	Tasks struct {
		SystemMetricsInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // скорость пополнения токенов в секунду
		RateLimiterBurst int           // емкость бакета
		PprofEnabled     bool
		PprofPort        string
		GRPCHealthPort   string // пустой порт выключает gRPC health сервер
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		MaxConns int32
	}

	Fee struct {
		Source    string // env или postgres
		Profile   string
		Constants entities.FeeConstants
	}

	Kafka struct {
		PortHealthcheck    string
		Brokers            string
		Topic              string
		FeeCalculatedTopic string
		ConsumerGroup      string
		Sarama             Sarama
		Handlers           KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		FeeQuoteRequested FeeQuoteRequested
	}

	FeeQuoteRequested struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Fee      Fee
		Kafka    Kafka
	}
)

// Load читает общую часть конфигурации. Требования конкретного бинарника
// проверяются отдельными методами Validate*.
func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	systemMetricsInterval, err := osGetEnvDuration("BACKGROUND_SYSTEM_METRICS_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	feeQuoteRequestedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_FEE_QUOTE_REQUESTED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxConns, err := osGetInt("POSTGRES_MAX_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	constants, err := loadFeeConstants()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			SystemMetricsInterval: systemMetricsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
			GRPCHealthPort:   os.Getenv("GRPC_HEALTH_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
			MaxConns: int32(maxConns), //nolint:gosec // значение проверяется в ValidateDatabase
		},
		Fee: Fee{
			Source:    osGetEnvOr("FEE_CONSTANTS_SOURCE", FeeSourceEnv),
			Profile:   osGetEnvOr("FEE_PROFILE", defaultFeeProfile),
			Constants: constants,
		},
		Kafka: Kafka{
			Brokers:            os.Getenv("KAFKA_BROKERS"),
			Topic:              os.Getenv("KAFKA_TOPIC"),
			FeeCalculatedTopic: os.Getenv("KAFKA_FEE_CALCULATED_TOPIC"),
			ConsumerGroup:      os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck:    os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				FeeQuoteRequested: FeeQuoteRequested{
					ProcessTimeout: feeQuoteRequestedTimeout,
				},
			},
		},
	}, nil
}

// loadFeeConstants берет значения по умолчанию и перекрывает их заданными переменными FEE_*.
func loadFeeConstants() (entities.FeeConstants, error) {
	c := entities.DefaultFeeConstants()

	amounts := []struct {
		env    string
		target *int64
	}{
		{"FEE_BASE_DELIVERY_FEE", &c.BaseDeliveryFee},
		{"FEE_BASE_DELIVERY_FEE_DISTANCE", &c.BaseDeliveryFeeDistance},
		{"FEE_ADDITIONAL_FEE", &c.AdditionalFee},
		{"FEE_ADDITIONAL_FEE_DISTANCE", &c.AdditionalFeeDistance},
		{"FEE_ADDITIONAL_ITEM_LIMIT", &c.AdditionalItemLimit},
		{"FEE_ADDITIONAL_ITEM_SURCHARGE", &c.AdditionalItemSurcharge},
		{"FEE_BULK_FEE_THRESHOLD", &c.BulkFeeThreshold},
		{"FEE_BULK_FEE", &c.BulkFee},
		{"FEE_SMALL_ORDER_THRESHOLD", &c.SmallOrderThreshold},
		{"FEE_FREE_DELIVERY_THRESHOLD", &c.FreeDeliveryThreshold},
		{"FEE_MAX_FEE", &c.MaxFee},
	}
	for _, a := range amounts {
		val, err := osGetInt64Or(a.env, *a.target)
		if err != nil {
			return c, err
		}
		*a.target = val
	}

	rush := []struct {
		env    string
		target *int
	}{
		{"FEE_RUSH_DELIVERY_DAY", &c.RushDeliveryDay},
		{"FEE_RUSH_DELIVERY_START", &c.RushDeliveryStart},
		{"FEE_RUSH_DELIVERY_END", &c.RushDeliveryEnd},
	}
	for _, r := range rush {
		val, err := osGetIntOr(r.env, *r.target)
		if err != nil {
			return c, err
		}
		*r.target = val
	}

	multiplier, err := osGetFloatOr("FEE_RUSH_MULTIPLIER", c.RushMultiplier)
	if err != nil {
		return c, err
	}
	c.RushMultiplier = multiplier

	return c, nil
}

func validateConfig(cfg *Config) error {
	switch cfg.Fee.Source {
	case FeeSourceEnv:
		if err := cfg.Fee.Constants.Validate(); err != nil {
			return fmt.Errorf("FEE_* constants: %w", err)
		}
	case FeeSourcePostgres:
		if strings.TrimSpace(cfg.Fee.Profile) == "" {
			return errors.New("FEE_PROFILE is required")
		}
		if err := cfg.ValidateDatabase(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("FEE_CONSTANTS_SOURCE must be %q or %q, got %q", FeeSourceEnv, FeeSourcePostgres, cfg.Fee.Source)
	}

	return nil
}

func (c *Config) ValidateHTTPServer() error {
	if c.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if c.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if c.Server.RateLimiterQPS <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if c.Server.RateLimiterBurst <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if c.Server.PprofPort == "" && c.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	if c.Tasks.SystemMetricsInterval == time.Duration(0) {
		return errors.New("BACKGROUND_SYSTEM_METRICS_INTERVAL is required")
	}
	return nil
}

func (c *Config) ValidateDatabase() error {
	if c.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if c.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if c.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if c.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if c.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if c.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	if c.Database.MaxConns < 0 {
		return errors.New("POSTGRES_MAX_CONNS must not be negative")
	}
	return nil
}

// ValidateKafkaProducer нужен сервису, если KAFKA_BROKERS задан, и воркеру всегда.
func (c *Config) ValidateKafkaProducer() error {
	if c.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if c.Kafka.FeeCalculatedTopic == "" {
		return errors.New("KAFKA_FEE_CALCULATED_TOPIC is required")
	}
	if c.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	return nil
}

func (c *Config) ValidateKafkaConsumer() error {
	if err := c.ValidateKafkaProducer(); err != nil {
		return err
	}
	if c.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if c.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if c.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if c.Kafka.Handlers.FeeQuoteRequested.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_FEE_QUOTE_REQUESTED_PROCESS_TIMEOUT is required")
	}
	return nil
}

func (c *Config) KafkaEnabled() bool {
	return strings.TrimSpace(c.Kafka.Brokers) != ""
}

func (c *Config) BrokerList() []string {
	brokers := strings.Split(c.Kafka.Brokers, ",")
	result := make([]string, 0, len(brokers))
	for _, b := range brokers {
		b = strings.TrimSpace(b)
		if b != "" {
			result = append(result, b)
		}
	}
	return result
}
