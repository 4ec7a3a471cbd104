package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"feecalc/internal/pkg/config"
	"feecalc/internal/pkg/kafka"
	"feecalc/pkg/logger"
	"feecalc/pkg/logger/zap_adapter"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Total number of generated fee requests",
	}, []string{"transport", "result"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Duration of generated fee requests",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"transport"})
)

type options struct {
	target      string
	rate        float64
	kafkaShare  float64
	brokers     string
	topic       string
	version     string
	metricsAddr string
}

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var log logger.Logger = zapLogger

	var opts options
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.StringVar(&opts.target, "target", "http://localhost:8080/feecalc", "POST /feecalc URL")
	flags.Float64Var(&opts.rate, "rate", 5, "requests per second")
	flags.Float64Var(&opts.kafkaShare, "kafka-share", 0, "share of requests sent to Kafka (0..1)")
	flags.StringVar(&opts.brokers, "brokers", "localhost:9092", "Kafka brokers, comma separated")
	flags.StringVar(&opts.topic, "topic", "delivery.fee.quote.requested", "Kafka topic for quote requests")
	flags.StringVar(&opts.version, "kafka-version", "3.6.0", "Kafka protocol version")
	flags.StringVar(&opts.metricsAddr, "metrics", ":2112", "metrics listen address")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return
	}

	if err := run(context.Background(), log, opts); err != nil {
		log.Error("traffic generator failed", logger.NewField("error", err))
	}
}

func run(ctx context.Context, log logger.Logger, opts options) error {
	if opts.rate <= 0 {
		return errors.New("rate must be positive")
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	metricsServer := &http.Server{
		Addr:              opts.metricsAddr,
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", logger.NewField("error", err))
		}
	}()
	defer func() {
		_ = metricsServer.Close()
	}()

	var producer sarama.SyncProducer
	if opts.kafkaShare > 0 {
		cfg := &config.Kafka{
			Topic:              opts.topic,
			FeeCalculatedTopic: opts.topic,
			Sarama:             config.Sarama{Version: opts.version},
		}
		var err error
		producer, err = kafka.NewSyncProducer(ctx, log, cfg, strings.Split(opts.brokers, ","))
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		defer func() {
			_ = producer.Close()
		}()
	}

	client := &http.Client{Timeout: 5 * time.Second}
	r := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)) //nolint:gosec // нагрузка, не криптография

	ticker := time.NewTicker(time.Duration(float64(time.Second) / opts.rate))
	defer ticker.Stop()

	log.Info("traffic generator started",
		logger.NewField("target", opts.target),
		logger.NewField("rate", opts.rate),
	)

	for {
		select {
		case <-ctx.Done():
			log.Info("traffic generator stopped")
			return nil
		case <-ticker.C:
		}

		order := randomOrder(r, time.Now())
		body, err := json.Marshal(order)
		if err != nil {
			return fmt.Errorf("encode order: %w", err)
		}

		if producer != nil && r.Float64() < opts.kafkaShare {
			sendKafka(producer, opts.topic, body)
			continue
		}
		sendHTTP(ctx, client, opts.target, body)
	}
}

func sendHTTP(ctx context.Context, client *http.Client, target string, body []byte) {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues("http").Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		requestsTotal.WithLabelValues("http", "error").Inc()
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues("http", "error").Inc()
		return
	}
	_ = resp.Body.Close()

	requestsTotal.WithLabelValues("http", strconv.Itoa(resp.StatusCode)).Inc()
}

func sendKafka(producer sarama.SyncProducer, topic string, body []byte) {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues("kafka").Observe(time.Since(start).Seconds())
	}()

	_, _, err := producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(uuid.NewString()),
		Value: sarama.ByteEncoder(body),
	})
	if err != nil {
		requestsTotal.WithLabelValues("kafka", "error").Inc()
		return
	}
	requestsTotal.WithLabelValues("kafka", "ok").Inc()
}
