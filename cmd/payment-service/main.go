package main

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dev-playground/order-demo/internal/payment/application"
	paymentkafka "github.com/dev-playground/order-demo/internal/payment/infrastructure/kafka"
	"github.com/dev-playground/order-demo/pkg/idempotency"
	"github.com/dev-playground/order-demo/pkg/logging"
	"github.com/dev-playground/order-demo/pkg/shutdown"
	"github.com/dev-playground/order-demo/pkg/tracing"
)

func main() {
	log := logging.New("payment-service")

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	kafkaAddr := env("KAFKA_ADDR", "localhost:9092")
	ordersTopic := env("ORDERS_TOPIC", "orders")
	redisAddr := env("REDIS_ADDR", "localhost:6379")
	otlpURL := env("OTLP_URL", "http://localhost:4318/v1/traces")

	tp, err := tracing.Init(ctx, "payment-service", otlpURL, log)
	if err != nil {
		log.Error("otel init failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	// Duplicate suppression is transport hygiene only; the handler itself is
	// a no-op either way. REDIS_ADDR=off runs without it.
	var idem *idempotency.Store
	if redisAddr != "off" {
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer rdb.Close()
		idem = idempotency.NewStore(rdb, 10*time.Minute)
	}

	svc := application.NewService(log)
	consumer := paymentkafka.NewConsumer(log, []string{kafkaAddr}, ordersTopic, "payment-service", svc, idem)

	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error("consumer stopped", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("payment-service shutdown complete")
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
