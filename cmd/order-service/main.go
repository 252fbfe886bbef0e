package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/dev-playground/order-demo/pkg/logging"
	"github.com/dev-playground/order-demo/pkg/shutdown"
	"github.com/dev-playground/order-demo/pkg/tracing"

	"github.com/dev-playground/order-demo/internal/order/application"
	orderhttp "github.com/dev-playground/order-demo/internal/order/infrastructure/http"
	orderinv "github.com/dev-playground/order-demo/internal/order/infrastructure/inventory"
	orderkafka "github.com/dev-playground/order-demo/internal/order/infrastructure/kafka"
	ordermem "github.com/dev-playground/order-demo/internal/order/infrastructure/memory"
)

func main() {
	log := logging.New("order-service")

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	httpAddr := env("HTTP_ADDR", ":8080")
	kafkaBrokers := []string{env("KAFKA_ADDR", "localhost:9092")}
	ordersTopic := env("ORDERS_TOPIC", "orders")
	inventoryURL := env("INVENTORY_URL", "http://localhost:8081")
	otlpURL := env("OTLP_URL", "http://localhost:4318/v1/traces")

	inventoryTimeout, err := time.ParseDuration(env("INVENTORY_TIMEOUT", "2s"))
	if err != nil {
		log.Error("invalid INVENTORY_TIMEOUT", "err", err)
		os.Exit(1)
	}

	tp, err := tracing.Init(ctx, "order-service", otlpURL, log)
	if err != nil {
		log.Error("otel init failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	publisher := orderkafka.NewPublisher(log, kafkaBrokers, ordersTopic)
	defer publisher.Close()

	repo := ordermem.New()
	inv := orderinv.NewClient(log, inventoryURL, inventoryTimeout)
	svc := application.NewService(log, repo, inv, publisher)
	handler := orderhttp.NewHandler(log, svc)

	srv := &http.Server{
		Addr:         httpAddr,
		Handler:      handler.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http listening", "addr", httpAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	log.Info("order-service shutdown complete")
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
