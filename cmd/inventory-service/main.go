package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/dev-playground/order-demo/pkg/logging"
	"github.com/dev-playground/order-demo/pkg/shutdown"
	"github.com/dev-playground/order-demo/pkg/tracing"

	"github.com/dev-playground/order-demo/internal/inventory/application"
	invhttp "github.com/dev-playground/order-demo/internal/inventory/infrastructure/http"
	invmem "github.com/dev-playground/order-demo/internal/inventory/infrastructure/memory"
)

func main() {
	log := logging.New("inventory-service")

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	httpAddr := env("HTTP_ADDR", ":8081")
	otlpURL := env("OTLP_URL", "http://localhost:4318/v1/traces")
	seedSpec := env("INVENTORY_SEED", "ABC-1=100,XYZ-9=0,FOO-7=50")

	tp, err := tracing.Init(ctx, "inventory-service", otlpURL, log)
	if err != nil {
		log.Error("otel init failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	seed, err := invmem.ParseSeed(seedSpec)
	if err != nil {
		log.Error("invalid inventory seed", "err", err)
		os.Exit(1)
	}

	store := invmem.New(seed)
	svc := application.NewService(store)
	handler := invhttp.NewHandler(log, svc)

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
	log.Info("inventory-service shutdown complete")
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
