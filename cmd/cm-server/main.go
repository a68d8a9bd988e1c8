package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tuanvumaihuynh/commerce-mock/internal/config"
	"github.com/tuanvumaihuynh/commerce-mock/internal/http"
	"github.com/tuanvumaihuynh/commerce-mock/internal/log"
	"github.com/tuanvumaihuynh/commerce-mock/internal/repository"
	"github.com/tuanvumaihuynh/commerce-mock/internal/service"
	"github.com/tuanvumaihuynh/commerce-mock/internal/storage/jsonfile"
	"github.com/tuanvumaihuynh/commerce-mock/internal/telemetry"
	"github.com/tuanvumaihuynh/commerce-mock/pkg/cmdutil"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running commerce mock server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log     config.Log
		HTTP    config.HTTP
		Storage config.Storage
		SMTP    config.SMTP
		Otel    config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	store, err := jsonfile.New(cfg.Storage.Dir)
	if err != nil {
		return fmt.Errorf("error creating store: %w", err)
	}

	if cfg.Storage.Seed {
		for _, name := range repository.Files {
			if err := store.Seed(name); err != nil {
				return fmt.Errorf("error seeding %s: %w", name, err)
			}
		}
	}

	productRepository := repository.NewProductRepository(store)
	inventoryRepository := repository.NewInventoryRepository(store)
	orderRepository := repository.NewOrderRepository(store)
	cartRepository := repository.NewCartRepository(store)

	catalogService := service.NewCatalogService(productRepository, inventoryRepository)
	orderService := service.NewOrderService(orderRepository, cartRepository)
	paymentService := service.NewPaymentService()
	notificationService := service.NewNotificationService(cfg.SMTP, logger)

	svc := http.New(cfg.HTTP, logger, catalogService, orderService, paymentService, notificationService)
	cleanup, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running http service: %w", err)
	}

	logger.InfoContext(ctx, "http service started",
		slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)),
		slog.String("storage_dir", store.Dir()))

	<-cmdutil.InterruptChan()

	logger.InfoContext(ctx, "http service is shutting down")
	if err := cleanup(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
	}

	logger.InfoContext(ctx, "http service is stopped")

	return nil
}
