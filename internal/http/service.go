// Package http exposes the service over HTTP/JSON.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/tuanvumaihuynh/commerce-mock/internal/config"
	"github.com/tuanvumaihuynh/commerce-mock/internal/http/apierr"
	"github.com/tuanvumaihuynh/commerce-mock/internal/http/metric"
	"github.com/tuanvumaihuynh/commerce-mock/internal/http/middleware"
	"github.com/tuanvumaihuynh/commerce-mock/internal/http/swagger"
	"github.com/tuanvumaihuynh/commerce-mock/internal/service"
	"github.com/tuanvumaihuynh/commerce-mock/pkg/validator"
)

var tracer = otel.Tracer("internal/http")

// Service is the HTTP front of the mock commerce backend.
type Service struct {
	cfg      config.HTTP
	logger   *slog.Logger
	metrics  *metric.Metrics
	validate validator.Validator

	catalogSvc service.CatalogService
	orderSvc   service.OrderService
	paymentSvc service.PaymentService
	notifySvc  service.NotificationService
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	logger *slog.Logger,
	catalogSvc service.CatalogService,
	orderSvc service.OrderService,
	paymentSvc service.PaymentService,
	notifySvc service.NotificationService,
) *Service {
	return &Service{
		cfg:        cfg,
		logger:     logger.With(slog.String("service", "http")),
		metrics:    metric.New(),
		validate:   validator.NewDefaultValidator(),
		catalogSvc: catalogSvc,
		orderSvc:   orderSvc,
		paymentSvc: paymentSvc,
		notifySvc:  notifySvc,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		swagger.Register(r)
	}

	s.RegisterHandlers(r)

	return s.RunWithServer(ctx, r)
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	r.Get("/product/{productID}", s.handleGetProduct)
	r.Get("/products/allProducts", s.handleListProducts)
	r.Post("/products/searchByTags", s.handleSearchByTags)
	r.Post("/product/addProduct", s.handleAddProduct)
	r.Post("/order/addToCart", s.handleAddToCart)
	r.Post("/payment", s.handlePayment)
	r.Post("/oms/order", s.handlePlaceOrder)
	r.Post("/notify/email", s.handleNotifyEmail)

	r.Get("/healthz", s.handleHealthz)
	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}

func (s *Service) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write([]byte("ok"))
}

// respond writes v as the JSON response body.
func (s *Service) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding response",
			slog.Any("error", err))
	}
}

// respondError maps err to the statusMessage error body.
func (s *Service) respondError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	s.respond(w, r, res.StatusCode, res)
}
