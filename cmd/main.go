package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkinCompleteHandler "github.com/bronsport/unisport-gateway/internal/api/handlers/checkin_complete_order"
	checkinDetailsHandler "github.com/bronsport/unisport-gateway/internal/api/handlers/checkin_order_details"
	getAvailabilityHandler "github.com/bronsport/unisport-gateway/internal/api/handlers/get_availability"
	getCheckoutURLHandler "github.com/bronsport/unisport-gateway/internal/api/handlers/get_checkout_url"
	getFacilityHandler "github.com/bronsport/unisport-gateway/internal/api/handlers/get_facility"
	getOrderStatusHandler "github.com/bronsport/unisport-gateway/internal/api/handlers/get_order_status"
	getMatrixHandler "github.com/bronsport/unisport-gateway/internal/api/handlers/get_subscription_matrix"
	prepareOrderHandler "github.com/bronsport/unisport-gateway/internal/api/handlers/prepare_order"
	previewPriceHandler "github.com/bronsport/unisport-gateway/internal/api/handlers/preview_price"
	reconcileHandler "github.com/bronsport/unisport-gateway/internal/api/handlers/reconcile_selection"
	"github.com/bronsport/unisport-gateway/internal/api/middleware"
	"github.com/bronsport/unisport-gateway/internal/config"
	"github.com/bronsport/unisport-gateway/internal/infra/availcache"
	unisportClient "github.com/bronsport/unisport-gateway/internal/integrations/unisport"
	catalogService "github.com/bronsport/unisport-gateway/internal/service/catalog"
	ordersService "github.com/bronsport/unisport-gateway/internal/service/orders"
	prepareOrderUC "github.com/bronsport/unisport-gateway/internal/usecase/prepare_order"
	previewPriceUC "github.com/bronsport/unisport-gateway/internal/usecase/preview_price"
	"github.com/bronsport/unisport-gateway/pkg/backoff"
	"github.com/bronsport/unisport-gateway/pkg/logger"
	"github.com/bronsport/unisport-gateway/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting unisport-gateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Клиент платформы бронирования
	platformClient := unisportClient.NewClient(
		cfg.Unisport.URL,
		time.Duration(cfg.Unisport.Timeout)*time.Second,
		log,
	)
	log.Info("Platform client initialized (url=%s timeout=%ds)", cfg.Unisport.URL, cfg.Unisport.Timeout)

	// Кеширующий каталог
	var cacheObserver availcache.Observer
	if cfg.Metrics.Enabled {
		cacheObserver = metricsCollector
	}
	catalog := catalogService.NewService(platformClient, catalogService.Options{
		FacilityTTL:  cfg.Cache.MatrixTTLDuration(),
		DailyTTL:     cfg.Cache.DailyTTLDuration(),
		MatrixTTL:    cfg.Cache.MatrixTTLDuration(),
		PrefetchDays: cfg.Cache.PrefetchDays,
	}, log, cacheObserver)
	log.Info("Catalog caches initialized (daily_ttl=%ds matrix_ttl=%ds prefetch_days=%d)",
		cfg.Cache.DailyTTL, cfg.Cache.MatrixTTL, cfg.Cache.PrefetchDays)

	// Сервис заказов с политикой опроса статуса
	pollPolicy := backoff.Policy{
		Initial:     time.Duration(cfg.Poll.InitialDelay) * time.Second,
		Max:         time.Duration(cfg.Poll.MaxDelay) * time.Second,
		Multiplier:  cfg.Poll.Multiplier,
		MaxAttempts: cfg.Poll.MaxAttempts,
	}
	var upstreamMetrics ordersService.Metrics
	if cfg.Metrics.Enabled {
		upstreamMetrics = metricsCollector
	}
	orders := ordersService.NewService(
		platformClient,
		pollPolicy,
		time.Duration(cfg.Payment.CheckoutTimeout)*time.Second,
		log,
		upstreamMetrics,
	)

	// Инициализируем use cases
	prepareOrderUseCase := prepareOrderUC.NewUseCase(catalog, catalog, orders, log)
	previewPriceUseCase := previewPriceUC.NewUseCase(catalog, log)

	// Инициализируем handlers
	getFacility := getFacilityHandler.NewHandler(catalog, log)
	getAvailability := getAvailabilityHandler.NewHandler(catalog, log)
	getMatrix := getMatrixHandler.NewHandler(catalog, log)
	reconcileSelection := reconcileHandler.NewHandler(catalog, log)
	previewPrice := previewPriceHandler.NewHandler(previewPriceUseCase, log)
	prepareOrder := prepareOrderHandler.NewHandler(prepareOrderUseCase, catalog, log)
	getOrderStatus := getOrderStatusHandler.NewHandler(orders, log)
	getCheckoutURL := getCheckoutURLHandler.NewHandler(orders, log)
	checkinDetails := checkinDetailsHandler.NewHandler(orders, log)
	checkinComplete := checkinCompleteHandler.NewHandler(orders, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (каталог и доступность, без авторизации)
	// ============================================================

	api.HandleFunc("/facilities/{facilityId}", getFacility.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}/subscription-availability", getMatrix.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}/selection/reconcile", reconcileSelection.Handle).Methods(http.MethodPost)
	api.HandleFunc("/price-preview", previewPrice.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют bearer токен платформы)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Заказы ---
	protected.HandleFunc("/orders", prepareOrder.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/orders/{orderIdentifier}/status", getOrderStatus.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/orders/{orderIdentifier}/checkout-url", getCheckoutURL.Handle).Methods(http.MethodPost)

	// --- Check-in (токен персонала) ---
	protected.HandleFunc("/checkin/orders/{orderCode}", checkinDetails.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/checkin/orders/{orderCode}/complete", checkinComplete.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
