package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/solrxtin/mprimo-core/config"
	"github.com/solrxtin/mprimo-core/internal/analytics"
	rediscache "github.com/solrxtin/mprimo-core/internal/cache/redis"
	"github.com/solrxtin/mprimo-core/internal/kafka"
	"github.com/solrxtin/mprimo-core/internal/lock"
	"github.com/solrxtin/mprimo-core/internal/payment"
	"github.com/solrxtin/mprimo-core/internal/ports"
	"github.com/solrxtin/mprimo-core/internal/repo/postgres"
	rest "github.com/solrxtin/mprimo-core/internal/transport/http"
	"github.com/solrxtin/mprimo-core/internal/usecase"
	"github.com/solrxtin/mprimo-core/pkg/logger"
	"github.com/solrxtin/mprimo-core/pkg/metrics"
	"github.com/solrxtin/mprimo-core/pkg/telemetry"
	"github.com/solrxtin/mprimo-core/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы
// (HTTP, отдельный метрики-листенер, consumer, фоновая аналитика).
type App struct {
	Logger          ports.Logger
	HTTPServer      *http.Server
	MetricsServer   *http.Server
	KafkaConsumer   ports.MessageConsumer
	Tracker         *analytics.Tracker
	Flusher         *analytics.Flusher
	gracefulTimeout time.Duration
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// newMetricsServer — HTTP-сервер только с /metrics.
func newMetricsServer(addr string, readHeaderTimeout time.Duration) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Пул подключений Postgres.
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Redis: кэши, счётчики, блокировки.
	kv, err := rediscache.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		pool.Close()
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Сборка зависимостей доменного слоя.
	locker := lock.New(kv, logg, cfg.Lock.TTL)
	tracker := analytics.NewTracker(kv, logg, cfg.Analytics.BufferSize)
	gateway := payment.NewClient(cfg.Payment.BaseURL, logg, cfg.Payment.ProcessTimeout, cfg.Payment.RefundTimeout)

	cartRepo := postgres.NewCartRepository(pool)
	wishRepo := postgres.NewWishlistRepository(pool)
	prodRepo := postgres.NewProductRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	orderStore := postgres.NewOrderStore(pool)

	flusher := analytics.NewFlusher(kv, analyticsRepo, logg, cfg.Analytics.FlushInterval)

	productService := usecase.NewProductService(prodRepo, kv, locker, logg, cfg.Cache.ProductTTL, cfg.Lock.TTL)
	cartService := usecase.NewCartService(cartRepo, prodRepo, kv, logg, cfg.Cache.CartTTL)
	wishlistService := usecase.NewWishlistService(wishRepo, prodRepo, kv, logg, cfg.Cache.WishlistTTL)
	orderService := usecase.NewOrderService(orderStore, gateway, tracker, productService, cartService, kv, logg, cfg.Cache.OrderTTL)
	eventService := usecase.NewEventService(tracker, validate.NewEventValidator(), logg)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(cartService, wishlistService, productService, orderService, eventService, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Отдельный листенер для скрейпа метрик: приватный порт,
	// не зависящий от публичной поверхности (и её таймаутов).
	metricsSrv := newMetricsServer(cfg.Metrics.Addr, cfg.HTTP.ReadHeaderTimeout)

	// Конфигурация и создание консьюмера Kafka.
	kafkaCfg := kafka.ConsumerConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        cfg.Kafka.GroupID,
		Topic:          cfg.Kafka.Topic,
		StartOffset:    cfg.Kafka.StartOffset,
		ProcessTimeout: cfg.Kafka.ProcessTimeout,
		RetryInitial:   cfg.Kafka.RetryInitial,
		RetryMax:       cfg.Kafka.RetryMax,
	}
	consumer := kafka.NewConsumer(&kafkaCfg, eventService, logg)

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   metricsSrv,
		KafkaConsumer:   consumer,
		Tracker:         tracker,
		Flusher:         flusher,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if err := consumer.Close(); err != nil {
			logg.Warnf(ctx, "kafka consumer close error: %v", err)
		}

		if err := kv.Close(); err != nil {
			logg.Warnf(ctx, "redis close error: %v", err)
		}
		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер, консьюмера и фоновую аналитику;
// ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	// Воркер трекера: события → счётчики.
	go a.Tracker.Run(ctx)

	// Периодический слив счётчиков в дневную статистику.
	go a.Flusher.Run(ctx)

	// Запуск консьюмера.
	go func() {
		if err := a.KafkaConsumer.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Листенер метрик.
	go func() {
		a.Logger.Infof(ctx, "metrics server starting (addr=%s)", a.MetricsServer.Addr)
		if err := a.MetricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	if err := a.MetricsServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "metrics server shutdown failed: %v", err)
	}

	// Остановка Kafka-консьюмера.
	if err := a.KafkaConsumer.Close(); err != nil {
		a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
	}

	// Финальный слив счётчиков, чтобы не терять статистику при остановке.
	if err := a.Flusher.FlushNow(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "final counter flush: %v", err)
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
