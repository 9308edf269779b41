package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "booking/internal/app"
	"booking/internal/handlers/rest/booking_autosave_put"
	"booking/internal/handlers/rest/booking_draft_delete"
	"booking/internal/handlers/rest/booking_draft_post"
	"booking/internal/handlers/rest/booking_draft_restore_post"
	"booking/internal/handlers/rest/booking_fields_patch"
	"booking/internal/handlers/rest/booking_get"
	"booking/internal/handlers/rest/booking_steps_goto_post"
	"booking/internal/handlers/rest/booking_steps_next_post"
	"booking/internal/handlers/rest/booking_steps_previous_post"
	"booking/internal/handlers/rest/booking_submit_post"
	"booking/internal/handlers/rest/fare_estimate_get"
	"booking/internal/handlers/rest/healthcheck_head"
	"booking/internal/handlers/rest/notification_read_post"
	"booking/internal/handlers/rest/notifications_get"
	"booking/internal/handlers/rest/ping_get"
	"booking/internal/pkg/config"
	"booking/internal/pkg/dotenv"
	"booking/internal/pkg/grpchealth"
	"booking/internal/pkg/kafka"
	metrics_system "booking/internal/pkg/metrics"
	"booking/internal/pkg/middlewares/graceful_shutdown"
	"booking/internal/pkg/middlewares/metrics"
	"booking/internal/pkg/middlewares/rate_limiter"
	"booking/internal/pkg/middlewares/timeout"
	"booking/internal/pkg/postgres"
	"booking/internal/pkg/redis"
	"booking/pkg/logger"
	"booking/pkg/logger/zap_adapter"
	"booking/pkg/token_bucket"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
)

const (
	// запас сверх таймаута бэкенда на сохранение черновика и публикацию события
	submitTimeoutMargin = 5 * time.Second
	rateLimiterIdleTTL  = 10 * time.Minute
	submitRouteName     = "submit"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting booking application")

	if err := dotenv.Load(os.Args[1:]); err != nil {
		mainLog.Error("failed to load environment", logger.NewField("error", err))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	var redisClient *goredis.Client
	if cfg.Draft.Store == config.DraftStoreRedis {
		redisClient, err = redis.NewClient(ctx, log, &cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer func() {
			err := redisClient.Close()
			if err != nil {
				runLog.Error("failed to close Redis connection",
					logger.NewField("error", err),
				)
			}
		}()
	}

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close Kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	// workersCtx отменяется до закрытия пула, чтобы фоновые задачи не писали в закрытое соединение
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	businessApp, err := application.InitializeApplication(workersCtx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(workersCtx, metrics_system.DefaultCollectInterval)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.BookingBackend.Timeout + submitTimeoutMargin + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
			logger.NewField("draft_store", cfg.Draft.Store),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// gRPC health для оркестратора
	var healthServer *grpchealth.Server
	var healthServerErr chan error
	if cfg.Server.GRPCHealthPort != "" {
		healthServer = grpchealth.New(log)
		healthServer.SetServing(true)

		healthServerErr = make(chan error, 1)
		go func() {
			defer close(healthServerErr)
			if err := healthServer.ListenAndServe(cfg.Server.GRPCHealthPort); err != nil {
				healthServerErr <- err
			}
		}()
	}
	// gRPC health для оркестратора

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(log, &isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-healthServerErr: // nil канал, если GRPC_HEALTH_PORT не задан
		return fmt.Errorf("grpc health server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	if healthServer != nil {
		healthServer.SetServing(false)
	}

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}
	if healthServer != nil {
		healthServer.Stop(shutdownCtx)
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	// отложенные автосохранения пишутся до закрытия пула
	businessApp.ServiceBooking.Close()
	stopWorkers()
	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg *config.Config,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx, cfg.Server.RequestTimeout))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout, map[string]time.Duration{
		submitRouteName: cfg.BookingBackend.Timeout + submitTimeoutMargin,
	}))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(
		log,
		cfg.Server.RateLimiterQPS,
		token_bucket.NewKeyed(cfg.Server.RateLimiterBurst, float64(cfg.Server.RateLimiterQPS), rateLimiterIdleTTL),
	))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, app.Storages)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log, app.ServiceBooking)).Methods("GET")

	booking := router.PathPrefix("/booking/{profile}").Subrouter()
	booking.Handle("", booking_get.New(log, app.ServiceBooking)).Methods("GET")
	booking.Handle("/fields", booking_fields_patch.New(log, app.ServiceBooking)).Methods("PATCH")
	// next и previous регистрируются раньше номера шага
	booking.Handle("/steps/next", booking_steps_next_post.New(log, app.ServiceBooking)).Methods("POST")
	booking.Handle("/steps/previous", booking_steps_previous_post.New(log, app.ServiceBooking)).Methods("POST")
	booking.Handle("/steps/{step:[0-9]+}", booking_steps_goto_post.New(log, app.ServiceBooking)).Methods("POST")
	booking.Handle("/draft", booking_draft_post.New(log, app.ServiceBooking)).Methods("POST")
	booking.Handle("/draft", booking_draft_delete.New(log, app.ServiceBooking)).Methods("DELETE")
	booking.Handle("/draft/restore", booking_draft_restore_post.New(log, app.ServiceBooking)).Methods("POST")
	booking.Handle("/autosave", booking_autosave_put.New(log, app.ServiceBooking)).Methods("PUT")
	booking.Handle("/submit", booking_submit_post.New(log, app.ServiceBooking)).Methods("POST").Name(submitRouteName)

	router.Handle("/fare/estimate", fare_estimate_get.New(log, app.ServiceBooking)).Methods("GET")

	router.Handle("/notifications/{customer}", notifications_get.New(log, app.ServiceNotification)).Methods("GET")
	router.Handle("/notifications/{customer}/{id}/read", notification_read_post.New(log, app.ServiceNotification)).Methods("POST")

	return router
}

func initPprofRouter(log logger.Logger, isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, nil)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
