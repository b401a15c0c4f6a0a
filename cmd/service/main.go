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

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "fooddelivery/internal/app"
	"fooddelivery/internal/handlers/rest/agent_get"
	"fooddelivery/internal/handlers/rest/agent_orders_get"
	"fooddelivery/internal/handlers/rest/agent_post"
	"fooddelivery/internal/handlers/rest/agents_get"
	"fooddelivery/internal/handlers/rest/customer_orders_get"
	"fooddelivery/internal/handlers/rest/customer_post"
	"fooddelivery/internal/handlers/rest/delivery_assign_post"
	"fooddelivery/internal/handlers/rest/delivery_complete_post"
	"fooddelivery/internal/handlers/rest/healthcheck_head"
	"fooddelivery/internal/handlers/rest/menu_item_delete"
	"fooddelivery/internal/handlers/rest/menu_post"
	"fooddelivery/internal/handlers/rest/menus_get"
	"fooddelivery/internal/handlers/rest/order_cancel_post"
	"fooddelivery/internal/handlers/rest/order_get"
	"fooddelivery/internal/handlers/rest/order_post"
	"fooddelivery/internal/handlers/rest/order_status_put"
	"fooddelivery/internal/handlers/rest/ping_get"
	"fooddelivery/internal/handlers/rest/shipment_get"
	"fooddelivery/internal/handlers/rest/shipment_override_put"
	"fooddelivery/internal/pkg/config"
	"fooddelivery/internal/pkg/dotenv"
	metrics_system "fooddelivery/internal/pkg/metrics"
	"fooddelivery/internal/pkg/middlewares/graceful_shutdown"
	"fooddelivery/internal/pkg/middlewares/metrics"
	"fooddelivery/internal/pkg/middlewares/rate_limiter"
	"fooddelivery/internal/pkg/middlewares/timeout"
	"fooddelivery/internal/pkg/postgres"
	"fooddelivery/pkg/logger"
	"fooddelivery/pkg/logger/zap_adapter"
	"fooddelivery/pkg/token_bucket"
)

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

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting food-delivery application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
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

//nolint:contextcheck // наследование от context.Background() здесь часть graceful shutdown
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

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer businessApp.Supervisor.Shutdown()

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
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
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

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

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/customer", customer_post.New(log, app.ServiceCustomer)).Methods("POST")
	router.Handle("/customer/{id}/orders", customer_orders_get.New(log, app.ServiceOrder)).Methods("GET")

	router.Handle("/menu/item", menu_post.New(log, app.ServiceMenu)).Methods("POST")
	router.Handle("/menu/item/{id}", menu_item_delete.New(log, app.ServiceMenu)).Methods("DELETE")
	router.Handle("/menu/items", menus_get.New(log, app.ServiceMenu)).Methods("GET")

	router.Handle("/order", order_post.New(log, app.ServiceOrder)).Methods("POST")
	router.Handle("/order/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/order/{id}/status", order_status_put.New(log, app.ServiceOrder)).Methods("PUT")
	router.Handle("/order/{id}/cancel", order_cancel_post.New(log, app.ServiceOrder)).Methods("POST")

	router.Handle("/agent", agent_post.New(log, app.ServiceAssignment)).Methods("POST")
	router.Handle("/agent/{id}", agent_get.New(log, app.ServiceAssignment)).Methods("GET")
	router.Handle("/agent/{id}/orders", agent_orders_get.New(log, app.ServiceAssignment)).Methods("GET")
	router.Handle("/agents", agents_get.New(log, app.ServiceAssignment)).Methods("GET")

	router.Handle("/delivery/assign", delivery_assign_post.New(log, app.ServiceAssignment)).Methods("POST")
	router.Handle("/delivery/complete", delivery_complete_post.New(log, app.ServiceAssignment)).Methods("POST")

	router.Handle("/shipment/{order_id}", shipment_get.New(log, app.ServiceShipment)).Methods("GET")
	router.Handle("/shipment/{order_id}/status", shipment_override_put.New(log, app.ServiceShipment)).Methods("PUT")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
