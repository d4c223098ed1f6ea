package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"drcal/internal/config"
	"drcal/internal/events"
	"drcal/internal/events/event_api"
	"drcal/internal/logger"
	"drcal/internal/observability"
	"drcal/internal/utils"
	"drcal/internal/web"
)

func main() {
	envLoaded := godotenv.Load() == nil

	cfg := config.Load()

	logger := logger.NewLogger(cfg.Log.Dir)
	defer logger.Close()

	logger.Info("APP", "Starting DR test scheduler initialization")
	if envLoaded {
		logger.Info("CONFIG", "Loaded environment variables from .env file")
	} else {
		logger.Warn("CONFIG", ".env file not found, using environment variables")
	}

	store := events.NewEventStore()
	scheduler := events.NewScheduler(store)
	metrics := observability.NewMetrics()

	apiHandler := event_api.NewHandler(scheduler, logger, metrics, cfg.Calendar.Name)

	webHandler, err := web.NewHandler(scheduler, logger, metrics)
	if err != nil {
		logger.Fatal("WEB", fmt.Sprintf("Failed to build web handler: %v", err))
	}

	logger.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()
	r.Use(observability.Middleware(logger, metrics))

	webHandler.RegisterRoutes(r)
	logger.Info("ROUTER", "Web routes registered at /")

	apiHandler.RegisterRoutes(r)
	logger.Info("ROUTER", "Event routes registered under /api/events")

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.SendJSON(w, http.StatusOK, map[string]interface{}{
			"status": "ok",
			"events": store.Len(),
		})
	})

	if cfg.Metrics.Enabled {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
		logger.Info("ROUTER", "Prometheus metrics exposed at /metrics")
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP", fmt.Sprintf("🚀 DR test scheduler running on :%s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	logger.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	logger.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("HTTP", fmt.Sprintf("Server Shutdown Failed: %v", err))
	} else {
		logger.Info("HTTP", "✅ DR test scheduler shutdown complete")
	}
}
