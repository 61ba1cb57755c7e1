package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/patricktheassistant/cyon-movie-night/api"
	"github.com/patricktheassistant/cyon-movie-night/metrics"
	"github.com/patricktheassistant/cyon-movie-night/registration"
	"github.com/patricktheassistant/cyon-movie-night/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Optional .env for local runs; real deployments set env vars.
	_ = godotenv.Load()

	cfg := getConfigFromEnv()

	logger := createLogger(cfg.Env)

	m := metrics.New(prometheus.DefaultRegisterer)

	sender := createEmailSender(cfg, logger, m)
	service := registration.NewService(session.NewStore(), sender, cfg.Event, cfg.AdminEmail)

	ticketAPI := api.NewAPI(service, logger, cfg.Env, m)

	apiHandler, err := ticketAPI.Handler()
	if err != nil {
		logger.Error("Failed to build API handler", "error", err)
		os.Exit(1)
	}

	root := http.NewServeMux()
	root.Handle("GET /metrics", promhttp.Handler())
	root.Handle("/", apiHandler)

	s := &http.Server{
		Handler:      root,
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", "addr", s.Addr, "event", cfg.Event.Theme)

		err := s.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = s.Shutdown(ctx)
	if err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

func createLogger(env api.Environment) *slog.Logger {
	if env == api.LOCAL {
		return slog.New(slog.NewTextHandler(os.Stdout, nil))
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
