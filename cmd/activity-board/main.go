package main

import (
	"activityBoard/internal/board"
	"activityBoard/internal/clients/activities"
	"activityBoard/internal/config"
	"activityBoard/internal/http-server/handlers/board/showBoard"
	"activityBoard/internal/http-server/handlers/board/submitSignup"
	"activityBoard/internal/http-server/middleware/mwlogger"
	"activityBoard/internal/lib/logger"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/lib/metrics"
	"activityBoard/internal/surface"
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	cfg := config.MustLoad()

	log := logger.Setup(cfg.Env)

	log.Info("Starting activity board",
		slog.String("env", cfg.Env),
		slog.String("activities_api", cfg.ActivitiesAPI.BaseURL),
	)

	client, err := activities.New(cfg.ActivitiesAPI.BaseURL, activities.WithTimeout(cfg.ActivitiesAPI.Timeout))
	if err != nil {
		log.Error("failed to init activities client", sl.Err(err))
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()

	recorder, err := metrics.NewBoard(registry)
	if err != nil {
		log.Error("failed to init metrics", sl.Err(err))
		os.Exit(1)
	}

	page := surface.NewPage()
	b := board.New(log, client, client, page.Surfaces(), board.WithRecorder(recorder))
	defer b.Close()

	if err = b.LoadActivities(context.Background()); err != nil {
		log.Warn("initial activities load failed", sl.Err(err))
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)

	router.Get("/", showBoard.New(log, b, page))
	router.Post("/signup", submitSignup.New(log, b, page))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")
}
