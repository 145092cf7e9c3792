package main

import (
	"activityBoard/internal/config"
	"activityBoard/internal/http-server/handlers/activity/getActivities"
	"activityBoard/internal/http-server/handlers/activity/signup"
	"activityBoard/internal/http-server/handlers/activity/unregister"
	"activityBoard/internal/http-server/middleware/mwlogger"
	"activityBoard/internal/lib/logger"
	"activityBoard/internal/lib/logger/sl"
	"activityBoard/internal/models"
	"activityBoard/internal/storage/memory"
	"activityBoard/internal/storage/postgres"
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type Storage interface {
	GetActivities() (models.Activities, error)
	SignupParticipant(activityName, email string) error
	UnregisterParticipant(activityName, email string) error
	Close() error
}

func main() {
	cfg := config.MustLoad()

	log := logger.Setup(cfg.Env)

	log.Info("Starting activities api", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage))
	log.Debug("Debug messages are enabled")

	storage, err := openStorage(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/activities", http.StatusFound)
	})

	router.Get("/activities", getActivities.New(log, storage))
	router.Post("/activities/{name}/signup", signup.New(log, storage))
	router.Post("/activities/{name}/unregister", unregister.New(log, storage))

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

	if err = storage.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func openStorage(cfg *config.Config) (Storage, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		s, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StorageMemory:
		return memory.New(memory.Default), nil
	default:
		return nil, errors.New("unknown storage " + cfg.Storage)
	}
}
