package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"resepnusantara/internal/app"
	"resepnusantara/internal/app/server/api"
	"resepnusantara/internal/config"
	"resepnusantara/internal/utils/logger"
)

func main() {
	conf := config.MustLoad()
	log := logger.WithLevel(conf.Env, conf.Logger.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(ctx, conf, log)
	defer func() {
		if err := a.Close(); err != nil {
			log.Error("failed to close storage", logger.Err(err))
		}
	}()

	srv := &http.Server{
		Addr:    conf.Server.RunAddress,
		Handler: api.New(a, log),
	}

	go func() {
		log.Info("starting server", "address", conf.Server.RunAddress, "env", conf.Env, "storage", conf.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", logger.Err(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", logger.Err(err))
	}
}
