package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/careerbridge/careerbridge/internal/logging"
	"github.com/careerbridge/careerbridge/internal/server/config"
	"github.com/careerbridge/careerbridge/internal/server/httpapi"
	"github.com/careerbridge/careerbridge/internal/server/jobs"
	"github.com/careerbridge/careerbridge/internal/server/users"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	userService := users.NewService(users.NewMemoryRepository(), logger)
	api := httpapi.NewServer(userService, jobs.NewMemoryRepository(), cfg, logger)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info(ctx, "dev server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn(ctx, "shutdown incomplete", "error", err)
	}
}
