package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"user-service/internal/userservice/config"
	httpdelivery "user-service/internal/userservice/delivery/http"
	"user-service/internal/userservice/usecase"

	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Wire dependencies
	service := usecase.NewUserService(logger)
	handler := httpdelivery.NewHandler(service, logger)
	rateLimiter := httpdelivery.NewRateLimiter(cfg.RateLimit)
	rateLimiter.StartCleanup(ctx)
	router := httpdelivery.NewRouter(handler, logger, rateLimiter)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.Int("rate_limit", cfg.RateLimit),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
