package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	sentry "github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/d60-Lab/neon-blog/config"
	"github.com/d60-Lab/neon-blog/internal/api"
	"github.com/d60-Lab/neon-blog/internal/api/handler"
	"github.com/d60-Lab/neon-blog/internal/repository"
	"github.com/d60-Lab/neon-blog/internal/service"
	"github.com/d60-Lab/neon-blog/internal/storage"
	"github.com/d60-Lab/neon-blog/pkg/database"
	"github.com/d60-Lab/neon-blog/pkg/logger"
	"github.com/d60-Lab/neon-blog/pkg/tracing"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Log.Level); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	shutdownTracing, err := tracing.Init(ctx, cfg)
	if err != nil {
		logger.Fatal("init tracing", zap.Error(err))
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Fatal("init database", zap.Error(err))
	}

	postRepo := repository.NewPostRepository(db)
	if err := postRepo.Init(ctx); err != nil {
		logger.Fatal("init post store", zap.Error(err))
	}

	mediaStore, err := storage.NewMediaStore(cfg.Uploads.Dir)
	if err != nil {
		logger.Fatal("init media store", zap.Error(err))
	}

	postSvc := service.NewPostService(postRepo)
	h := handler.New(postSvc, mediaStore)
	router := api.NewRouter(cfg, h)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: router}

	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", zap.Error(err))
	}
}
