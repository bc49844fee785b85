package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tvshop_back_end/internal/assets"
	"tvshop_back_end/internal/cache"
	"tvshop_back_end/internal/catalog"
	"tvshop_back_end/internal/config"
	"tvshop_back_end/internal/database"
	"tvshop_back_end/internal/logger"
	"tvshop_back_end/internal/middleware"
	"tvshop_back_end/internal/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("❌ logger: %v", err)
	}
	defer zl.Sync()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conns, err := database.Connect(ctx, cfg, zl)
	if err != nil {
		return err
	}
	defer conns.Close()

	deps := routes.Deps{
		Catalog:      catalog.Default(),
		Site:         assets.NewDiskStore(cfg.StaticRoot),
		MaxBodyBytes: cfg.MaxBodyBytes,
		Log:          zl,
	}
	if conns.MinIO != nil {
		deps.Images = assets.NewMinioStore(conns.MinIO, cfg.Minio.Bucket, cfg.Minio.Prefix)
	} else {
		deps.Images = assets.NewDiskStore(filepath.Join(cfg.StaticRoot, "images"))
	}
	if conns.Redis != nil {
		counter := cache.NewRedisCounter(conns.Redis, "api_requests:")
		deps.RateLimit = middleware.APIRateLimit(counter, cfg.RateLimitPerMinute, middleware.APIWindow, zl)
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.NewEngine(deps),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("✅ server running",
			zap.String("url", "http://localhost"+cfg.Addr()),
			zap.String("static_root", cfg.StaticRoot),
			zap.Int("products", deps.Catalog.Len()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	zl.Info("server exited")
	return nil
}
