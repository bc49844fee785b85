package database

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"tvshop_back_end/internal/assets"
	"tvshop_back_end/internal/config"
)

// Connections holds the optional backing services. A nil field means the
// service is not configured.
type Connections struct {
	Redis *redis.Client
	MinIO *minio.Client
}

// Connect dials every configured service and fails on the first error.
func Connect(ctx context.Context, cfg config.Config, log *zap.Logger) (*Connections, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	conns := &Connections{}

	if cfg.Redis.Enabled() {
		client, err := connectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		conns.Redis = client
		log.Info("✅ connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	if cfg.Minio.Enabled() {
		client, err := connectMinIO(ctx, cfg.Minio)
		if err != nil {
			conns.Close()
			return nil, err
		}
		conns.MinIO = client
		log.Info("✅ connected to MinIO",
			zap.String("endpoint", cfg.Minio.Endpoint),
			zap.String("bucket", cfg.Minio.Bucket))
	}

	return conns, nil
}

func (c *Connections) Close() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}

func connectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// The bucket is only read, so it must already exist.
func connectMinIO(ctx context.Context, cfg config.MinioConfig) (*minio.Client, error) {
	client, err := assets.NewMinioClient(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.UseSSL)
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("minio bucket %s does not exist", cfg.Bucket)
	}
	return client, nil
}
