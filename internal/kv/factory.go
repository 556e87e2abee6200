package kv

import (
	"context"
	"fmt"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/config"
)

// Open constructs the Store selected by cfg.Backend.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendSQLite:
		return NewSQLiteStore(ctx, cfg.SQLitePath)
	case config.BackendBadger:
		return NewBadgerStore(cfg.BadgerPath)
	case config.BackendRedis:
		return NewRedisStore(cfg.RedisAddr, cfg.RedisDB), nil
	case config.BackendPostgres:
		return NewPostgresStore(ctx, cfg.DatabaseDSN)
	case config.BackendS3:
		return NewS3Store(ctx, S3Config{
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			Bucket:       cfg.S3Bucket,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		})
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
