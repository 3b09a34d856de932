package app

import (
	"context"
	"fmt"

	"resepnusantara/internal/config"
	"resepnusantara/internal/infrastructure/storage"
	"resepnusantara/internal/infrastructure/storage/bbolt"
	"resepnusantara/internal/infrastructure/storage/memory"
	"resepnusantara/internal/infrastructure/storage/postgres"
	"resepnusantara/internal/infrastructure/storage/redis"
	"resepnusantara/internal/infrastructure/storage/sqlite"
	"resepnusantara/internal/utils/logger"

	"golang.org/x/exp/slog"
)

// OpenMedium открывает хранилище, выбранное в конфигурации
func OpenMedium(ctx context.Context, cfg config.Storage) (storage.Medium, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.New(cfg.QuotaBytes), nil
	case config.DriverSQLite:
		return sqlite.New(cfg.SQLitePath(), nil)
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.DatabaseURI, nil)
	case config.DriverBolt:
		return bbolt.New(cfg.BoltPath())
	case config.DriverRedis:
		return redis.New(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// openMediumOrMemory при ошибке открытия переходит на хранилище в памяти:
// данные живут до конца процесса, но операции продолжают работать
func openMediumOrMemory(ctx context.Context, cfg config.Storage, log *slog.Logger) storage.Medium {
	medium, err := OpenMedium(ctx, cfg)
	if err != nil {
		log.Warn("failed to open storage, falling back to memory",
			"driver", cfg.Driver, logger.Err(err))
		return memory.New(cfg.QuotaBytes)
	}
	log.Debug("storage opened", "driver", cfg.Driver)
	return medium
}
