package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/syntaxscout-api/internal/repository"
	"github.com/noah-isme/syntaxscout-api/internal/service"
	"github.com/noah-isme/syntaxscout-api/pkg/cache"
	"github.com/noah-isme/syntaxscout-api/pkg/config"
)

const redisKeyPrefix = "syntaxscout:"

// Store is a key-value backend that can also enumerate its keys.
type Store interface {
	service.KeyValueStore
	Keys(ctx context.Context) ([]string, error)
}

// OpenStore connects the backend selected by cfg.Storage.Driver. The returned
// close function releases connections and is never nil.
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Store, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	noop := func() error { return nil }

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		logger.Warn("using in-memory storage, data is lost on exit")
		return repository.NewMemoryKVRepository(), noop, nil

	case "", config.StorageDisk:
		logger.Sugar().Infow("storage ready", "driver", config.StorageDisk, "dir", cfg.Storage.Dir)
		return repository.NewDiskKVRepository(cfg.Storage.Dir, cfg.Storage.CacheBytes), noop, nil

	case config.StorageRedis:
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		repo := repository.NewRedisKVRepository(client, redisKeyPrefix)
		logger.Sugar().Infow("storage ready", "driver", config.StorageRedis, "host", cfg.Redis.Host)
		return repo, repo.Close, nil

	case config.StoragePostgres, config.StorageSQLite:
		db, err := openSQL(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		repo := repository.NewSQLKVRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		logger.Sugar().Infow("storage ready", "driver", cfg.Storage.Driver)
		return repo, db.Close, nil
	}

	return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
