package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/greeter/internal/config"
	"github.com/osse101/greeter/internal/database"
	"github.com/osse101/greeter/internal/store"
)

// buildStore opens the custom greeting store selected by STORE_DRIVER.
// A nil store with a nil error means greetings live in memory for the process only.
// The returned close func is always safe to call.
func buildStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	noop := func() {}

	var (
		s       store.Store
		closeFn = noop
	)

	switch cfg.StoreDriver {
	case config.StoreDriverNone:
		return nil, noop, nil
	case config.StoreDriverMemory:
		s = store.NewMemoryStore()
	case config.StoreDriverFile:
		s = store.NewFileStore(cfg.StoreFilePath)
	case config.StoreDriverPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, noop, err
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, noop, err
		}
		s = store.NewPostgresStore(pool)
		closeFn = pool.Close
	default:
		return nil, noop, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	if cfg.StoreCacheSize > 0 {
		s = store.NewCachedStore(s, cfg.StoreCacheSize, cfg.StoreCacheTTL)
	}

	slog.Default().Info("Store ready", "driver", cfg.StoreDriver, "cache_size", cfg.StoreCacheSize)
	return s, closeFn, nil
}
