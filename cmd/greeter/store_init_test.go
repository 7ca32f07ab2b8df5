package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/greeter/internal/config"
	"github.com/osse101/greeter/internal/store"
)

func TestBuildStore(t *testing.T) {
	ctx := context.Background()

	t.Run("none keeps greetings in process", func(t *testing.T) {
		s, closeFn, err := buildStore(ctx, &config.Config{StoreDriver: config.StoreDriverNone, StoreCacheSize: 8})
		require.NoError(t, err)
		defer closeFn()
		assert.Nil(t, s)
	})

	t.Run("memory", func(t *testing.T) {
		s, closeFn, err := buildStore(ctx, &config.Config{StoreDriver: config.StoreDriverMemory})
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &store.MemoryStore{}, s)
	})

	t.Run("file round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "greetings.json")
		s, closeFn, err := buildStore(ctx, &config.Config{StoreDriver: config.StoreDriverFile, StoreFilePath: path})
		require.NoError(t, err)
		defer closeFn()

		require.NoError(t, s.Set(ctx, "customGreetings", `{"zh-CN_morning":"早"}`))
		value, found, err := store.NewFileStore(path).Get(ctx, "customGreetings")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `{"zh-CN_morning":"早"}`, value)
	})

	t.Run("cache wraps backing store", func(t *testing.T) {
		s, closeFn, err := buildStore(ctx, &config.Config{
			StoreDriver:    config.StoreDriverMemory,
			StoreCacheSize: 4,
			StoreCacheTTL:  time.Minute,
		})
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &store.CachedStore{}, s)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, closeFn, err := buildStore(ctx, &config.Config{StoreDriver: "redis"})
		require.Error(t, err)
		closeFn()
	})
}
