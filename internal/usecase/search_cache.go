package usecase

import (
	"context"
	"log"
	"time"
)

type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

const fillLockTTL = 10 * time.Second

// cachedRead serves key from cache when possible. On a miss only the caller
// that wins the fill lock writes the loaded value back; the others load
// straight from the store.
func cachedRead[T any](ctx context.Context, cache SearchCache, logger *log.Logger, area, key string, load func() (T, error)) (T, error) {
	if cache == nil {
		return load()
	}

	var cached T
	hit, err := cache.GetJSON(ctx, key, &cached)
	if err == nil && hit {
		logf(logger, "[%s] Cache HIT: %s", area, key)
		return cached, nil
	}
	logf(logger, "[%s] Cache MISS: %s", area, key)

	lockKey := LockKey(key)
	locked, err := cache.SetIfNotExists(ctx, lockKey, "1", fillLockTTL)
	if err != nil {
		locked = false
	}

	v, err := load()
	if err != nil {
		if locked {
			_ = cache.Delete(ctx, lockKey)
		}
		return v, err
	}

	if locked {
		if err := cache.SetJSON(ctx, key, v, 0); err == nil {
			logf(logger, "[%s] Cache SET: %s", area, key)
		}
		_ = cache.Delete(ctx, lockKey)
	}
	return v, nil
}

func logf(logger *log.Logger, format string, args ...any) {
	if logger == nil {
		return
	}
	logger.Printf(format, args...)
}
