package service

import (
	"context"

	"go.uber.org/zap"
)

// MenuCache fronts the public menu list reads. A nil cache disables caching;
// cache failures are logged and the store is used instead, never surfaced.
type MenuCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

func cacheGet(ctx context.Context, c MenuCache, key string, dest interface{}) bool {
	if c == nil {
		return false
	}

	hit, err := c.GetJSON(ctx, key, dest)
	if err != nil {
		zap.L().Warn("cache read failed", zap.String("key", key), zap.Error(err))

		return false
	}

	return hit
}

func cacheSet(ctx context.Context, c MenuCache, key string, v interface{}) {
	if c == nil {
		return
	}

	if err := c.SetJSON(ctx, key, v); err != nil {
		zap.L().Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func cacheInvalidate(ctx context.Context, c MenuCache, keys ...string) {
	if c == nil {
		return
	}

	if err := c.Delete(ctx, keys...); err != nil {
		zap.L().Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
