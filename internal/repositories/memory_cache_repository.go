package repositories

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	apperrors "gearguard/pkg/errors"
)

// MemoryCacheRepository is the single-process cache backend, used when no
// Redis address is configured.
type MemoryCacheRepository struct {
	store *gocache.Cache
}

func NewMemoryCacheRepository() CacheRepositoryInterface {
	return &MemoryCacheRepository{
		store: gocache.New(gocache.NoExpiration, time.Minute*5),
	}
}

func (r *MemoryCacheRepository) Get(ctx context.Context, key string) (string, error) {
	if v, found := r.store.Get(key); found {
		if s, ok := v.(string); ok {
			return s, nil
		}
	}
	return "", apperrors.ErrNotFound
}

func (r *MemoryCacheRepository) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	r.store.Set(key, value, expiration)
	return nil
}

func (r *MemoryCacheRepository) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		r.store.Delete(key)
	}
	return nil
}
