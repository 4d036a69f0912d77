package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"product_catalog_backend/internal/products/domain"
	"product_catalog_backend/platform/logger"
)

const productCacheKeyPrefix = "catalog:product:"

// CachedRepo adds a read-through Redis cache in front of single-product lookups.
// Listings and counts go straight to the wrapped repository.
type CachedRepo struct {
	Repository
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewCached wraps inner with a product lookup cache.
func NewCached(inner Repository, client *redis.Client, ttl time.Duration, log *logger.Logger) *CachedRepo {
	return &CachedRepo{Repository: inner, client: client, ttl: ttl, log: log}
}

// Compile-time check that CachedRepo implements Repository.
var _ Repository = (*CachedRepo)(nil)

// GetProduct serves the product from cache when present. Cache failures fall
// back to the wrapped repository; not-found results are never cached.
func (r *CachedRepo) GetProduct(ctx context.Context, uuid string) (domain.Base, error) {
	key := productCacheKey(uuid)

	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var doc Document
		decodeErr := json.Unmarshal(raw, &doc)
		if decodeErr == nil {
			return doc.ToBase(), nil
		}
		r.log.WithContext(ctx).CacheError("decode", key, decodeErr)
	case !errors.Is(err, redis.Nil):
		r.log.WithContext(ctx).CacheError("get", key, err)
	}

	product, err := r.Repository.GetProduct(ctx, uuid)
	if err != nil {
		return domain.Base{}, err
	}

	payload, err := json.Marshal(FromBase(product))
	if err != nil {
		r.log.WithContext(ctx).CacheError("encode", key, err)
		return product, nil
	}
	if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		r.log.WithContext(ctx).CacheError("set", key, err)
	}

	return product, nil
}

func productCacheKey(uuid string) string {
	return productCacheKeyPrefix + uuid
}
