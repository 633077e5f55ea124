package redisx

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/printshop/catalog-api/internal/domain"
)

// ProductCache is a cache-aside layer over product reads. The store stays the
// source of truth; cache errors are swallowed so redis being down only costs
// the shortcut.
type ProductCache struct {
	rdb *redis.Client
}

func NewProductCache(rdb *redis.Client) *ProductCache {
	return &ProductCache{rdb: rdb}
}

func (c *ProductCache) Get(ctx context.Context, id string) (domain.Product, bool) {
	s, err := c.rdb.Get(ctx, fmt.Sprintf(KeyProduct, id)).Result()
	if err != nil || s == "" {
		return domain.Product{}, false
	}
	var product domain.Product
	if err := json.Unmarshal([]byte(s), &product); err != nil {
		return domain.Product{}, false
	}
	return product, true
}

func (c *ProductCache) Set(ctx context.Context, product domain.Product) {
	b, err := json.Marshal(product)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, fmt.Sprintf(KeyProduct, product.ID), b, TTLProduct).Err()
}

// Invalidate drops the cached copy after an edit or delete.
func (c *ProductCache) Invalidate(ctx context.Context, id string) {
	_ = c.rdb.Del(ctx, fmt.Sprintf(KeyProduct, id)).Err()
}
