package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ethnicshop.GO/catalog"
	"ethnicshop.GO/config"
	"ethnicshop.GO/core/cache"
	"ethnicshop.GO/core/metrics"
)

// CacheTag groups every cached query result so a reimport can invalidate
// them all at once.
const CacheTag = "catalog"

const cacheTTL = 300 // seconds

// CachedSearch answers a search+sort query through the cache layers: Redis
// when configured, the in-process cache otherwise. Both layers degrade to a
// direct catalog scan; caching never changes results.
func CachedSearch(c *catalog.Catalog, query string, filters catalog.FilterState, sortBy catalog.SortOption) []catalog.Product {
	key := searchKey(query, filters, sortBy)

	if config.RedisClient != nil {
		if hit := redisGet(config.RedisClient, key); hit != nil {
			metrics.CatalogSearchCounter.WithLabelValues("redis_hit").Inc()
			return hit
		}
	} else if v, ok := cache.GetInstance().Get(key); ok {
		if products, isSlice := v.([]catalog.Product); isSlice {
			metrics.CatalogSearchCounter.WithLabelValues("memory_hit").Inc()
			return products
		}
	}

	results := c.Search(query, filters)
	catalog.SortProducts(results, sortBy)
	metrics.CatalogSearchCounter.WithLabelValues("miss").Inc()

	if config.RedisClient != nil {
		redisSet(config.RedisClient, key, results)
	} else {
		cache.GetInstance().Set(key, results, cacheTTL, []string{CacheTag})
	}
	return results
}

// InvalidateCache drops every cached query result.
func InvalidateCache() {
	cache.GetInstance().DeleteByTag(CacheTag)
	if config.RedisClient != nil {
		ctx, cancel := context.WithTimeout(config.RedisCtx(), 2*time.Second)
		defer cancel()
		iter := config.RedisClient.Scan(ctx, 0, "catalog:search:*", 0).Iterator()
		for iter.Next(ctx) {
			config.RedisClient.Del(ctx, iter.Val())
		}
	}
}

func searchKey(query string, filters catalog.FilterState, sortBy catalog.SortOption) string {
	priceRange := ""
	if filters.PriceRange != nil {
		priceRange = fmt.Sprintf("%d-%d", filters.PriceRange[0], filters.PriceRange[1])
	}
	return fmt.Sprintf("catalog:search:%s|%s|%s|%s|%s|%s|%s|%s",
		query, filters.Category, filters.Fabric, filters.Color, filters.Occasion, filters.Gender, priceRange, sortBy)
}

func redisGet(client *redis.Client, key string) []catalog.Product {
	ctx, cancel := context.WithTimeout(config.RedisCtx(), 2*time.Second)
	defer cancel()
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var products []catalog.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil
	}
	return products
}

func redisSet(client *redis.Client, key string, products []catalog.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(config.RedisCtx(), 2*time.Second)
	defer cancel()
	client.Set(ctx, key, data, cacheTTL*time.Second)
}
