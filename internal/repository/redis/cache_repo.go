package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DRSN-tech/catalog-backend/internal/cfg"
	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/catalog-backend/pkg/clients"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const categoriesKey = "catalog:categories"

// CacheRepo кэширует публичные чтения каталога: продукт по slug и список категорий.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.CatalogConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.CatalogConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProduct возвращает продукт из кэша. Промах дает (nil, nil).
func (c *CacheRepo) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	data, err := c.client.Client.Get(ctx, productKey(slug)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil // cache miss
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.ProductRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		c.drop(productKey(slug))
		return nil, nil
	}

	product, err := c.conv.ToProduct(model)
	if err != nil {
		c.logger.Warnf("Cached product is invalid: %v", e.Wrap(whereami.WhereAmI(), err))
		c.drop(productKey(slug))
		return nil, nil
	}

	if product.Slug != slug {
		c.logger.Warnf("Cache slug mismatch: key_slug: %s, model_slug: %s", slug, product.Slug)
		c.drop(productKey(slug))
		return nil, nil
	}

	return product, nil
}

func (c *CacheRepo) SetProduct(ctx context.Context, product *domain.Product) error {
	data, err := json.Marshal(c.conv.ToProductModel(product))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, productKey(product.Slug), data, c.cfg.ProductTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	return nil
}

// DeleteProducts удаляет продукты из кэша по slug
func (c *CacheRepo) DeleteProducts(ctx context.Context, slugs ...string) error {
	if len(slugs) == 0 {
		return nil
	}

	keys := make([]string, len(slugs))
	for i, s := range slugs {
		keys[i] = productKey(s)
	}

	if err := c.client.Client.Del(ctx, keys...).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	return nil
}

// GetCategories возвращает список категорий из кэша. Промах дает (nil, nil).
func (c *CacheRepo) GetCategories(ctx context.Context) ([]*domain.Category, error) {
	data, err := c.client.Client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.CategoryRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		c.drop(categoriesKey)
		return nil, nil
	}

	categories, err := c.conv.ToArrCategory(models)
	if err != nil {
		c.logger.Warnf("Cached categories are invalid: %v", e.Wrap(whereami.WhereAmI(), err))
		c.drop(categoriesKey)
		return nil, nil
	}

	return categories, nil
}

func (c *CacheRepo) SetCategories(ctx context.Context, categories []*domain.Category) error {
	data, err := json.Marshal(c.conv.ToArrCategoryModel(categories))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, categoriesKey, data, c.cfg.CategoryTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	return nil
}

func (c *CacheRepo) DeleteCategories(ctx context.Context) error {
	if err := c.client.Client.Del(ctx, categoriesKey).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	return nil
}

// drop удаляет испорченную запись, чтобы следующее чтение пошло в хранилище.
func (c *CacheRepo) drop(key string) {
	if err := c.client.Client.Del(context.Background(), key).Err(); err != nil {
		c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}
}

// productKey возвращает Redis-ключ для одного продукта
func productKey(slug string) string {
	return fmt.Sprintf("catalog:product:%s", slug)
}
