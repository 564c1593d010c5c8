package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/richtext"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/google/uuid"
)

const cacheWriteTimeout = 500 * time.Millisecond

// CatalogUseCase реализует операции каталога поверх выбранного хранилища.
type CatalogUseCase struct {
	categoryRepo CategoryRepository
	productRepo  ProductRepository
	txManager    TxManager
	imagesInfra  ImagesInfra
	cacheRepo    CacheRepository
	publisher    EventPublisher
	logger       logger.Logger
	now          func() time.Time
	cacheGens    *cacheGenerations
}

func NewCatalogUC(
	categoryRepo CategoryRepository,
	productRepo ProductRepository,
	txManager TxManager,
	imagesInfra ImagesInfra,
	cacheRepo CacheRepository,
	publisher EventPublisher,
	logger logger.Logger,
) *CatalogUseCase {
	if cacheRepo == nil {
		cacheRepo = noopCache{}
	}
	if publisher == nil {
		publisher = NoopPublisher()
	}

	return &CatalogUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		txManager:    txManager,
		imagesInfra:  imagesInfra,
		cacheRepo:    cacheRepo,
		publisher:    publisher,
		logger:       logger,
		now:          time.Now,
		cacheGens:    newCacheGenerations(),
	}
}

// timestamp возвращает текущее время с точностью до микросекунд,
// как его хранит PostgreSQL.
func (c *CatalogUseCase) timestamp() time.Time {
	return c.now().UTC().Truncate(time.Microsecond)
}

// nextUpdatedAt гарантирует строго возрастающий updated_at.
func (c *CatalogUseCase) nextUpdatedAt(prev time.Time) time.Time {
	now := c.timestamp()
	if !now.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return now
}

// publish отправляет событие изменения каталога. Ошибки только логируются.
func (c *CatalogUseCase) publish(ctx context.Context, kind domain.EventKind, id, slug string) {
	event := domain.CatalogEvent{
		ID:         uuid.NewString(),
		Kind:       kind,
		EntityID:   id,
		Slug:       slug,
		OccurredAt: c.timestamp(),
	}
	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.Warnf("Failed to publish %s event for %s: %v", kind, id, err)
	}
}

// invalidateProducts удаляет продукты из кэша. Ошибки только логируются.
// Поколение увеличивается до удаления, чтобы запоздавшая фоновая запись
// увидела инвалидацию.
func (c *CatalogUseCase) invalidateProducts(ctx context.Context, slugs ...string) {
	if len(slugs) == 0 {
		return
	}
	keys := make([]string, len(slugs))
	for i, s := range slugs {
		keys[i] = productCacheKey(s)
	}
	c.cacheGens.bump(keys...)

	if err := c.cacheRepo.DeleteProducts(ctx, slugs...); err != nil {
		c.logger.Warnf("Failed to invalidate products %v: %v", slugs, err)
	}
}

// invalidateCategories удаляет список категорий из кэша. Ошибки только логируются.
func (c *CatalogUseCase) invalidateCategories(ctx context.Context) {
	c.cacheGens.bump(categoriesCacheKey)
	if err := c.cacheRepo.DeleteCategories(ctx); err != nil {
		c.logger.Warnf("Failed to invalidate categories: %v", err)
	}
}

// cacheInBackground кэширует значение в фоне, не задерживая ответ.
// gen — поколение ключа, снятое до чтения из хранилища. Если ключ был
// инвалидирован раньше записи, она пропускается; если во время записи,
// только что записанное значение удаляется через drop.
func (c *CatalogUseCase) cacheInBackground(op, key string, gen uint64, set, drop func(ctx context.Context) error) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), cacheWriteTimeout)
		defer cancel()

		if c.cacheGens.current(key) != gen {
			return
		}
		if err := set(bgCtx); err != nil {
			c.logger.Warnf("Failed to cache in background: %v", e.Wrap(op, err))
			return
		}
		if c.cacheGens.current(key) != gen {
			if err := drop(bgCtx); err != nil {
				c.logger.Warnf("Failed to drop stale cache entry %s: %v", key, e.Wrap(op, err))
			}
		}
	}()
}

// cleanupImages передает изображения хранилищу на фоновое удаление.
func (c *CatalogUseCase) cleanupImages(urls []string) {
	if len(urls) == 0 {
		return
	}
	c.imagesInfra.CleanupImages(urls)
}

// productImageURLs возвращает все изображения хранилища, на которые
// ссылается продукт, включая встроенные в rich-text поля, без повторов.
func (c *CatalogUseCase) productImageURLs(p *domain.Product) []string {
	candidates := p.MediaURLs()
	for _, html := range domain.RichTextValues(p.Content) {
		candidates = append(candidates, richtext.ExtractImageSources(html)...)
	}

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, u := range candidates {
		if _, dup := seen[u]; dup || !c.imagesInfra.Owns(u) {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

// supersededImages возвращает изображения старой версии продукта,
// на которые больше не ссылается новая.
func (c *CatalogUseCase) supersededImages(prev, next *domain.Product) []string {
	keep := make(map[string]struct{})
	for _, u := range c.productImageURLs(next) {
		keep[u] = struct{}{}
	}

	var out []string
	for _, u := range c.productImageURLs(prev) {
		if _, ok := keep[u]; !ok {
			out = append(out, u)
		}
	}
	return out
}

// noopCache используется, когда кэш не настроен: всегда промах.
type noopCache struct{}

func (noopCache) GetProduct(context.Context, string) (*domain.Product, error) { return nil, nil }
func (noopCache) SetProduct(context.Context, *domain.Product) error { return nil }
func (noopCache) DeleteProducts(context.Context, ...string) error { return nil }
func (noopCache) GetCategories(context.Context) ([]*domain.Category, error) { return nil, nil }
func (noopCache) SetCategories(context.Context, []*domain.Category) error { return nil }
func (noopCache) DeleteCategories(context.Context) error { return nil }
