package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/form"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/slug"
)

// AddCategory создает категорию. Slug выводится из имени, уникальность не проверяется.
func (c *CatalogUseCase) AddCategory(ctx context.Context, in form.CategoryForm) (*domain.Category, error) {
	const op = "CatalogUseCase.AddCategory"

	in.Name = strings.TrimSpace(in.Name)
	if err := in.Validate(); err != nil {
		return nil, e.Wrap(op, err)
	}

	category := domain.NewCategory(slug.NewID(), in.Name, slug.Make(in.Name), c.timestamp())
	in.ApplyTo(category)

	if err := c.categoryRepo.Create(ctx, category); err != nil {
		return nil, e.Wrap(op, err)
	}

	c.invalidateCategories(ctx)
	c.publish(ctx, domain.EventCategoryCreated, category.ID, category.Slug)
	return category, nil
}

// UpdateCategory применяет частичное изменение. Slug пересчитывается из имени.
// Замененная обложка удаляется из хранилища в фоне.
func (c *CatalogUseCase) UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*domain.Category, error) {
	const op = "CatalogUseCase.UpdateCategory"

	var prev, updated *domain.Category
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := c.categoryRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		state := form.New(form.FromCategory(current))
		if !patch.empty() {
			state.UpdateFields(patch.apply)
		}
		if !state.Dirty() {
			updated = current
			return nil
		}

		f := state.Current()
		f.Name = strings.TrimSpace(f.Name)
		if err := f.Validate(); err != nil {
			return err
		}

		next := current.Clone()
		f.ApplyTo(next)
		next.Slug = slug.Make(next.Name)
		next.UpdatedAt = c.nextUpdatedAt(current.UpdatedAt)

		if err := c.categoryRepo.Update(ctx, next); err != nil {
			return err
		}

		prev, updated = current, next
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if prev != nil {
		if prev.ThumbnailURL != "" && prev.ThumbnailURL != updated.ThumbnailURL && c.imagesInfra.Owns(prev.ThumbnailURL) {
			c.cleanupImages([]string{prev.ThumbnailURL})
		}
		c.invalidateCategories(ctx)
		c.publish(ctx, domain.EventCategoryUpdated, updated.ID, updated.Slug)
	}

	return updated, nil
}

// DeleteCategory удаляет категорию вместе с ее продуктами, затем в фоне
// удаляет обложку категории и все изображения удаленных продуктов.
func (c *CatalogUseCase) DeleteCategory(ctx context.Context, id string) error {
	const op = "CatalogUseCase.DeleteCategory"

	var (
		category *domain.Category
		products []*domain.Product
	)
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		category, err = c.categoryRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		products, err = c.productRepo.List(ctx, ProductQuery{CategoryID: id})
		if err != nil {
			return err
		}

		return c.categoryRepo.Delete(ctx, id)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	var images []string
	if category.ThumbnailURL != "" && c.imagesInfra.Owns(category.ThumbnailURL) {
		images = append(images, category.ThumbnailURL)
	}
	slugs := make([]string, 0, len(products))
	for _, p := range products {
		images = append(images, c.productImageURLs(p)...)
		slugs = append(slugs, p.Slug)
	}
	c.cleanupImages(images)

	c.invalidateCategories(ctx)
	c.invalidateProducts(ctx, slugs...)

	c.publish(ctx, domain.EventCategoryDeleted, category.ID, category.Slug)
	for _, p := range products {
		c.publish(ctx, domain.EventProductDeleted, p.ID, p.Slug)
	}

	return nil
}

func (c *CatalogUseCase) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	category, err := c.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap("CatalogUseCase.GetCategoryByID", err)
	}
	return category, nil
}

// GetCategoryBySlug возвращает первую категорию со slug в порядке отображения.
func (c *CatalogUseCase) GetCategoryBySlug(ctx context.Context, s string) (*domain.Category, error) {
	const op = "CatalogUseCase.GetCategoryBySlug"

	found, err := c.categoryRepo.FindBySlug(ctx, s)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(found) == 0 {
		return nil, e.Wrap(op, e.ErrCategoryNotFound)
	}
	if len(found) > 1 {
		c.logger.Warnf("Slug collision: %d categories share slug %q, using %s", len(found), s, found[0].ID)
	}

	return found[0], nil
}

// ListCategories возвращает категории по order_index, сначала из кэша.
func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	const op = "CatalogUseCase.ListCategories"

	gen := c.cacheGens.current(categoriesCacheKey)

	cached, err := c.cacheRepo.GetCategories(ctx)
	if err != nil {
		c.logger.Warnf("Failed to read categories from cache: %v", e.Wrap(op, err))
	}
	if cached != nil {
		return cached, nil
	}

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.cacheInBackground(op, categoriesCacheKey, gen,
		func(ctx context.Context) error { return c.cacheRepo.SetCategories(ctx, categories) },
		c.cacheRepo.DeleteCategories,
	)

	return categories, nil
}
