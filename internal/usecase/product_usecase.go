package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/form"
	"github.com/DRSN-tech/catalog-backend/internal/listing"
	"github.com/DRSN-tech/catalog-backend/internal/richtext"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/slug"
)

// AddProduct создает продукт после проверки формы и существования категории.
func (c *CatalogUseCase) AddProduct(ctx context.Context, in form.ProductForm) (*domain.Product, error) {
	const op = "CatalogUseCase.AddProduct"

	in.Title = strings.TrimSpace(in.Title)
	if err := in.Validate(); err != nil {
		return nil, e.Wrap(op, err)
	}

	now := c.timestamp()
	product := &domain.Product{
		ID:        slug.NewID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := in.ApplyTo(product); err != nil {
		return nil, e.Wrap(op, err)
	}
	product.Slug = slug.Make(product.Title)

	// Проверка категории и вставка в одной транзакции, иначе категория
	// может быть удалена между ними.
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		if err := c.ensureCategory(ctx, in.CategoryID); err != nil {
			return err
		}
		return missingCategory(c.productRepo.Create(ctx, product))
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.invalidateProducts(ctx, product.Slug)
	c.publish(ctx, domain.EventProductCreated, product.ID, product.Slug)
	return product, nil
}

// UpdateProduct применяет частичное изменение через состояние формы.
// Если ни одно поле не затронуто, возвращает текущий продукт без записи.
// После успешной записи в фоне удаляются изображения, на которые продукт
// больше не ссылается.
func (c *CatalogUseCase) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error) {
	const op = "CatalogUseCase.UpdateProduct"

	var prev, updated *domain.Product
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := c.productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		state := form.New(form.FromProduct(current))
		if !patch.empty() {
			state.UpdateFields(patch.apply)
		}
		if !state.Dirty() {
			updated = current
			return nil
		}

		f := state.Current()
		f.Title = strings.TrimSpace(f.Title)
		if err := f.Validate(); err != nil {
			return err
		}
		if f.CategoryID != current.CategoryID {
			if err := c.ensureCategory(ctx, f.CategoryID); err != nil {
				return err
			}
		}

		next := current.Clone()
		if err := f.ApplyTo(next); err != nil {
			return err
		}
		next.Slug = slug.Make(next.Title)
		next.UpdatedAt = c.nextUpdatedAt(current.UpdatedAt)

		if err := c.productRepo.Update(ctx, next); err != nil {
			return missingCategory(err)
		}

		prev, updated = current, next
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if prev != nil {
		c.cleanupImages(c.supersededImages(prev, updated))
		c.invalidateProducts(ctx, prev.Slug, updated.Slug)
		c.publish(ctx, domain.EventProductUpdated, updated.ID, updated.Slug)
	}

	return updated, nil
}

// DeleteProduct удаляет продукт, затем в фоне удаляет все изображения,
// на которые он ссылался. Ошибки удаления изображений не возвращаются.
func (c *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	const op = "CatalogUseCase.DeleteProduct"

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := c.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	c.cleanupImages(c.productImageURLs(product))
	c.invalidateProducts(ctx, product.Slug)
	c.publish(ctx, domain.EventProductDeleted, product.ID, product.Slug)
	return nil
}

// TogglePublish инвертирует флаг публикации и обновляет updated_at.
func (c *CatalogUseCase) TogglePublish(ctx context.Context, id string) (*domain.Product, error) {
	const op = "CatalogUseCase.TogglePublish"

	var updated *domain.Product
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := c.productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		next := current.Clone()
		next.IsPublished = !current.IsPublished
		next.UpdatedAt = c.nextUpdatedAt(current.UpdatedAt)

		if err := c.productRepo.Update(ctx, next); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	kind := domain.EventProductUnpublished
	if updated.IsPublished {
		kind = domain.EventProductPublished
	}
	c.invalidateProducts(ctx, updated.Slug)
	c.publish(ctx, kind, updated.ID, updated.Slug)
	return updated, nil
}

// InsertContentImages загружает изображения с подписями и вставляет их
// в rich-text поле продукта одной операцией. При ошибке загрузки поле не меняется.
func (c *CatalogUseCase) InsertContentImages(ctx context.Context, req InsertImagesReq) (*domain.Product, error) {
	const op = "CatalogUseCase.InsertContentImages"

	product, err := c.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, ok := product.Content.Field(req.Field); !ok {
		return nil, e.Wrap(op, e.ErrInvalidContentKey)
	}

	staging := richtext.NewStaging()
	staged := 0
	for _, img := range req.Images {
		added, err := staging.Stage(img.File)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		if added == 0 {
			c.logger.Warnf("%s: skipping non-image file %s (%s)", op, img.File.Name, img.File.ContentType)
			continue
		}
		if err := staging.SetCaption(staged, img.Caption); err != nil {
			return nil, e.Wrap(op, err)
		}
		staged++
	}
	if staged == 0 {
		return nil, e.Wrap(op, e.ErrNoImages)
	}

	nodes, err := staging.Upload(ctx, c.imagesInfra)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	inserted := richtext.NodeImageSources(nodes...)

	var updated *domain.Product
	err = c.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := c.productRepo.GetByID(ctx, req.ProductID)
		if err != nil {
			return err
		}

		// Поле перечитывается внутри транзакции: правки, сделанные
		// во время загрузки, не должны теряться.
		html, ok := current.Content.Field(req.Field)
		if !ok {
			return e.ErrInvalidContentKey
		}
		doc, err := richtext.Parse(html)
		if err != nil {
			return err
		}
		doc.Insert(req.Position, nodes...)

		content, err := current.Content.WithField(req.Field, doc.HTML())
		if err != nil {
			return err
		}

		next := current.Clone()
		next.Content = content
		next.UpdatedAt = c.nextUpdatedAt(current.UpdatedAt)
		if err := c.productRepo.Update(ctx, next); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		c.cleanupImages(inserted)
		return nil, e.Wrap(op, err)
	}

	c.invalidateProducts(ctx, updated.Slug)
	c.publish(ctx, domain.EventProductUpdated, updated.ID, updated.Slug)
	return updated, nil
}

func (c *CatalogUseCase) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap("CatalogUseCase.GetProductByID", err)
	}
	return product, nil
}

// GetProductBySlug возвращает первый продукт со slug в порядке отображения,
// сначала ищет в кэше.
func (c *CatalogUseCase) GetProductBySlug(ctx context.Context, s string) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProductBySlug"

	key := productCacheKey(s)
	gen := c.cacheGens.current(key)

	cached, err := c.cacheRepo.GetProduct(ctx, s)
	if err != nil {
		c.logger.Warnf("Failed to read product from cache: %v", e.Wrap(op, err))
	}
	if cached != nil {
		return cached, nil
	}

	found, err := c.productRepo.FindBySlug(ctx, s)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(found) == 0 {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}
	if len(found) > 1 {
		c.logger.Warnf("Slug collision: %d products share slug %q, using %s", len(found), s, found[0].ID)
	}

	product := found[0]
	c.cacheInBackground(op, key, gen,
		func(ctx context.Context) error { return c.cacheRepo.SetProduct(ctx, product) },
		func(ctx context.Context) error { return c.cacheRepo.DeleteProducts(ctx, s) },
	)

	return product, nil
}

// GetPublishedProduct возвращает продукт для публичной страницы.
// Черновики не видны и дают ErrProductNotFound.
func (c *CatalogUseCase) GetPublishedProduct(ctx context.Context, s string) (*domain.Product, error) {
	product, err := c.GetProductBySlug(ctx, s)
	if err != nil {
		return nil, err
	}
	if !product.IsPublished {
		return nil, e.Wrap("CatalogUseCase.GetPublishedProduct", e.ErrProductNotFound)
	}
	return product, nil
}

func (c *CatalogUseCase) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return c.listProducts(ctx, "CatalogUseCase.ListProducts", ProductQuery{})
}

// AdminProducts возвращает страницу списка продуктов админки с учетом фильтров.
func (c *CatalogUseCase) AdminProducts(ctx context.Context, state *listing.State) (listing.Page[*domain.Product], error) {
	products, err := c.listProducts(ctx, "CatalogUseCase.AdminProducts", ProductQuery{})
	if err != nil {
		return listing.Page[*domain.Product]{}, err
	}
	return state.Result(products), nil
}

// ProductsByCategory возвращает опубликованные продукты категории.
func (c *CatalogUseCase) ProductsByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error) {
	return c.listProducts(ctx, "CatalogUseCase.ProductsByCategory", ProductQuery{CategoryID: categoryID, PublishedOnly: true})
}

// ProductsByType возвращает опубликованные продукты указанного типа.
func (c *CatalogUseCase) ProductsByType(ctx context.Context, t domain.ProductType) ([]*domain.Product, error) {
	if _, err := domain.ParseProductType(string(t)); err != nil {
		return nil, e.Wrap("CatalogUseCase.ProductsByType", err)
	}
	return c.listProducts(ctx, "CatalogUseCase.ProductsByType", ProductQuery{Type: t, PublishedOnly: true})
}

// SearchProducts ищет подстроку в названии и кратком описании опубликованных
// продуктов без учета регистра. categoryID "all" или пустой не ограничивает категорию.
func (c *CatalogUseCase) SearchProducts(ctx context.Context, query, categoryID string) ([]*domain.Product, error) {
	if categoryID == listing.CategoryAll {
		categoryID = ""
	}
	return c.listProducts(ctx, "CatalogUseCase.SearchProducts", ProductQuery{
		Search:        strings.TrimSpace(query),
		CategoryID:    categoryID,
		PublishedOnly: true,
	})
}

// PublishedCount возвращает число опубликованных продуктов категории.
func (c *CatalogUseCase) PublishedCount(ctx context.Context, categoryID string) (int, error) {
	n, err := c.productRepo.Count(ctx, ProductQuery{CategoryID: categoryID, PublishedOnly: true})
	if err != nil {
		return 0, e.Wrap("CatalogUseCase.PublishedCount", err)
	}
	return n, nil
}

// RelatedProducts возвращает до четырех опубликованных продуктов того же типа.
func (c *CatalogUseCase) RelatedProducts(ctx context.Context, product *domain.Product) ([]*domain.Product, error) {
	return c.listProducts(ctx, "CatalogUseCase.RelatedProducts", ProductQuery{
		Type:          product.Type(),
		PublishedOnly: true,
		ExcludeID:     product.ID,
		Limit:         relatedProductsLimit,
	})
}

// Dashboard собирает счетчики каталога и последние измененные продукты.
func (c *CatalogUseCase) Dashboard(ctx context.Context) (*DashboardStats, error) {
	const op = "CatalogUseCase.Dashboard"

	categories, err := c.categoryRepo.Count(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	total, err := c.productRepo.Count(ctx, ProductQuery{})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	published, err := c.productRepo.Count(ctx, ProductQuery{PublishedOnly: true})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	recent, err := c.productRepo.RecentlyUpdated(ctx, recentProductsLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &DashboardStats{
		TotalCategories: categories,
		TotalProducts:   total,
		Published:       published,
		Drafts:          total - published,
		Recent:          recent,
	}, nil
}

func (c *CatalogUseCase) listProducts(ctx context.Context, op string, q ProductQuery) ([]*domain.Product, error) {
	products, err := c.productRepo.List(ctx, q)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return products, nil
}

// ensureCategory проверяет, что категория продукта существует.
func (c *CatalogUseCase) ensureCategory(ctx context.Context, id string) error {
	_, err := c.categoryRepo.GetByID(ctx, id)
	return missingCategory(err)
}

// missingCategory превращает отсутствие категории в ошибку валидации формы.
func missingCategory(err error) error {
	if errors.Is(err, e.ErrCategoryNotFound) {
		return &form.ValidationError{Field: "CategoryID", Message: "Kategori tidak ditemukan"}
	}
	return err
}
