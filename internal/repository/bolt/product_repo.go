package bolt

import (
	"context"
	"sort"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/listing"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий продуктов поверх снимка bbolt.
type ProductRepo struct {
	store *Store
}

func NewProductRepo(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

func (p *ProductRepo) Create(_ context.Context, product *domain.Product) error {
	return p.store.update(func(snap *snapshot) error {
		snap.Products = append(snap.Products, toProductRecord(product))
		return nil
	})
}

func (p *ProductRepo) Update(_ context.Context, product *domain.Product) error {
	return p.store.update(func(snap *snapshot) error {
		for i := range snap.Products {
			if snap.Products[i].ID == product.ID {
				snap.Products[i] = toProductRecord(product)
				return nil
			}
		}
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	})
}

func (p *ProductRepo) Delete(_ context.Context, id string) error {
	return p.store.update(func(snap *snapshot) error {
		for i := range snap.Products {
			if snap.Products[i].ID == id {
				snap.Products = append(snap.Products[:i], snap.Products[i+1:]...)
				return nil
			}
		}
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	})
}

func (p *ProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	var (
		rec   productRecord
		found bool
	)
	p.store.view(func(snap *snapshot) {
		for _, r := range snap.Products {
			if r.ID == id {
				rec, found = r, true
				return
			}
		}
	})
	if !found {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}
	return rec.toDomain()
}

func (p *ProductRepo) FindBySlug(_ context.Context, slug string) ([]*domain.Product, error) {
	products, err := p.all()
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Product, 0, 1)
	for _, product := range products {
		if product.Slug == slug {
			out = append(out, product)
		}
	}
	return out, nil
}

// List применяет запрос к снимку. Текстовый поиск совпадает с фильтром админки.
func (p *ProductRepo) List(_ context.Context, q usecase.ProductQuery) ([]*domain.Product, error) {
	products, err := p.all()
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Product, 0, len(products))
	for _, product := range products {
		if !matches(product, q) {
			continue
		}
		out = append(out, product)
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

func (p *ProductRepo) Count(ctx context.Context, q usecase.ProductQuery) (int, error) {
	q.Limit = 0
	products, err := p.List(ctx, q)
	if err != nil {
		return 0, err
	}
	return len(products), nil
}

func (p *ProductRepo) RecentlyUpdated(_ context.Context, limit int) ([]*domain.Product, error) {
	products, err := p.all()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
		return a.ID < b.ID
	})

	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}

func matches(p *domain.Product, q usecase.ProductQuery) bool {
	if q.Type != "" && p.Type() != q.Type {
		return false
	}
	if q.PublishedOnly && !p.IsPublished {
		return false
	}
	if q.ExcludeID != "" && p.ID == q.ExcludeID {
		return false
	}
	return listing.Filter{Query: q.Search, CategoryID: q.CategoryID}.Match(p)
}

// all возвращает все продукты в порядке order_index, created_at, id.
func (p *ProductRepo) all() ([]*domain.Product, error) {
	var recs []productRecord
	p.store.view(func(snap *snapshot) {
		recs = make([]productRecord, len(snap.Products))
		copy(recs, snap.Products)
	})

	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.OrderIndex != b.OrderIndex {
			return a.OrderIndex < b.OrderIndex
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	out := make([]*domain.Product, 0, len(recs))
	for _, r := range recs {
		product, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, product)
	}
	return out, nil
}
