package bolt

import (
	"context"
	"sort"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх снимка bbolt.
type CategoryRepo struct {
	store *Store
}

func NewCategoryRepo(store *Store) *CategoryRepo {
	return &CategoryRepo{store: store}
}

func (c *CategoryRepo) Create(_ context.Context, category *domain.Category) error {
	return c.store.update(func(snap *snapshot) error {
		snap.Categories = append(snap.Categories, toCategoryRecord(category))
		return nil
	})
}

func (c *CategoryRepo) Update(_ context.Context, category *domain.Category) error {
	return c.store.update(func(snap *snapshot) error {
		for i := range snap.Categories {
			if snap.Categories[i].ID == category.ID {
				snap.Categories[i] = toCategoryRecord(category)
				return nil
			}
		}
		return e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
	})
}

// Delete удаляет категорию и все продукты, ссылающиеся на нее.
func (c *CategoryRepo) Delete(_ context.Context, id string) error {
	return c.store.update(func(snap *snapshot) error {
		idx := -1
		for i := range snap.Categories {
			if snap.Categories[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}
		snap.Categories = append(snap.Categories[:idx], snap.Categories[idx+1:]...)

		kept := snap.Products[:0]
		for _, p := range snap.Products {
			if p.CategoryID != id {
				kept = append(kept, p)
			}
		}
		snap.Products = kept
		return nil
	})
}

func (c *CategoryRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	var (
		rec   categoryRecord
		found bool
	)
	c.store.view(func(snap *snapshot) {
		for _, r := range snap.Categories {
			if r.ID == id {
				rec, found = r, true
				return
			}
		}
	})
	if !found {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
	}
	return rec.toDomain()
}

func (c *CategoryRepo) FindBySlug(_ context.Context, slug string) ([]*domain.Category, error) {
	return c.collect(func(r categoryRecord) bool { return r.Slug == slug })
}

func (c *CategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	return c.collect(func(categoryRecord) bool { return true })
}

func (c *CategoryRepo) Count(_ context.Context) (int, error) {
	var n int
	c.store.view(func(snap *snapshot) { n = len(snap.Categories) })
	return n, nil
}

// collect возвращает подходящие категории в порядке order_index, created_at, id.
func (c *CategoryRepo) collect(match func(categoryRecord) bool) ([]*domain.Category, error) {
	var recs []categoryRecord
	c.store.view(func(snap *snapshot) {
		for _, r := range snap.Categories {
			if match(r) {
				recs = append(recs, r)
			}
		}
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

	out := make([]*domain.Category, 0, len(recs))
	for _, r := range recs {
		category, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, category)
	}
	return out, nil
}
