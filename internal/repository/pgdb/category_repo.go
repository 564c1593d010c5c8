package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

const categoryColumns = `id, name, slug, description, icon, thumbnail_url, order_index, created_at, updated_at`

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	db   tr.Querier
	conv converter.CategoryConverter
}

func NewCategoryRepo(db tr.Querier, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{db: db, conv: conv}
}

func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	m := c.conv.ToModel(category)

	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	if _, err := tr.Executor(ctx, c.db).Exec(ctx, query,
		m.ID, m.Name, m.Slug, m.Description, m.Icon, m.ThumbnailURL, m.OrderIndex, m.CreatedAt, m.UpdatedAt,
	); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CategoryRepo) Update(ctx context.Context, category *domain.Category) error {
	m := c.conv.ToModel(category)

	query := `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, icon = $5,
			thumbnail_url = $6, order_index = $7, updated_at = $8
		WHERE id = $1;
	`

	tag, err := tr.Executor(ctx, c.db).Exec(ctx, query,
		m.ID, m.Name, m.Slug, m.Description, m.Icon, m.ThumbnailURL, m.OrderIndex, m.UpdatedAt,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
	}

	return nil
}

// Delete удаляет категорию. Продукты категории удаляются каскадно внешним ключом.
func (c *CategoryRepo) Delete(ctx context.Context, id string) error {
	tag, err := tr.Executor(ctx, c.db).Exec(ctx, `DELETE FROM categories WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
	}

	return nil
}

func (c *CategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1;`

	category, err := c.scanOne(tr.Executor(ctx, c.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return category, nil
}

func (c *CategoryRepo) FindBySlug(ctx context.Context, slug string) ([]*domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE slug = $1
		ORDER BY order_index, created_at, id;
	`

	return c.queryMany(ctx, query, slug)
}

func (c *CategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		ORDER BY order_index, created_at, id;
	`

	return c.queryMany(ctx, query)
}

func (c *CategoryRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := tr.Executor(ctx, c.db).QueryRow(ctx, `SELECT COUNT(*) FROM categories;`).Scan(&n); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}
	return n, nil
}

func (c *CategoryRepo) queryMany(ctx context.Context, query string, args ...any) ([]*domain.Category, error) {
	rows, err := tr.Executor(ctx, c.db).Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]*domain.Category, 0)
	for rows.Next() {
		category, err := c.scanOne(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, category)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (c *CategoryRepo) scanOne(row pgx.Row) (*domain.Category, error) {
	var m converter.CategoryModel
	if err := row.Scan(
		&m.ID, &m.Name, &m.Slug, &m.Description, &m.Icon, &m.ThumbnailURL, &m.OrderIndex, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return c.conv.ToEntity(&m)
}
