package pgdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jimlawless/whereami"
)

const productColumns = `id, category_id, type, title, slug, thumbnail_url, short_description,
	kenali_produk, nama_penerbit, fitur_utama, manfaat, risiko, persyaratan, biaya, informasi_tambahan,
	featured_image_url, youtube_video_url, gallery_images, is_published, order_index, created_at, updated_at`

const foreignKeyViolation = "23503"

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	db   tr.Querier
	conv converter.ProductConverter
}

func NewProductRepo(db tr.Querier, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		db:   db,
		conv: conv,
	}
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) error {
	m := p.conv.ToModel(product)

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`

	if _, err := tr.Executor(ctx, p.db).Exec(ctx, query,
		m.ID, m.CategoryID, m.Type, m.Title, m.Slug, m.ThumbnailURL, m.ShortDescription,
		m.KenaliProduk, m.NamaPenerbit, m.FiturUtama, m.Manfaat, m.Risiko, m.Persyaratan, m.Biaya, m.InformasiTambahan,
		m.FeaturedImageURL, m.YoutubeVideoURL, m.GalleryImages, m.IsPublished, m.OrderIndex, m.CreatedAt, m.UpdatedAt,
	); err != nil {
		return e.Wrap(whereami.WhereAmI(), categoryViolation(err))
	}

	return nil
}

func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) error {
	m := p.conv.ToModel(product)

	query := `
		UPDATE products
		SET category_id = $2, type = $3, title = $4, slug = $5, thumbnail_url = $6, short_description = $7,
			kenali_produk = $8, nama_penerbit = $9, fitur_utama = $10, manfaat = $11, risiko = $12,
			persyaratan = $13, biaya = $14, informasi_tambahan = $15,
			featured_image_url = $16, youtube_video_url = $17, gallery_images = $18,
			is_published = $19, order_index = $20, updated_at = $21
		WHERE id = $1;
	`

	tag, err := tr.Executor(ctx, p.db).Exec(ctx, query,
		m.ID, m.CategoryID, m.Type, m.Title, m.Slug, m.ThumbnailURL, m.ShortDescription,
		m.KenaliProduk, m.NamaPenerbit, m.FiturUtama, m.Manfaat, m.Risiko,
		m.Persyaratan, m.Biaya, m.InformasiTambahan,
		m.FeaturedImageURL, m.YoutubeVideoURL, m.GalleryImages,
		m.IsPublished, m.OrderIndex, m.UpdatedAt,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), categoryViolation(err))
	}
	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// categoryViolation сводит нарушение внешнего ключа category_id
// к ErrCategoryNotFound: категория удалена параллельно.
func categoryViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return e.ErrCategoryNotFound
	}
	return err
}

func (p *ProductRepo) Delete(ctx context.Context, id string) error {
	tag, err := tr.Executor(ctx, p.db).Exec(ctx, `DELETE FROM products WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`

	product, err := p.scanOne(tr.Executor(ctx, p.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return product, nil
}

func (p *ProductRepo) FindBySlug(ctx context.Context, slug string) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE slug = $1
		ORDER BY order_index, created_at, id;
	`

	return p.queryMany(ctx, query, slug)
}

// List возвращает продукты, подходящие под запрос, в порядке отображения.
func (p *ProductRepo) List(ctx context.Context, q usecase.ProductQuery) ([]*domain.Product, error) {
	where, args := buildProductWhere(q)

	query := `SELECT ` + productColumns + ` FROM products` + where + ` ORDER BY order_index, created_at, id`
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	return p.queryMany(ctx, query, args...)
}

func (p *ProductRepo) Count(ctx context.Context, q usecase.ProductQuery) (int, error) {
	where, args := buildProductWhere(q)

	var n int
	if err := tr.Executor(ctx, p.db).QueryRow(ctx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&n); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}
	return n, nil
}

func (p *ProductRepo) RecentlyUpdated(ctx context.Context, limit int) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY updated_at DESC, id
		LIMIT $1;
	`

	return p.queryMany(ctx, query, limit)
}

// buildProductWhere собирает условие WHERE по непустым полям запроса.
func buildProductWhere(q usecase.ProductQuery) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.CategoryID != "" {
		conds = append(conds, "category_id = "+arg(q.CategoryID))
	}
	if q.Type != "" {
		conds = append(conds, "type = "+arg(q.Type.String()))
	}
	if q.PublishedOnly {
		conds = append(conds, "is_published = TRUE")
	}
	if q.ExcludeID != "" {
		conds = append(conds, "id <> "+arg(q.ExcludeID))
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		ph := arg("%" + escapeLike(s) + "%")
		conds = append(conds, fmt.Sprintf(`(title ILIKE %[1]s ESCAPE '\' OR short_description ILIKE %[1]s ESCAPE '\')`, ph))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует спецсимволы шаблона LIKE, чтобы поиск шел по подстроке.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (p *ProductRepo) queryMany(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := tr.Executor(ctx, p.db).Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := p.scanOne(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, product)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (p *ProductRepo) scanOne(row pgx.Row) (*domain.Product, error) {
	var m converter.ProductModel
	if err := row.Scan(
		&m.ID, &m.CategoryID, &m.Type, &m.Title, &m.Slug, &m.ThumbnailURL, &m.ShortDescription,
		&m.KenaliProduk, &m.NamaPenerbit, &m.FiturUtama, &m.Manfaat, &m.Risiko, &m.Persyaratan, &m.Biaya, &m.InformasiTambahan,
		&m.FeaturedImageURL, &m.YoutubeVideoURL, &m.GalleryImages, &m.IsPublished, &m.OrderIndex, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return p.conv.ToEntity(&m)
}
