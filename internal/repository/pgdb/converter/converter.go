package converter

import (
	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) (*domain.Category, error)
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) (*domain.Product, error)
}

type AdminConverter interface {
	ToModel(entity *domain.Admin) *AdminModel
	ToEntity(model *AdminModel) *domain.Admin
}

type categoryConverter struct{}

func NewCategoryConverter() CategoryConverter { return categoryConverter{} }

func (categoryConverter) ToModel(c *domain.Category) *CategoryModel {
	if c == nil {
		return nil
	}
	return &CategoryModel{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		Icon:         c.Icon.String(),
		ThumbnailURL: c.ThumbnailURL,
		OrderIndex:   c.OrderIndex,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (categoryConverter) ToEntity(m *CategoryModel) (*domain.Category, error) {
	if m == nil {
		return nil, nil
	}
	icon, err := domain.ParseIcon(m.Icon)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	return &domain.Category{
		ID:           m.ID,
		Name:         m.Name,
		Slug:         m.Slug,
		Description:  m.Description,
		Icon:         icon,
		ThumbnailURL: m.ThumbnailURL,
		OrderIndex:   m.OrderIndex,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}, nil
}

type productConverter struct{}

func NewProductConverter() ProductConverter { return productConverter{} }

func (productConverter) ToModel(p *domain.Product) *ProductModel {
	if p == nil {
		return nil
	}
	flat := domain.Flatten(p.Content)
	gallery := p.GalleryImages
	if gallery == nil {
		gallery = []string{}
	}
	return &ProductModel{
		ID:                p.ID,
		CategoryID:        p.CategoryID,
		Type:              p.Type().String(),
		Title:             p.Title,
		Slug:              p.Slug,
		ThumbnailURL:      p.ThumbnailURL,
		ShortDescription:  p.ShortDescription,
		KenaliProduk:      flat.KenaliProduk,
		NamaPenerbit:      flat.NamaPenerbit,
		FiturUtama:        flat.FiturUtama,
		Manfaat:           flat.Manfaat,
		Risiko:            flat.Risiko,
		Persyaratan:       flat.Persyaratan,
		Biaya:             flat.Biaya,
		InformasiTambahan: flat.InformasiTambahan,
		FeaturedImageURL:  p.FeaturedImageURL,
		YoutubeVideoURL:   p.VideoURL,
		GalleryImages:     gallery,
		IsPublished:       p.IsPublished,
		OrderIndex:        p.OrderIndex,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (productConverter) ToEntity(m *ProductModel) (*domain.Product, error) {
	if m == nil {
		return nil, nil
	}
	t, err := domain.ParseProductType(m.Type)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	content, err := domain.BuildContent(t, domain.FlatContent{
		KenaliProduk:      m.KenaliProduk,
		NamaPenerbit:      m.NamaPenerbit,
		FiturUtama:        m.FiturUtama,
		Manfaat:           m.Manfaat,
		Risiko:            m.Risiko,
		Persyaratan:       m.Persyaratan,
		Biaya:             m.Biaya,
		InformasiTambahan: m.InformasiTambahan,
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var gallery []string
	if len(m.GalleryImages) > 0 {
		gallery = append(gallery, m.GalleryImages...)
	}

	return &domain.Product{
		ID:               m.ID,
		CategoryID:       m.CategoryID,
		Title:            m.Title,
		Slug:             m.Slug,
		ThumbnailURL:     m.ThumbnailURL,
		ShortDescription: m.ShortDescription,
		FeaturedImageURL: m.FeaturedImageURL,
		VideoURL:         m.YoutubeVideoURL,
		GalleryImages:    gallery,
		Content:          content,
		IsPublished:      m.IsPublished,
		OrderIndex:       m.OrderIndex,
		CreatedAt:        m.CreatedAt.UTC(),
		UpdatedAt:        m.UpdatedAt.UTC(),
	}, nil
}

type adminConverter struct{}

func NewAdminConverter() AdminConverter { return adminConverter{} }

func (adminConverter) ToModel(a *domain.Admin) *AdminModel {
	if a == nil {
		return nil
	}
	return &AdminModel{ID: a.ID, Email: a.Email, PasswordHash: a.PasswordHash, CreatedAt: a.CreatedAt}
}

func (adminConverter) ToEntity(m *AdminModel) *domain.Admin {
	if m == nil {
		return nil
	}
	return &domain.Admin{ID: m.ID, Email: m.Email, PasswordHash: m.PasswordHash, CreatedAt: m.CreatedAt.UTC()}
}
