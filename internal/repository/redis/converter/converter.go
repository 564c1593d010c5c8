package converter

import (
	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

type CatalogConverter interface {
	ToCategoryModel(c *domain.Category) CategoryRedisModel
	ToCategory(m CategoryRedisModel) (*domain.Category, error)
	ToArrCategoryModel(cs []*domain.Category) []CategoryRedisModel
	ToArrCategory(ms []CategoryRedisModel) ([]*domain.Category, error)
	ToProductModel(p *domain.Product) ProductRedisModel
	ToProduct(m ProductRedisModel) (*domain.Product, error)
}

type catalogConverter struct{}

func NewCatalogConverter() CatalogConverter { return catalogConverter{} }

func (catalogConverter) ToCategoryModel(c *domain.Category) CategoryRedisModel {
	return CategoryRedisModel{
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

func (catalogConverter) ToCategory(m CategoryRedisModel) (*domain.Category, error) {
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
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

func (c catalogConverter) ToArrCategoryModel(cs []*domain.Category) []CategoryRedisModel {
	out := make([]CategoryRedisModel, 0, len(cs))
	for _, category := range cs {
		out = append(out, c.ToCategoryModel(category))
	}
	return out
}

func (c catalogConverter) ToArrCategory(ms []CategoryRedisModel) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(ms))
	for _, m := range ms {
		category, err := c.ToCategory(m)
		if err != nil {
			return nil, err
		}
		out = append(out, category)
	}
	return out, nil
}

func (catalogConverter) ToProductModel(p *domain.Product) ProductRedisModel {
	flat := domain.Flatten(p.Content)
	return ProductRedisModel{
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
		GalleryImages:     p.GalleryImages,
		IsPublished:       p.IsPublished,
		OrderIndex:        p.OrderIndex,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (catalogConverter) ToProduct(m ProductRedisModel) (*domain.Product, error) {
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
	return &domain.Product{
		ID:               m.ID,
		CategoryID:       m.CategoryID,
		Title:            m.Title,
		Slug:             m.Slug,
		ThumbnailURL:     m.ThumbnailURL,
		ShortDescription: m.ShortDescription,
		FeaturedImageURL: m.FeaturedImageURL,
		VideoURL:         m.YoutubeVideoURL,
		GalleryImages:    m.GalleryImages,
		Content:          content,
		IsPublished:      m.IsPublished,
		OrderIndex:       m.OrderIndex,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}, nil
}
