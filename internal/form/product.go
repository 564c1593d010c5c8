package form

import (
	"reflect"
	"slices"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
)

// ProductForm — плоская модель формы продукта. Порядок полей с тегами
// validate задает порядок проверки правил.
type ProductForm struct {
	CategoryID       string             `json:"categoryId" validate:"required"`
	Title            string             `json:"title" validate:"notblank"`
	ThumbnailURL     string             `json:"thumbnailUrl" validate:"required"`
	KenaliProduk     string             `json:"kenaliProduk" validate:"richtext"`
	ShortDescription string             `json:"shortDescription" validate:"max=200"`
	Type             domain.ProductType `json:"type" validate:"oneof=produk layanan"`
	OrderIndex       int                `json:"orderIndex" validate:"gte=0"`

	NamaPenerbit      string   `json:"namaPenerbit"`
	FiturUtama        string   `json:"fiturUtama"`
	Manfaat           string   `json:"manfaat"`
	Risiko            string   `json:"risiko"`
	Persyaratan       string   `json:"persyaratan"`
	Biaya             string   `json:"biaya"`
	InformasiTambahan string   `json:"informasiTambahan"`
	FeaturedImageURL  string   `json:"featuredImageUrl"`
	YoutubeVideoURL   string   `json:"youtubeVideoUrl"`
	GalleryImages     []string `json:"galleryImages"`
	IsPublished       bool     `json:"isPublished"`
}

var productMessages = map[string]string{
	"CategoryID":       "Kategori wajib dipilih",
	"Title":            "Judul produk wajib diisi",
	"ThumbnailURL":     "Thumbnail wajib diupload",
	"KenaliProduk":     "Kenali Produk wajib diisi",
	"ShortDescription": "Deskripsi singkat maksimal 200 karakter",
	"Type":             "Tipe produk tidak valid",
	"OrderIndex":       "Urutan tidak boleh negatif",
}

// NewProductForm возвращает пустую форму нового продукта.
func NewProductForm() ProductForm {
	return ProductForm{
		Type:         domain.ProductTypeGoods,
		NamaPenerbit: domain.DefaultIssuerName,
	}
}

// Validate проверяет правила по порядку и сообщает только о первом нарушении.
func (f ProductForm) Validate() error {
	return check(f, productMessages)
}

func (f ProductForm) Clone() ProductForm {
	if f.GalleryImages != nil {
		f.GalleryImages = append([]string(nil), f.GalleryImages...)
	}
	return f
}

// Equal сравнивает формы; nil и пустая галерея равны.
func (f ProductForm) Equal(other ProductForm) bool {
	if !slices.Equal(f.GalleryImages, other.GalleryImages) {
		return false
	}
	f.GalleryImages, other.GalleryImages = nil, nil
	return reflect.DeepEqual(f, other)
}

// FromProduct заполняет форму значениями продукта.
func FromProduct(p *domain.Product) ProductForm {
	flat := domain.Flatten(p.Content)
	return ProductForm{
		CategoryID:        p.CategoryID,
		Title:             p.Title,
		ThumbnailURL:      p.ThumbnailURL,
		KenaliProduk:      flat.KenaliProduk,
		ShortDescription:  p.ShortDescription,
		Type:              p.Type(),
		OrderIndex:        p.OrderIndex,
		NamaPenerbit:      flat.NamaPenerbit,
		FiturUtama:        flat.FiturUtama,
		Manfaat:           flat.Manfaat,
		Risiko:            flat.Risiko,
		Persyaratan:       flat.Persyaratan,
		Biaya:             flat.Biaya,
		InformasiTambahan: flat.InformasiTambahan,
		FeaturedImageURL:  p.FeaturedImageURL,
		YoutubeVideoURL:   p.VideoURL,
		GalleryImages:     append([]string(nil), p.GalleryImages...),
		IsPublished:       p.IsPublished,
	}
}

// ApplyTo переносит значения формы в продукт. Поля, которые тип продукта
// не использует, отбрасываются вариантом контента.
func (f ProductForm) ApplyTo(p *domain.Product) error {
	content, err := domain.BuildContent(f.Type, domain.FlatContent{
		KenaliProduk:      f.KenaliProduk,
		NamaPenerbit:      f.NamaPenerbit,
		FiturUtama:        f.FiturUtama,
		Manfaat:           f.Manfaat,
		Risiko:            f.Risiko,
		Persyaratan:       f.Persyaratan,
		Biaya:             f.Biaya,
		InformasiTambahan: f.InformasiTambahan,
	})
	if err != nil {
		return e.Wrap("ProductForm.ApplyTo", err)
	}

	p.CategoryID = f.CategoryID
	p.Title = f.Title
	p.ThumbnailURL = f.ThumbnailURL
	p.ShortDescription = f.ShortDescription
	p.FeaturedImageURL = f.FeaturedImageURL
	p.VideoURL = f.YoutubeVideoURL
	p.GalleryImages = append([]string(nil), f.GalleryImages...)
	p.IsPublished = f.IsPublished
	p.OrderIndex = f.OrderIndex
	p.Content = content
	return nil
}
