package form

import "github.com/DRSN-tech/catalog-backend/internal/domain"

// CategoryForm — модель формы категории
type CategoryForm struct {
	Name         string      `json:"name" validate:"notblank"`
	ThumbnailURL string      `json:"thumbnailUrl" validate:"required"`
	Icon         domain.Icon `json:"icon" validate:"icon"`
	OrderIndex   int         `json:"orderIndex" validate:"gte=0"`
	Description  string      `json:"description"`
}

var categoryMessages = map[string]string{
	"Name":         "Nama kategori wajib diisi",
	"ThumbnailURL": "Thumbnail wajib diupload",
	"Icon":         "Ikon tidak valid",
	"OrderIndex":   "Urutan tidak boleh negatif",
}

func NewCategoryForm() CategoryForm {
	return CategoryForm{Icon: domain.DefaultIcon}
}

func (f CategoryForm) Validate() error {
	return check(f, categoryMessages)
}

func FromCategory(c *domain.Category) CategoryForm {
	return CategoryForm{
		Name:         c.Name,
		ThumbnailURL: c.ThumbnailURL,
		Icon:         c.Icon,
		OrderIndex:   c.OrderIndex,
		Description:  c.Description,
	}
}

// ApplyTo переносит значения формы в категорию. Slug пересчитывает вызывающий.
func (f CategoryForm) ApplyTo(c *domain.Category) {
	c.Name = f.Name
	c.ThumbnailURL = f.ThumbnailURL
	c.Icon = f.Icon
	c.OrderIndex = f.OrderIndex
	c.Description = f.Description
}
