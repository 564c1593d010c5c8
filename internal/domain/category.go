package domain

import "time"

// Category описывает категорию каталога
type Category struct {
	ID           string
	Name         string
	Slug         string // всегда выводится из Name
	Description  string
	Icon         Icon
	ThumbnailURL string
	OrderIndex   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewCategory(id, name, slug string, now time.Time) *Category {
	return &Category{
		ID:        id,
		Name:      name,
		Slug:      slug,
		Icon:      DefaultIcon,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *Category) Clone() *Category {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
