package domain

import "time"

// EventKind — вид изменения каталога
type EventKind string

const (
	EventCategoryCreated    EventKind = "category.created"
	EventCategoryUpdated    EventKind = "category.updated"
	EventCategoryDeleted    EventKind = "category.deleted"
	EventProductCreated     EventKind = "product.created"
	EventProductUpdated     EventKind = "product.updated"
	EventProductDeleted     EventKind = "product.deleted"
	EventProductPublished   EventKind = "product.published"
	EventProductUnpublished EventKind = "product.unpublished"
)

// CatalogEvent описывает изменение каталога, публикуемое во внешнюю шину.
type CatalogEvent struct {
	ID         string    `json:"id"`
	Kind       EventKind `json:"kind"`
	EntityID   string    `json:"entity_id"`
	Slug       string    `json:"slug,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
