// Package listing реализует фильтрацию и постраничный вывод списков продуктов.
package listing

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
)

const (
	// CategoryAll отключает фильтр по категории.
	CategoryAll = "all"
	// DefaultPageSize — размер страницы списка в админке.
	DefaultPageSize = 10
	maxPageSize     = 100
)

// Status — фильтр по статусу публикации
type Status string

const (
	StatusAll       Status = "all"
	StatusPublished Status = "published"
	StatusDraft     Status = "draft"
)

// ParseStatus разбирает статус, неизвестные значения трактуются как StatusAll.
func ParseStatus(s string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPublished:
		return StatusPublished
	case StatusDraft:
		return StatusDraft
	default:
		return StatusAll
	}
}

// Filter объединяет текстовый, категорийный и статусный фильтры по И.
type Filter struct {
	Query      string
	CategoryID string
	Status     Status
}

// Match сообщает, проходит ли продукт все три фильтра.
func (f Filter) Match(p *domain.Product) bool {
	if q := strings.TrimSpace(f.Query); q != "" {
		q = strings.ToLower(q)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.ShortDescription), q) {
			return false
		}
	}

	if f.CategoryID != "" && f.CategoryID != CategoryAll && p.CategoryID != f.CategoryID {
		return false
	}

	switch f.Status {
	case StatusPublished:
		return p.IsPublished
	case StatusDraft:
		return !p.IsPublished
	}

	return true
}

// Apply возвращает продукты, прошедшие фильтр, сохраняя исходный порядок.
func Apply(products []*domain.Product, f Filter) []*domain.Product {
	out := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Page — одна страница списка с метаданными.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Page       int  `json:"page"`
	Size       int  `json:"size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Paginate нарезает список на страницы. Номер страницы ограничивается
// диапазоном [1, TotalPages], для пустого списка TotalPages равен нулю.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}

	total := len(items)
	totalPages := int(math.Ceil(float64(total) / float64(size)))
	page = clampPage(page, totalPages)

	start := (page - 1) * size
	end := min(start+size, total)
	if start > total {
		start = total
	}

	pageItems := items[start:end:end]
	if pageItems == nil {
		pageItems = []T{}
	}

	return Page[T]{
		Items:      pageItems,
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

func clampPage(page, totalPages int) int {
	if totalPages == 0 || page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// State хранит состояние списка продуктов в админке.
// Любое изменение фильтра возвращает на первую страницу.
type State struct {
	filter Filter
	page   int
	size   int
}

func NewState(size int) *State {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &State{
		filter: Filter{CategoryID: CategoryAll, Status: StatusAll},
		page:   1,
		size:   size,
	}
}

// ParseState восстанавливает состояние из query-параметров: q, category, status, page, size.
func ParseState(q url.Values) *State {
	size := DefaultPageSize
	if v, err := strconv.Atoi(strings.TrimSpace(q.Get("size"))); err == nil && v > 0 {
		size = min(v, maxPageSize)
	}

	s := NewState(size)
	s.SetQuery(q.Get("q"))
	if c := strings.TrimSpace(q.Get("category")); c != "" {
		s.SetCategory(c)
	}
	s.SetStatus(ParseStatus(q.Get("status")))

	if v, err := strconv.Atoi(strings.TrimSpace(q.Get("page"))); err == nil {
		s.page = max(v, 1)
	}
	return s
}

func (s *State) Filter() Filter { return s.filter }
func (s *State) Page() int      { return s.page }
func (s *State) Size() int      { return s.size }

func (s *State) SetQuery(q string) {
	s.filter.Query = q
	s.page = 1
}

func (s *State) SetCategory(id string) {
	s.filter.CategoryID = id
	s.page = 1
}

func (s *State) SetStatus(st Status) {
	s.filter.Status = st
	s.page = 1
}

// SetPage задает номер страницы. Окончательное ограничение диапазоном
// выполняется в Result, когда известно число страниц.
func (s *State) SetPage(page int) {
	s.page = max(page, 1)
}

// Result применяет фильтр и возвращает текущую страницу.
func (s *State) Result(products []*domain.Product) Page[*domain.Product] {
	res := Paginate(Apply(products, s.filter), s.page, s.size)
	s.page = res.Page
	return res
}
