package usecase

import "sync"

const categoriesCacheKey = "categories"

func productCacheKey(slug string) string {
	return "product:" + slug
}

// cacheGenerations считает инвалидации по ключам кэша. Фоновая запись,
// прочитавшая данные до инвалидации, по номеру поколения узнает, что устарела.
type cacheGenerations struct {
	mu   sync.Mutex
	gens map[string]uint64
}

func newCacheGenerations() *cacheGenerations {
	return &cacheGenerations{gens: make(map[string]uint64)}
}

func (g *cacheGenerations) current(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gens[key]
}

func (g *cacheGenerations) bump(keys ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, k := range keys {
		g.gens[k]++
	}
}
