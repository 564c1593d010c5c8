// Package form хранит состояние форм редактирования и валидирует их.
package form

import (
	"reflect"
	"sync"
)

// Cloner реализуется моделями формы, содержащими ссылочные поля,
// чтобы снимки состояния не разделяли память.
type Cloner[T any] interface {
	Clone() T
}

// Equaler реализуется моделями, для которых reflect.DeepEqual слишком строг
// (например, nil и пустой срез должны считаться равными).
type Equaler[T any] interface {
	Equal(other T) bool
}

// State хранит текущее значение формы, последний загруженный снимок
// и признак изменений. Безопасен для конкурентного использования.
type State[T any] struct {
	mu      sync.RWMutex
	loaded  T
	current T
	dirty   bool
}

func New[T any](initial T) *State[T] {
	return &State[T]{
		loaded:  clone(initial),
		current: clone(initial),
	}
}

// UpdateField меняет одно поле формы через переданный сеттер.
func UpdateField[T, V any](s *State[T], set func(*T, V), v V) {
	s.UpdateFields(func(t *T) { set(t, v) })
}

// UpdateFields атомарно применяет изменения к нескольким полям.
// Форма считается измененной, только если результат отличается от загруженного снимка.
func (s *State[T]) UpdateFields(apply func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apply(&s.current)
	s.dirty = !equal(s.current, s.loaded)
}

// Reset возвращает форму к последнему загруженному снимку.
func (s *State[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = clone(s.loaded)
	s.dirty = false
}

// Load заменяет снимок и текущее значение новым значением.
func (s *State[T]) Load(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = clone(v)
	s.current = clone(v)
	s.dirty = false
}

// Current возвращает копию текущего значения.
func (s *State[T]) Current() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.current)
}

func (s *State[T]) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

func clone[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

func equal[T any](a, b T) bool {
	if eq, ok := any(a).(Equaler[T]); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
