// Package jitter рассчитывает задержки повторов со случайной добавкой,
// чтобы параллельные повторы не совпадали по времени.
package jitter

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// DefaultFactor — доля случайной добавки к задержке (50%)
const DefaultFactor = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Duration возвращает d со случайной добавкой в диапазоне [d, d*(1+factor)].
func Duration(d time.Duration, factor float64) time.Duration {
	randMutex.Lock()
	extra := globalRand.Float64() * factor * float64(d)
	randMutex.Unlock()
	return d + time.Duration(extra)
}

// Backoff — экспоненциальная задержка повторов. Нулевой Max не ограничивает рост.
type Backoff struct {
	Base   time.Duration
	Max    time.Duration
	Factor float64
}

// Delay возвращает задержку перед повтором с номером attempt (с нуля):
// Base*2^attempt, не больше Max, плюс случайная добавка.
func (b Backoff) Delay(attempt int) time.Duration {
	d := b.Base
	for i := 0; i < attempt; i++ {
		d *= 2
		if b.Max > 0 && d >= b.Max {
			d = b.Max
			break
		}
	}
	return Duration(d, b.Factor)
}

// Wait ждет задержку попытки attempt или отмену контекста.
func (b Backoff) Wait(ctx context.Context, attempt int) error {
	t := time.NewTimer(b.Delay(attempt))
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
