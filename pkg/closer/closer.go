// Package closer закрывает ресурсы приложения в порядке, обратном регистрации.
package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

const defaultForcedTimeout = 2 * time.Second

// Func — функция закрытия ресурса.
type Func func(ctx context.Context) error

type resource struct {
	name  string
	close Func
}

// Closer потокобезопасно хранит функции закрытия и выполняет их один раз.
type Closer struct {
	mu            sync.Mutex
	resources     []resource
	once          sync.Once
	err           error
	forcedTimeout time.Duration
	logger        logger.Logger
}

// New создает Closer. forcedTimeout отводится на принудительное закрытие
// оставшихся ресурсов, если контекст Close истек.
func New(logger logger.Logger, forcedTimeout time.Duration) *Closer {
	if forcedTimeout <= 0 {
		forcedTimeout = defaultForcedTimeout
	}
	return &Closer{forcedTimeout: forcedTimeout, logger: logger}
}

// Add регистрирует ресурс.
func (c *Closer) Add(name string, f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources = append(c.resources, resource{name: name, close: f})
}

// AddFunc регистрирует ресурс, закрытие которого не возвращает ошибку.
func (c *Closer) AddFunc(name string, f func()) {
	c.Add(name, func(context.Context) error {
		f()
		return nil
	})
}

// Close закрывает ресурсы по одному в порядке LIFO. Если ctx истекает,
// оставшиеся ресурсы закрываются параллельно с собственным таймаутом.
// Повторные вызовы возвращают результат первого.
func (c *Closer) Close(ctx context.Context) error {
	c.once.Do(func() {
		c.mu.Lock()
		resources := append([]resource(nil), c.resources...)
		c.mu.Unlock()

		var errs []error
		for i := len(resources) - 1; i >= 0; i-- {
			r := resources[i]
			done := make(chan error, 1)
			go func() { done <- r.close(ctx) }()

			select {
			case err := <-done:
				errs = append(errs, c.report(r.name, err))
			case <-ctx.Done():
				c.logger.Warnf("shutdown interrupted at %s, forcing %d remaining", r.name, i+1)
				errs = append(errs, c.forceClose(resources[:i+1])...)
				c.err = errors.Join(errs...)
				return
			}
		}
		c.err = errors.Join(errs...)
	})
	return c.err
}

func (c *Closer) forceClose(resources []resource) []error {
	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, r := range resources {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := c.report(r.name, r.close(ctx)); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("forced: %w", err))
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return errs
}

func (c *Closer) report(name string, err error) error {
	if err != nil {
		c.logger.Warnf("%s close error: %v", name, err)
		return fmt.Errorf("%s: %w", name, err)
	}
	c.logger.Infof("%s closed", name)
	return nil
}
