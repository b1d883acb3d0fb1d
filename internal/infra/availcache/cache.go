// Package availcache кеш данных доступности с TTL. Данные доступности всегда
// трактуются как подсказка: заказ в любом случае валидируется платформой.
// Поэтому кеш предпочитает отдать устаревшее значение, а не ошибку.
//
// Одновременные обновления одного ключа разрешаются поколениями: каждому
// выданному запросу присваивается номер, записывается только результат
// запроса с наибольшим номером. Ответ, пришедший позже, но выданный раньше,
// молча отбрасывается.
package availcache

import (
	"context"
	"sync"
	"time"
)

// State состояние ключа в кеше
type State int

const (
	// StateMiss значения нет
	StateMiss State = iota
	// StateFresh значение в пределах TTL
	StateFresh
	// StateStale значение есть, но TTL истек
	StateStale
)

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Observer приемник событий кеша для метрик
type Observer interface {
	ObserveCache(kind, event string)
}

// FetchFunc загружает значение ключа с платформы
type FetchFunc[T any] func(ctx context.Context, key string) (T, error)

type entry[T any] struct {
	value     T
	hasValue  bool
	fetchedAt time.Time
	// issued поколение последнего выданного запроса на этот ключ
	issued uint64
	// stored поколение записанного значения
	stored uint64
}

// Cache кеш одного вида данных доступности
type Cache[T any] struct {
	kind    string
	ttl     time.Duration
	fetch   FetchFunc[T]
	log     Logger
	metrics Observer

	mu      sync.Mutex
	entries map[string]*entry[T]

	now func() time.Time
}

// New создает кеш. metrics может быть nil.
func New[T any](kind string, ttl time.Duration, fetch FetchFunc[T], log Logger, metrics Observer) *Cache[T] {
	return &Cache[T]{
		kind:    kind,
		ttl:     ttl,
		fetch:   fetch,
		log:     log,
		metrics: metrics,
		entries: make(map[string]*entry[T]),
		now:     time.Now,
	}
}

// Peek возвращает закешированное значение и его состояние без обращения к платформе
func (c *Cache[T]) Peek(key string) (T, State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.hasValue {
		var zero T
		return zero, StateMiss
	}
	if c.now().Sub(e.fetchedAt) < c.ttl {
		return e.value, StateFresh
	}
	return e.value, StateStale
}

// Get возвращает значение ключа, при необходимости обновляя его с платформы.
// Свежее значение отдается из кеша. Если обновление не удалось, но есть
// устаревшее значение, отдается оно: устаревшая подсказка полезнее отказа.
func (c *Cache[T]) Get(ctx context.Context, key string) (T, error) {
	cached, state := c.Peek(key)
	if state == StateFresh {
		c.observe("hit")
		return cached, nil
	}
	if state == StateMiss {
		c.observe("miss")
	}

	value, err := c.refresh(ctx, key)
	if err != nil {
		if state == StateStale {
			c.observe("stale_served")
			c.log.Warn("cache %s: refresh failed for key=%s, serving stale: %v", c.kind, key, err)
			return cached, nil
		}
		var zero T
		return zero, err
	}
	return value, nil
}

// Invalidate сбрасывает значение ключа. Следующий Get загрузит его заново.
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Prefetch запускает фоновый прогрев ключей. Свежие ключи пропускаются,
// ошибки только логируются.
func (c *Cache[T]) Prefetch(ctx context.Context, keys []string) {
	for _, key := range keys {
		if _, state := c.Peek(key); state == StateFresh {
			continue
		}
		go func(key string) {
			c.observe("prefetch")
			if _, err := c.refresh(ctx, key); err != nil {
				c.log.Debug("cache %s: prefetch failed for key=%s: %v", c.kind, key, err)
			}
		}(key)
	}
}

// refresh выдает новый запрос и записывает результат, если к моменту
// завершения не был выдан более поздний запрос на тот же ключ.
func (c *Cache[T]) refresh(ctx context.Context, key string) (T, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry[T]{}
		c.entries[key] = e
	}
	e.issued++
	gen := e.issued
	c.mu.Unlock()

	value, err := c.fetch(ctx, key)
	if err != nil {
		c.observe("refresh_error")
		var zero T
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Ключ мог быть инвалидирован во время запроса
	cur, ok := c.entries[key]
	if !ok || cur != e {
		return value, nil
	}
	if gen <= e.stored {
		// Уже записан результат более позднего запроса, этот отбрасывается
		c.observe("discarded")
		return value, nil
	}
	e.value = value
	e.hasValue = true
	e.fetchedAt = c.now()
	e.stored = gen
	return value, nil
}

func (c *Cache[T]) observe(event string) {
	if c.metrics != nil {
		c.metrics.ObserveCache(c.kind, event)
	}
}
