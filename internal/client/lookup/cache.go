package lookup

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL время жизни записи кэша
const DefaultTTL = 30 * time.Minute

type cacheEntry struct {
	expiresAt time.Time
	data      WordData
}

// CachedProvider кэширует успешные ответы по нормализованному слову.
// Одновременные запросы одного слова сливаются в один.
// Ошибки и заглушка PlaceholderMeaning не кэшируются.
type CachedProvider struct {
	next    Provider
	entries map[string]cacheEntry
	now     func() time.Time
	group   singleflight.Group
	ttl     time.Duration
	mu      sync.RWMutex
}

var _ Provider = (*CachedProvider)(nil)

// CacheOption настраивает CachedProvider
type CacheOption func(*CachedProvider)

// WithTTL задает время жизни записи
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *CachedProvider) {
		c.ttl = ttl
	}
}

// WithCacheClock подменяет источник времени
func WithCacheClock(now func() time.Time) CacheOption {
	return func(c *CachedProvider) {
		c.now = now
	}
}

// NewCachedProvider wraps next with a TTL cache
func NewCachedProvider(next Provider, opts ...CacheOption) *CachedProvider {
	c := &CachedProvider{
		next:    next,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
		ttl:     DefaultTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *CachedProvider) FetchWordData(ctx context.Context, word string) (WordData, error) {
	key := Normalize(word)
	if key == "" {
		return WordData{}, ErrEmptyWord
	}

	if data, ok := c.get(key); ok {
		return data, nil
	}

	// Общий запрос не зависит от отмены первого вызывающего;
	// каждый ждет результат со своим ctx.
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		if data, ok := c.get(key); ok {
			return data, nil
		}
		data, err := c.next.FetchWordData(fetchCtx, key)
		if err != nil {
			return WordData{}, err
		}
		if !IsPlaceholder(data) {
			c.set(key, data)
		}
		return data, nil
	})

	select {
	case <-ctx.Done():
		return WordData{}, fmt.Errorf("lookup %q: %w", key, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return WordData{}, res.Err
		}
		return cloneData(res.Val.(WordData)), nil
	}
}

// Len returns the number of live entries
func (c *CachedProvider) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.now()
	n := 0
	for _, e := range c.entries {
		if now.Before(e.expiresAt) {
			n++
		}
	}
	return n
}

func (c *CachedProvider) get(key string) (WordData, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !c.now().Before(e.expiresAt) {
		return WordData{}, false
	}
	return cloneData(e.data), true
}

func (c *CachedProvider) set(key string, data WordData) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	// Просроченные записи чистим при записи
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = cacheEntry{data: cloneData(data), expiresAt: now.Add(c.ttl)}
}

func cloneData(d WordData) WordData {
	d.Examples = slices.Clone(d.Examples)
	d.Synonyms = slices.Clone(d.Synonyms)
	d.Antonyms = slices.Clone(d.Antonyms)
	return d
}
