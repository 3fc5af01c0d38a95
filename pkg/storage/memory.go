package storage

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type memoryItem struct {
	raw       []byte
	expiresAt time.Time
}

// MemoryClient keeps data in process memory. It is used when no redis address
// is configured, so everything stored is lost on restart.
type MemoryClient struct {
	mu    sync.Mutex
	items map[string]memoryItem
	now   func() time.Time
}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		items: map[string]memoryItem{},
		now:   time.Now,
	}
}

func (c *MemoryClient) Read(ctx context.Context, key string) (raw []byte, found bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[key]
	if !ok {
		return nil, false, nil
	}

	if !item.expiresAt.IsZero() && !c.now().Before(item.expiresAt) {
		delete(c.items, key)
		logrus.WithContext(ctx).Debugf("data under key %q expired", key)
		return nil, false, nil
	}

	return item.raw, true, nil
}

func (c *MemoryClient) Write(_ context.Context, key string, raw []byte, exp time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := memoryItem{raw: append([]byte{}, raw...)}
	if exp > 0 {
		item.expiresAt = c.now().Add(exp)
	}
	c.items[key] = item

	return nil
}

func (c *MemoryClient) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)

	return nil
}

func (c *MemoryClient) Load(ctx context.Context, key string, target interface{}) (found bool, err error) {
	return load(ctx, c, key, target)
}

func (c *MemoryClient) Save(ctx context.Context, key string, data interface{}, validity time.Duration) error {
	return save(ctx, c, key, data, validity)
}
