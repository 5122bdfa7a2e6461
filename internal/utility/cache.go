package utility

import (
	"sync"
	"time"
)

// cacheEntry giữ giá trị kèm hạn sống.
type cacheEntry[T any] struct {
	value     T
	expiresAt time.Time
}

// Cache là in-memory cache generic có TTL theo từng entry. Dùng cho
// việc map bearer token về agent trong middleware xác thực: Get trả
// về miss khi entry đã quá hạn, kể cả khi vòng dọn dẹp chưa chạy tới.
type Cache[T any] struct {
	items    map[string]cacheEntry[T]
	mu       sync.RWMutex
	ttl      time.Duration
	stopChan chan struct{}
}

// NewCache tạo cache với thời gian sống ttl cho mỗi entry và chu kỳ
// dọn dẹp cleanup cho các entry đã quá hạn.
func NewCache[T any](ttl, cleanup time.Duration) *Cache[T] {
	cache := &Cache[T]{
		items:    make(map[string]cacheEntry[T]),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}
	go cache.cleanupLoop(cleanup)
	return cache
}

// Set lưu giá trị vào cache với hạn sống ttl tính từ bây giờ.
func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheEntry[T]{value: value, expiresAt: time.Now().Add(c.ttl)}
}

// Get lấy giá trị từ cache. Entry quá hạn được coi là miss.
func (c *Cache[T]) Get(key string) (value T, exists bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return value, false
	}
	return entry.value, true
}

// Delete xóa một key khỏi cache.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Stop dừng vòng dọn dẹp nền.
func (c *Cache[T]) Stop() {
	close(c.stopChan)
}

// cleanupLoop xóa định kỳ các entry đã quá hạn.
func (c *Cache[T]) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for k, entry := range c.items {
				if now.After(entry.expiresAt) {
					delete(c.items, k)
				}
			}
			c.mu.Unlock()
		case <-c.stopChan:
			return
		}
	}
}
