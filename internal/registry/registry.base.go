// Package registry cung cấp một registry generic, thread-safe cho các
// singleton của ứng dụng. Hiện dùng để giữ các *mongo.Collection handle
// (agents, pages, conversations, messages, links, media, webhook_logs)
// được đăng ký một lần lúc khởi động và tra cứu từ các service.
package registry

import (
	"fmt"
	"messenger_flow/internal/common"
	"sync"
)

// Registry giữ items theo tên. An toàn cho truy cập đồng thời.
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry tạo một registry rỗng.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký item theo tên, ghi đè nếu tên đã tồn tại.
// Trả về isNew=true nếu tên chưa được đăng ký trước đó.
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get tra cứu item theo tên. exists=false nếu tên chưa được đăng ký.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// Clear xóa item theo tên; cleanup (nếu có) được gọi trước khi xóa để
// giải phóng tài nguyên. Trả về deleted=false nếu tên không tồn tại.
func (r *Registry[T]) Clear(name string, cleanup func(T) error) (deleted bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[name]
	if !exists {
		return false, nil
	}

	if cleanup != nil {
		if err := cleanup(item); err != nil {
			return false, fmt.Errorf("failed to cleanup item %s: %w", name, err)
		}
	}

	delete(r.items, name)
	return true, nil
}
