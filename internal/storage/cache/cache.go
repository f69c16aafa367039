package cache

import (
	"sync"
)

// Registry is an in-memory map of per-user values guarded by a mutex. The
// quiz service keeps one engine per user in it; entries live until the user
// resets or the process exits.
type Registry[T any] struct {
	mu    sync.Mutex
	items map[int64]T
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[int64]T),
	}
}

func (r *Registry[T]) Get(userID int64) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, exists := r.items[userID]
	return item, exists
}

func (r *Registry[T]) Set(userID int64, item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[userID] = item
}

// GetOrCreate returns the existing value for userID or stores and returns
// the one produced by create. The factory runs under the lock, so it must
// not call back into the registry.
func (r *Registry[T]) GetOrCreate(userID int64, create func() T) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item, exists := r.items[userID]; exists {
		return item
	}
	item := create()
	r.items[userID] = item
	return item
}

func (r *Registry[T]) Delete(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, userID)
}
