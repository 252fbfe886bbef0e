// Package memory keeps the order table for the life of the process. No
// eviction, no persistence. Each order is written whole under the lock, so
// readers never observe a partial record.
package memory

import (
	"context"
	"sync"

	"github.com/dev-playground/order-demo/internal/order/domain"
)

type Store struct {
	mu sync.RWMutex
	m  map[string]domain.Order
}

func New() *Store {
	return &Store{m: make(map[string]domain.Order)}
}

func (s *Store) Save(_ context.Context, o domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[o.ID] = o
}

func (s *Store) Get(_ context.Context, id string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.m[id]
	return o, ok
}
