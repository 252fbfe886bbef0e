// Package memory holds the process-local inventory table. Single-key reads
// and writes are atomic under the RWMutex; there is no cross-key guarantee
// and none is needed.
package memory

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

type Store struct {
	mu sync.RWMutex
	m  map[string]int
}

// New seeds the table once at startup. The seed map is copied.
func New(seed map[string]int) *Store {
	m := make(map[string]int, len(seed))
	for sku, qty := range seed {
		m[sku] = qty
	}
	return &Store{m: m}
}

func (s *Store) Get(_ context.Context, sku string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	qty, ok := s.m[sku]
	return qty, ok
}

func (s *Store) Set(_ context.Context, sku string, available int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[sku] = available
}

// ParseSeed reads a "SKU=QTY,SKU=QTY" spec, as given via INVENTORY_SEED.
func ParseSeed(spec string) (map[string]int, error) {
	seed := make(map[string]int)
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		sku, qtyStr, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("seed entry %q: want SKU=QTY", entry)
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil {
			return nil, fmt.Errorf("seed entry %q: %w", entry, err)
		}
		if qty < 0 {
			return nil, fmt.Errorf("seed entry %q: quantity must be >= 0", entry)
		}
		seed[strings.TrimSpace(sku)] = qty
	}
	return seed, nil
}
