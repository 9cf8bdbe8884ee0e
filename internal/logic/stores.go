package logic

import (
	"sync"

	"showcase/internal/domain"
)

// MemoryProductStore is an in-memory implementation of ProductStore that
// keeps the catalog order
type MemoryProductStore struct {
	mu       sync.RWMutex
	products []domain.Product
	byID     map[int]int
}

// NewMemoryProductStore creates a new memory-based product store
func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{
		byID: make(map[int]int),
	}
}

func (s *MemoryProductStore) GetProduct(id int) *domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return nil
	}
	p := s.products[i]
	return &p
}

func (s *MemoryProductStore) GetAllProducts() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]domain.Product, len(s.products))
	copy(result, s.products)
	return result
}

// ReplaceProducts swaps in a new catalog. On duplicate IDs the first
// product wins the lookup.
func (s *MemoryProductStore) ReplaceProducts(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make([]domain.Product, len(products))
	s.byID = make(map[int]int, len(products))
	for i, p := range products {
		s.products[i] = p
		if _, dup := s.byID[p.ID]; !dup {
			s.byID[p.ID] = i
		}
	}
}

func (s *MemoryProductStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
