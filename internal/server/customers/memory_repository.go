package customers

import (
	"context"
	"sort"
	"sync"
	"time"

	"custdesk/internal/common"
)

// MemoryRepository keeps customers in a map. Used by tests and the -m mode.
// List orders by customer id, matching the SQL repository.
type MemoryRepository struct {
	mu        sync.RWMutex
	customers map[string]*Customer
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{customers: make(map[string]*Customer)}
}

func (r *MemoryRepository) List(_ context.Context, limit, offset int) ([]Customer, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.customers))
	for id := range r.customers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	total := len(ids)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	result := make([]Customer, 0, end-offset)
	for _, id := range ids[offset:end] {
		result = append(result, *r.customers[id])
	}

	return result, total, nil
}

func (r *MemoryRepository) Create(_ context.Context, customer *Customer) (*Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *customer
	stored.CreatedAt = time.Now().UTC()
	r.customers[customer.ID] = &stored

	copy := stored
	return &copy, nil
}

func (r *MemoryRepository) Update(_ context.Context, customer *Customer) (*Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.customers[customer.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}

	stored := *customer
	stored.CreatedAt = existing.CreatedAt
	r.customers[customer.ID] = &stored

	copy := stored
	return &copy, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.customers, id)

	return nil
}
