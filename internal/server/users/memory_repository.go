package users

import (
	"context"
	"sync"
	"time"

	"custdesk/internal/common"
)

// MemoryRepository keeps users in a map. Used by tests and the -m mode.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User // keyed by employee id
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*User)}
}

func (r *MemoryRepository) Create(_ context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.EmployeeID]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	stored.CreatedAt = time.Now().UTC()
	r.users[user.EmployeeID] = &stored

	copy := stored
	return &copy, nil
}

func (r *MemoryRepository) GetByEmployeeID(_ context.Context, employeeID string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[employeeID]
	if !ok {
		return nil, common.ErrorNotFound
	}

	copy := *user
	return &copy, nil
}
