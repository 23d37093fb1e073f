package users

import (
	"context"
)

// Repository persists user accounts. Create returns
// common.ErrorAlreadyExists on a duplicate employee id;
// GetByEmployeeID returns common.ErrorNotFound for unknown ids.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*User, error)
}
