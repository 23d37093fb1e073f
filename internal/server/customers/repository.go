package customers

import (
	"context"
)

// Repository persists customer records. List returns one page ordered by
// customer id plus the total row count. Update and Delete return
// common.ErrorNotFound for unknown ids.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]Customer, int, error)
	Create(ctx context.Context, customer *Customer) (*Customer, error)
	Update(ctx context.Context, customer *Customer) (*Customer, error)
	Delete(ctx context.Context, id string) error
}
