package customers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"custdesk/internal/common"
	"custdesk/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, limit, offset int) ([]Customer, int, error) {

	query :=
		`SELECT customer_id, customer_name, customer_contact, customer_address, managed_by, created_at
		 FROM customers
		 ORDER BY customer_id
		 LIMIT $1 OFFSET $2
		 `

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := []Customer{}
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Contact, &c.Address, &c.ManagedBy, &c.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM customers`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting rows: %w", err)
	}

	return result, total, nil
}

func (r *PostgresRepository) Create(ctx context.Context, customer *Customer) (*Customer, error) {

	query :=
		`INSERT INTO customers (customer_id, customer_name, customer_contact, customer_address, managed_by)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		customer.ID, customer.Name, customer.Contact, customer.Address, customer.ManagedBy).
		Scan(&customer.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return customer, nil
}

func (r *PostgresRepository) Update(ctx context.Context, customer *Customer) (*Customer, error) {

	query :=
		`UPDATE customers
		 SET customer_name = $2, customer_contact = $3, customer_address = $4, managed_by = $5
		 WHERE customer_id = $1
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		customer.ID, customer.Name, customer.Contact, customer.Address, customer.ManagedBy).
		Scan(&customer.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return customer, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {

	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE customer_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking affected rows: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
