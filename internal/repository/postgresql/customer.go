package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zano-5702/worktime-backend-go/internal/domain/customer"
	"github.com/zano-5702/worktime-backend-go/internal/pkg/database"
)

type customerRepository struct {
	db *database.DB
}

func NewCustomerRepository(db *database.DB) customer.CustomerRepository {
	return &customerRepository{db: db}
}

// GetByKey implements customer.CustomerRepository.
func (r *customerRepository) GetByKey(ctx context.Context, key string) (customer.Customer, error) {
	query := `
		SELECT key, name, address, hourly_rate, assignment
		FROM customers
		WHERE key = $1
	`

	var c customer.Customer
	err := r.db.QueryRow(ctx, query, key).Scan(
		&c.Key, &c.Name, &c.Address, &c.HourlyRate, &c.Assignment,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return customer.Customer{}, customer.ErrCustomerNotFound
		}
		return customer.Customer{}, fmt.Errorf("failed to get customer %s: %w", key, err)
	}

	return c, nil
}

// List implements customer.CustomerRepository.
func (r *customerRepository) List(ctx context.Context) ([]customer.Customer, error) {
	query := `
		SELECT key, name, address, hourly_rate, assignment
		FROM customers
		ORDER BY key
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []customer.Customer
	for rows.Next() {
		var c customer.Customer
		if err := rows.Scan(&c.Key, &c.Name, &c.Address, &c.HourlyRate, &c.Assignment); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

// Upsert implements customer.CustomerRepository.
func (r *customerRepository) Upsert(ctx context.Context, c customer.Customer) error {
	query := `
		INSERT INTO customers (key, name, address, hourly_rate, assignment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (key) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			hourly_rate = EXCLUDED.hourly_rate,
			assignment = EXCLUDED.assignment,
			updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, c.Key, c.Name, c.Address, c.HourlyRate, c.Assignment); err != nil {
		return fmt.Errorf("failed to upsert customer %s: %w", c.Key, err)
	}
	return nil
}

// Delete implements customer.CustomerRepository.
func (r *customerRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM customers WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", key, err)
	}
	return nil
}
