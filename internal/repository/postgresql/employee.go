package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zano-5702/worktime-backend-go/internal/domain/employee"
	"github.com/zano-5702/worktime-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByDeviceKey implements employee.EmployeeRepository.
func (r *employeeRepository) GetByDeviceKey(ctx context.Context, deviceKey string) (employee.Employee, error) {
	query := `
		SELECT device_key, first_name, last_name
		FROM employees
		WHERE device_key = $1
	`

	var e employee.Employee
	err := r.db.QueryRow(ctx, query, deviceKey).Scan(&e.DeviceKey, &e.FirstName, &e.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee for %s: %w", deviceKey, err)
	}

	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	query := `
		SELECT device_key, first_name, last_name
		FROM employees
		ORDER BY device_key
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(&e.DeviceKey, &e.FirstName, &e.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// Upsert implements employee.EmployeeRepository.
func (r *employeeRepository) Upsert(ctx context.Context, e employee.Employee) error {
	query := `
		INSERT INTO employees (device_key, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (device_key) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, e.DeviceKey, e.FirstName, e.LastName); err != nil {
		return fmt.Errorf("failed to upsert employee %s: %w", e.DeviceKey, err)
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, deviceKey string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM employees WHERE device_key = $1`, deviceKey); err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", deviceKey, err)
	}
	return nil
}
