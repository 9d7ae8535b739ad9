package employee

import "context"

// EmployeeRepository defines data access methods for the device-to-employee
// mapping.
type EmployeeRepository interface {
	// GetByDeviceKey retrieves the employee assigned to a device.
	// Returns ErrEmployeeNotFound when the device is unmapped.
	GetByDeviceKey(ctx context.Context, deviceKey string) (Employee, error)

	// List retrieves all configured employees.
	List(ctx context.Context) ([]Employee, error)

	// Upsert creates or replaces the employee stored under its device key.
	Upsert(ctx context.Context, employee Employee) error

	// Delete removes the mapping for a device key.
	Delete(ctx context.Context, deviceKey string) error
}
