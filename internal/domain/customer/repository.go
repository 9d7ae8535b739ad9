package customer

import "context"

// CustomerRepository defines data access methods for customer records.
type CustomerRepository interface {
	// GetByKey retrieves a customer by its geofence key.
	// Returns ErrCustomerNotFound when no record exists.
	GetByKey(ctx context.Context, key string) (Customer, error)

	// List retrieves all configured customers.
	List(ctx context.Context) ([]Customer, error)

	// Upsert creates or replaces the customer stored under its key.
	Upsert(ctx context.Context, customer Customer) error

	// Delete removes a customer by key.
	Delete(ctx context.Context, key string) error
}
