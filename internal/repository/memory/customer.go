package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/zano-5702/worktime-backend-go/internal/domain/customer"
)

type customerRepository struct {
	mu        sync.RWMutex
	customers map[string]customer.Customer
}

func NewCustomerRepository() customer.CustomerRepository {
	return &customerRepository{
		customers: make(map[string]customer.Customer),
	}
}

// GetByKey implements customer.CustomerRepository.
func (r *customerRepository) GetByKey(_ context.Context, key string) (customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[key]
	if !ok {
		return customer.Customer{}, customer.ErrCustomerNotFound
	}
	return c, nil
}

// List implements customer.CustomerRepository.
func (r *customerRepository) List(_ context.Context) ([]customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]customer.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Key < all[j].Key })
	return all, nil
}

// Upsert implements customer.CustomerRepository.
func (r *customerRepository) Upsert(_ context.Context, c customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.customers[c.Key] = c
	return nil
}

// Delete implements customer.CustomerRepository.
func (r *customerRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.customers, key)
	return nil
}
