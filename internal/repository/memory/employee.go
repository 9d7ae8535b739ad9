package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/zano-5702/worktime-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() employee.EmployeeRepository {
	return &employeeRepository{
		employees: make(map[string]employee.Employee),
	}
}

// GetByDeviceKey implements employee.EmployeeRepository.
func (r *employeeRepository) GetByDeviceKey(_ context.Context, deviceKey string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[deviceKey]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(_ context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]employee.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].DeviceKey < all[j].DeviceKey })
	return all, nil
}

// Upsert implements employee.EmployeeRepository.
func (r *employeeRepository) Upsert(_ context.Context, e employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.employees[e.DeviceKey] = e
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(_ context.Context, deviceKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.employees, deviceKey)
	return nil
}
