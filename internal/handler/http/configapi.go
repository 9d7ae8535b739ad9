package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zano-5702/worktime-backend-go/internal/domain/customer"
	"github.com/zano-5702/worktime-backend-go/internal/domain/employee"
	"github.com/zano-5702/worktime-backend-go/internal/handler/http/response"
)

// ConfigHandler exposes the customer and employee mappings the admin UI
// maintains.
type ConfigHandler interface {
	ListCustomers(w http.ResponseWriter, r *http.Request)
	UpsertCustomer(w http.ResponseWriter, r *http.Request)
	DeleteCustomer(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	UpsertEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
}

type configHandlerImpl struct {
	customerRepo customer.CustomerRepository
	employeeRepo employee.EmployeeRepository
}

func NewConfigHandler(customerRepo customer.CustomerRepository, employeeRepo employee.EmployeeRepository) ConfigHandler {
	return &configHandlerImpl{
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
	}
}

// ListCustomers implements ConfigHandler.
func (h *configHandlerImpl) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]customer.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		result = append(result, customer.ToResponse(c))
	}
	response.Success(w, result)
}

// UpsertCustomer implements ConfigHandler.
func (h *configHandlerImpl) UpsertCustomer(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req customer.UpsertCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	c := customer.Customer{
		Key:        key,
		Name:       req.Name,
		Address:    req.Address,
		HourlyRate: req.HourlyRate,
		Assignment: req.Assignment,
	}
	if err := h.customerRepo.Upsert(r.Context(), c); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Customer saved", customer.ToResponse(c))
}

// DeleteCustomer implements ConfigHandler.
func (h *configHandlerImpl) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if err := h.customerRepo.Delete(r.Context(), key); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Customer deleted", nil)
}

// ListEmployees implements ConfigHandler.
func (h *configHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, employee.ToResponse(e))
	}
	response.Success(w, result)
}

// UpsertEmployee implements ConfigHandler.
func (h *configHandlerImpl) UpsertEmployee(w http.ResponseWriter, r *http.Request) {
	deviceKey := chi.URLParam(r, "deviceKey")

	var req employee.UpsertEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	e := employee.Employee{
		DeviceKey: deviceKey,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := h.employeeRepo.Upsert(r.Context(), e); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee saved", employee.ToResponse(e))
}

// DeleteEmployee implements ConfigHandler.
func (h *configHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	deviceKey := chi.URLParam(r, "deviceKey")
	if err := h.employeeRepo.Delete(r.Context(), deviceKey); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted", nil)
}
