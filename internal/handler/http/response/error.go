package response

import (
	"errors"
	"net/http"

	"github.com/zano-5702/worktime-backend-go/internal/domain/customer"
	"github.com/zano-5702/worktime-backend-go/internal/domain/employee"
	"github.com/zano-5702/worktime-backend-go/internal/domain/tracking"
	"github.com/zano-5702/worktime-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Tracking domain errors
	case errors.Is(err, tracking.ErrUnknownDevice):
		Conflict(w, "No employee is mapped to this device key")
	case errors.Is(err, tracking.ErrNoActiveSession):
		NotFound(w, "No active session for this device key")
	case errors.Is(err, tracking.ErrNegativeDuration):
		Conflict(w, "Session end precedes its start")

	// Configuration domain errors
	case errors.Is(err, customer.ErrCustomerNotFound):
		NotFound(w, "Customer not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
