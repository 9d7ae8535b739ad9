package employee

import (
	"github.com/zano-5702/worktime-backend-go/internal/pkg/validator"
)

type UpsertEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r *UpsertEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	DeviceKey string `json:"device_key"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		DeviceKey: e.DeviceKey,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		FullName:  e.FullName(),
	}
}
