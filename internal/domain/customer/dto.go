package customer

import (
	"github.com/zano-5702/worktime-backend-go/internal/pkg/validator"
)

type UpsertCustomerRequest struct {
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	HourlyRate float64 `json:"hourly_rate"`
	Assignment string  `json:"assignment"`
}

func (r *UpsertCustomerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.HourlyRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CustomerResponse struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	HourlyRate float64 `json:"hourly_rate"`
	Assignment string  `json:"assignment"`
}

func ToResponse(c Customer) CustomerResponse {
	return CustomerResponse{
		Key:        c.Key,
		Name:       c.Name,
		Address:    c.Address,
		HourlyRate: c.HourlyRate,
		Assignment: c.Assignment,
	}
}
