package tracking

import (
	"github.com/zano-5702/worktime-backend-go/internal/pkg/validator"
)

// SignalRequest is one raw geofence observation from the upstream location
// feed. Value may be null; null, "", "0" and "null" all mean "no geofence".
type SignalRequest struct {
	DeviceKey   string  `json:"device_key"`
	Value       *string `json:"value"`
	TimestampMs int64   `json:"timestamp_ms"`
}

func (r *SignalRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DeviceKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_key",
			Message: "device_key is required",
		})
	}

	if r.TimestampMs < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp_ms",
			Message: "timestamp_ms must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RawValue unwraps the nullable signal value.
func (r *SignalRequest) RawValue() string {
	if r.Value == nil {
		return ""
	}
	return *r.Value
}

type WorkDescriptionRequest struct {
	Description string `json:"description"`
}

type SessionResponse struct {
	DeviceKey       string `json:"device_key"`
	Employee        string `json:"employee"`
	CustomerKey     string `json:"customer_key"`
	StartTime       string `json:"start_time"`
	WorkDescription string `json:"work_description,omitempty"`
}
