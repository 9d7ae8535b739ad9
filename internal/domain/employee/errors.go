package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("no employee configured for this device key")
)
