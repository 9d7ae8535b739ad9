package employee

import "strings"

// Employee is the worker carrying a tracked device. The device key is the
// identity under which geofence signals arrive.
type Employee struct {
	DeviceKey string
	FirstName string
	LastName  string
}

// FullName returns "First Last" as used in work log entries.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// AggregateKey returns the identity segment of aggregate bucket keys,
// e.g. "Max_Mustermann". Inner spaces are flattened so the key stays a
// single dot-free segment.
func (e Employee) AggregateKey() string {
	return strings.ReplaceAll(e.FirstName+"_"+e.LastName, " ", "_")
}
