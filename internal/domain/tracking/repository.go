package tracking

import "context"

// SessionStore maps a device key to at most one active session.
type SessionStore interface {
	// Get returns the active session for a device, or nil when the device is
	// idle.
	Get(ctx context.Context, deviceKey string) (*Session, error)

	// Set stores the session under its device key, replacing any previous one.
	Set(ctx context.Context, session Session) error

	// Delete removes the session for a device key. Deleting an idle device is
	// a no-op.
	Delete(ctx context.Context, deviceKey string) error

	// All returns every active session.
	All(ctx context.Context) ([]Session, error)
}

// DeviceStateRepository records the latest raw geofence value per device.
type DeviceStateRepository interface {
	// SetRawValue stores the raw value last reported for a device.
	SetRawValue(ctx context.Context, deviceKey, rawValue string, observedAt int64) error

	// GetRawValue returns the raw value last reported for a device. A device
	// that never reported yields the empty string.
	GetRawValue(ctx context.Context, deviceKey string) (string, error)
}

// WorkLogRepository is the append-only sink for completed sessions. Entries
// keep their insertion order and are never mutated or deleted here.
type WorkLogRepository interface {
	// Append durably records a log entry and returns it with storage fields
	// filled in.
	Append(ctx context.Context, entry LogEntry) (LogEntry, error)

	// List returns the newest entries first, at most limit of them.
	List(ctx context.Context, limit int) ([]LogEntry, error)
}

// AggregateRepository accumulates hours into named buckets. Add must be
// atomic per bucket key so concurrent closes landing in the same bucket do
// not lose updates.
type AggregateRepository interface {
	// Add increases a bucket by hours and returns the new total. Missing
	// buckets start at zero.
	Add(ctx context.Context, bucketKey string, hours float64) (float64, error)

	// Get returns the current total of a bucket, zero when absent.
	Get(ctx context.Context, bucketKey string) (float64, error)

	// ListByPrefix returns all buckets whose key starts with prefix.
	ListByPrefix(ctx context.Context, prefix string) (map[string]float64, error)
}
