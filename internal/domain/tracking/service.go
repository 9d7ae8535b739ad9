package tracking

import (
	"context"
	"time"
)

// Service is the session state machine. It consumes confirmed geofence
// values and owns the open/switch/close lifecycle.
type Service interface {
	// HandleConfirmedValue applies one debounce-confirmed geofence value.
	// value must already be normalized; timestampMs is the moment the value
	// was first observed.
	HandleConfirmedValue(ctx context.Context, deviceKey, value string, timestampMs int64) error

	// SetWorkDescription updates the free text on the active session of a
	// device. Returns ErrNoActiveSession when the device is idle.
	SetWorkDescription(ctx context.Context, deviceKey, description string) error

	// ActiveSessions lists all currently open sessions.
	ActiveSessions(ctx context.Context) ([]SessionResponse, error)

	// WorkLog returns the newest completed entries, at most limit of them.
	WorkLog(ctx context.Context, limit int) ([]LogEntry, error)

	// ForceCloseStale closes every session open longer than maxAge and
	// returns how many were closed.
	ForceCloseStale(ctx context.Context, maxAge time.Duration) (int, error)
}
