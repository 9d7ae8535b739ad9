package tracking

import (
	"strings"
	"time"
)

// Sentinel is the normalized form of every raw geofence value that means
// "not inside any geofence".
const Sentinel = ""

// Normalize maps a raw geofence value onto either a customer key or the
// sentinel. Empty strings, "0" and "null" (any casing) all mean no geofence.
func Normalize(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" || v == "0" || strings.EqualFold(v, "null") {
		return Sentinel
	}
	return v
}

// Session is an open work interval for one device. A device key owns at most
// one session at a time; the session is removed from the store the moment it
// is closed.
type Session struct {
	DeviceKey       string
	CustomerKey     string
	StartMillis     int64
	WorkDescription string
}

// Start returns the session start as UTC wall time.
func (s Session) Start() time.Time {
	return time.UnixMilli(s.StartMillis).UTC()
}

// LogEntry is the immutable record produced when a session closes. Customer
// attributes are snapshotted at close time, not referenced live.
type LogEntry struct {
	ID              string    `json:"id"`
	Employee        string    `json:"employee"`
	Customer        string    `json:"customer"`
	Address         string    `json:"address"`
	HourlyRate      float64   `json:"hourlyRate"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	DurationHours   float64   `json:"durationHours"`
	WorkDescription string    `json:"workDescription"`
	CreatedAt       time.Time `json:"-"`
}

// DeviceState is the last raw geofence value reported for a device, kept so a
// pending confirmation can re-read the live value after the stabilization
// delay.
type DeviceState struct {
	DeviceKey  string
	RawValue   string
	ObservedAt int64
}

// FormatMillis renders an epoch-millisecond timestamp as an ISO-8601 UTC
// string with millisecond precision, e.g. "2025-02-23T08:00:00.000Z".
func FormatMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// HoursBetween converts a start/end pair of epoch milliseconds into fractional
// hours.
func HoursBetween(startMillis, endMillis int64) float64 {
	return float64(endMillis-startMillis) / 3600000.0
}
