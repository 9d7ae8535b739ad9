package tracking

import "errors"

// Tracking domain errors
var (
	// ErrUnknownDevice rejects a confirmed signal for a device no employee is
	// mapped to. Without an employee identity a log entry is meaningless.
	ErrUnknownDevice = errors.New("no employee is mapped to this device key")

	// ErrNegativeDuration marks a close whose end precedes its start (clock
	// skew or out-of-order delivery). The session is still removed, but no
	// log entry or aggregate update is produced.
	ErrNegativeDuration = errors.New("session end precedes its start")

	// ErrNoActiveSession is returned when mutating a session a device does
	// not have.
	ErrNoActiveSession = errors.New("no active session for this device key")
)
