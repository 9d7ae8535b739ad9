package tracking

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/quartz"

	"github.com/zano-5702/worktime-backend-go/internal/domain/tracking"
)

// confirmTimeout bounds the state read a firing confirmation performs.
const confirmTimeout = 10 * time.Second

// ConfirmedSink receives geofence values that survived the stabilization
// delay. Implemented by the session state machine.
type ConfirmedSink interface {
	HandleConfirmedValue(ctx context.Context, deviceKey, value string, timestampMs int64) error
}

// pendingConfirmation is the single in-flight debounce record of a device.
type pendingConfirmation struct {
	candidate  string
	observedAt int64
	timer      *quartz.Timer
}

// Debouncer holds raw geofence updates until they stay unchanged for the
// stabilization delay. Each new raw value for a device supersedes the
// pending confirmation, re-basing the window on the latest value instead of
// queuing.
type Debouncer struct {
	clock quartz.Clock
	delay time.Duration
	state tracking.DeviceStateRepository
	sink  ConfirmedSink

	mu      sync.Mutex
	pending map[string]*pendingConfirmation
}

func NewDebouncer(clock quartz.Clock, delay time.Duration, state tracking.DeviceStateRepository, sink ConfirmedSink) *Debouncer {
	return &Debouncer{
		clock:   clock,
		delay:   delay,
		state:   state,
		sink:    sink,
		pending: make(map[string]*pendingConfirmation),
	}
}

// OnRawValue ingests one raw signal. The raw value is persisted as the
// device's live state, then a confirmation is scheduled that re-reads the
// live value after the delay and forwards the candidate only on a match.
func (d *Debouncer) OnRawValue(ctx context.Context, deviceKey, rawValue string, timestampMs int64) error {
	if err := d.state.SetRawValue(ctx, deviceKey, rawValue, timestampMs); err != nil {
		return fmt.Errorf("failed to store raw value for %s: %w", deviceKey, err)
	}

	candidate := tracking.Normalize(rawValue)

	d.mu.Lock()
	defer d.mu.Unlock()

	if prev, ok := d.pending[deviceKey]; ok {
		prev.timer.Stop()
	}

	p := &pendingConfirmation{
		candidate:  candidate,
		observedAt: timestampMs,
	}
	p.timer = d.clock.AfterFunc(d.delay, func() {
		d.confirm(deviceKey, p)
	}, "debounce", deviceKey)
	d.pending[deviceKey] = p

	slog.Debug("Scheduled geofence confirmation",
		"device_key", deviceKey, "candidate", candidate, "delay", d.delay)

	return nil
}

// confirm fires after the stabilization delay. A mismatch with the live
// value means the candidate was transient flicker and is silently dropped;
// a read failure aborts only this confirmation.
func (d *Debouncer) confirm(deviceKey string, p *pendingConfirmation) {
	d.mu.Lock()
	if d.pending[deviceKey] == p {
		delete(d.pending, deviceKey)
	}
	d.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), confirmTimeout)
	defer cancel()

	live, err := d.state.GetRawValue(ctx, deviceKey)
	if err != nil {
		slog.Warn("Aborting geofence confirmation, live value unreadable",
			"device_key", deviceKey, "error", err)
		return
	}

	if tracking.Normalize(live) != p.candidate {
		slog.Debug("Discarding unstable geofence value",
			"device_key", deviceKey, "candidate", p.candidate, "live", live)
		return
	}

	if err := d.sink.HandleConfirmedValue(ctx, deviceKey, p.candidate, p.observedAt); err != nil {
		slog.Error("Confirmed geofence value rejected",
			"device_key", deviceKey, "value", p.candidate, "error", err)
	}
}

// PendingCount returns how many devices currently await confirmation.
func (d *Debouncer) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
