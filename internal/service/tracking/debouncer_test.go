package tracking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zano-5702/worktime-backend-go/internal/domain/tracking"
	"github.com/zano-5702/worktime-backend-go/internal/repository/memory"
)

const testDelay = 310 * time.Second

type sinkCall struct {
	deviceKey string
	value     string
	timestamp int64
}

// recordingSink captures confirmed values instead of driving the state
// machine.
type recordingSink struct {
	mu    sync.Mutex
	calls []sinkCall
}

func (s *recordingSink) HandleConfirmedValue(_ context.Context, deviceKey, value string, timestampMs int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, sinkCall{deviceKey: deviceKey, value: value, timestamp: timestampMs})
	return nil
}

func (s *recordingSink) Calls() []sinkCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sinkCall(nil), s.calls...)
}

// flakyStateRepository injects failures into a real in-memory state
// repository.
type flakyStateRepository struct {
	tracking.DeviceStateRepository
	setErr error
	getErr error
}

func (r *flakyStateRepository) SetRawValue(ctx context.Context, deviceKey, rawValue string, observedAt int64) error {
	if r.setErr != nil {
		return r.setErr
	}
	return r.DeviceStateRepository.SetRawValue(ctx, deviceKey, rawValue, observedAt)
}

func (r *flakyStateRepository) GetRawValue(ctx context.Context, deviceKey string) (string, error) {
	if r.getErr != nil {
		return "", r.getErr
	}
	return r.DeviceStateRepository.GetRawValue(ctx, deviceKey)
}

func TestDebouncer_ConfirmsAfterDelay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mClock := quartz.NewMock(t)
	sink := &recordingSink{}
	d := NewDebouncer(mClock, testDelay, memory.NewDeviceStateRepository(), sink)

	require.NoError(t, d.OnRawValue(ctx, "D1", "Office-Mitte", 1000))
	assert.Equal(t, 1, d.PendingCount())
	assert.Empty(t, sink.Calls())

	mClock.Advance(testDelay).MustWait(ctx)

	calls := sink.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, sinkCall{deviceKey: "D1", value: "Office-Mitte", timestamp: 1000}, calls[0])
	assert.Equal(t, 0, d.PendingCount())
}

func TestDebouncer_NormalizesNullValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mClock := quartz.NewMock(t)
	sink := &recordingSink{}
	d := NewDebouncer(mClock, testDelay, memory.NewDeviceStateRepository(), sink)

	require.NoError(t, d.OnRawValue(ctx, "D1", " null ", 1000))
	mClock.Advance(testDelay).MustWait(ctx)

	calls := sink.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, tracking.Sentinel, calls[0].value)
}

func TestDebouncer_NewValueSupersedesPending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mClock := quartz.NewMock(t)
	sink := &recordingSink{}
	d := NewDebouncer(mClock, testDelay, memory.NewDeviceStateRepository(), sink)

	require.NoError(t, d.OnRawValue(ctx, "D1", "Office-Mitte", 1000))
	mClock.Advance(5 * time.Second).MustWait(ctx)
	require.NoError(t, d.OnRawValue(ctx, "D1", "Werkstatt-Nord", 6000))
	assert.Equal(t, 1, d.PendingCount())

	// The first window would have expired here; the superseded candidate
	// must not fire.
	mClock.Advance(testDelay - 5*time.Second).MustWait(ctx)
	assert.Empty(t, sink.Calls())

	mClock.Advance(5 * time.Second).MustWait(ctx)

	calls := sink.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, sinkCall{deviceKey: "D1", value: "Werkstatt-Nord", timestamp: 6000}, calls[0])
}

func TestDebouncer_DiscardsStaleCandidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mClock := quartz.NewMock(t)
	sink := &recordingSink{}
	state := memory.NewDeviceStateRepository()
	d := NewDebouncer(mClock, testDelay, state, sink)

	require.NoError(t, d.OnRawValue(ctx, "D1", "Office-Mitte", 1000))

	// The live value moves on without passing through the debouncer, so
	// the pending candidate no longer matches when its window expires.
	require.NoError(t, state.SetRawValue(ctx, "D1", "Werkstatt-Nord", 2000))
	mClock.Advance(testDelay).MustWait(ctx)

	assert.Empty(t, sink.Calls())
	assert.Equal(t, 0, d.PendingCount())
}

func TestDebouncer_IndependentDevices(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mClock := quartz.NewMock(t)
	sink := &recordingSink{}
	d := NewDebouncer(mClock, testDelay, memory.NewDeviceStateRepository(), sink)

	require.NoError(t, d.OnRawValue(ctx, "D1", "Office-Mitte", 1000))
	require.NoError(t, d.OnRawValue(ctx, "D2", "Werkstatt-Nord", 1000))
	assert.Equal(t, 2, d.PendingCount())

	mClock.Advance(testDelay).MustWait(ctx)

	calls := sink.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, 0, d.PendingCount())
}

func TestDebouncer_SetRawValueFailure_ReturnsError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mClock := quartz.NewMock(t)
	sink := &recordingSink{}
	state := &flakyStateRepository{
		DeviceStateRepository: memory.NewDeviceStateRepository(),
		setErr:                errors.New("state unavailable"),
	}
	d := NewDebouncer(mClock, testDelay, state, sink)

	err := d.OnRawValue(ctx, "D1", "Office-Mitte", 1000)
	assert.Error(t, err)
	assert.Equal(t, 0, d.PendingCount())
}

func TestDebouncer_ReadFailure_AbortsConfirmation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mClock := quartz.NewMock(t)
	sink := &recordingSink{}
	state := &flakyStateRepository{
		DeviceStateRepository: memory.NewDeviceStateRepository(),
	}
	d := NewDebouncer(mClock, testDelay, state, sink)

	require.NoError(t, d.OnRawValue(ctx, "D1", "Office-Mitte", 1000))
	state.getErr = errors.New("state unavailable")

	mClock.Advance(testDelay).MustWait(ctx)

	assert.Empty(t, sink.Calls())
	assert.Equal(t, 0, d.PendingCount())
}
