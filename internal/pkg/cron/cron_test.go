package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zano-5702/worktime-backend-go/internal/domain/tracking"
)

type stubTrackingService struct {
	tracking.Service
	forceCloseCalls atomic.Int32
	forceCloseAge   time.Duration
	closed          int
	err             error
}

func (s *stubTrackingService) ForceCloseStale(_ context.Context, maxAge time.Duration) (int, error) {
	s.forceCloseCalls.Add(1)
	s.forceCloseAge = maxAge
	return s.closed, s.err
}

func TestScheduler_RunOnce(t *testing.T) {
	t.Parallel()
	scheduler := NewScheduler()

	var runs atomic.Int32
	scheduler.AddJob("counter", time.Hour, func(_ context.Context) error {
		runs.Add(1)
		return nil
	})
	scheduler.AddJob("failing", time.Hour, func(_ context.Context) error {
		return errors.New("boom")
	})

	scheduler.RunOnce(context.Background())
	scheduler.RunOnce(context.Background())

	assert.Equal(t, int32(2), runs.Load())
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	t.Parallel()
	scheduler := NewScheduler()
	scheduler.Stop()
}

func TestTrackingJobs_RegisterSkippedWhenDisabled(t *testing.T) {
	t.Parallel()
	scheduler := NewScheduler()
	svc := &stubTrackingService{}

	NewTrackingJobs(svc, 0).RegisterJobs(scheduler)
	scheduler.RunOnce(context.Background())

	assert.Equal(t, int32(0), svc.forceCloseCalls.Load())
}

func TestTrackingJobs_ForceCloseStaleSessions(t *testing.T) {
	t.Parallel()
	scheduler := NewScheduler()
	svc := &stubTrackingService{closed: 2}

	jobs := NewTrackingJobs(svc, 12*time.Hour)
	jobs.RegisterJobs(scheduler)
	scheduler.RunOnce(context.Background())

	require.Equal(t, int32(1), svc.forceCloseCalls.Load())
	assert.Equal(t, 12*time.Hour, svc.forceCloseAge)

	require.NoError(t, jobs.ForceCloseStaleSessions(context.Background()))

	svc.err = errors.New("store unavailable")
	assert.Error(t, jobs.ForceCloseStaleSessions(context.Background()))
}
