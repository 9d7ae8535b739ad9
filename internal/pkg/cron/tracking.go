package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/zano-5702/worktime-backend-go/internal/domain/tracking"
)

// TrackingJobs owns periodic maintenance of the session store.
type TrackingJobs struct {
	trackingSvc tracking.Service
	maxAge      time.Duration
}

func NewTrackingJobs(trackingSvc tracking.Service, maxAge time.Duration) *TrackingJobs {
	return &TrackingJobs{
		trackingSvc: trackingSvc,
		maxAge:      maxAge,
	}
}

func (j *TrackingJobs) RegisterJobs(scheduler *Scheduler) {
	if j.maxAge <= 0 {
		slog.Info("Forced session close disabled (MAX_SESSION_AGE is zero)")
		return
	}
	scheduler.AddJob("force_close_stale_sessions", 15*time.Minute, j.ForceCloseStaleSessions)
}

// ForceCloseStaleSessions closes sessions whose start lies further back than
// the configured maximum age. A crashed upstream feed otherwise leaves them
// open forever.
func (j *TrackingJobs) ForceCloseStaleSessions(ctx context.Context) error {
	closed, err := j.trackingSvc.ForceCloseStale(ctx, j.maxAge)
	if err != nil {
		return err
	}
	if closed > 0 {
		slog.Info("Cron: Force-closed stale sessions", "count", closed, "max_age", j.maxAge)
	}
	return nil
}
