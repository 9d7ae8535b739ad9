package tracking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/zano-5702/worktime-backend-go/internal/domain/customer"
	"github.com/zano-5702/worktime-backend-go/internal/domain/employee"
	"github.com/zano-5702/worktime-backend-go/internal/domain/tracking"
	"github.com/zano-5702/worktime-backend-go/internal/pkg/export"
	"github.com/zano-5702/worktime-backend-go/internal/pkg/sse"
	aggregateService "github.com/zano-5702/worktime-backend-go/internal/service/aggregate"
)

// ServiceImpl is the session state machine. A single mutex serializes all
// transitions, which gives the per-device ordering guarantee and keeps the
// session store free of partial states.
type ServiceImpl struct {
	mu sync.Mutex

	employee.EmployeeRepository
	customer.CustomerRepository
	sessions   tracking.SessionStore
	workLog    tracking.WorkLogRepository
	aggregator *aggregateService.Service
	hub        *sse.Hub
	exporter   *export.Client
	clock      quartz.Clock
}

type Option func(*ServiceImpl)

// WithClock replaces the wall clock, used by ForceCloseStale.
func WithClock(clock quartz.Clock) Option {
	return func(s *ServiceImpl) {
		s.clock = clock
	}
}

func NewTrackingService(
	employeeRepo employee.EmployeeRepository,
	customerRepo customer.CustomerRepository,
	sessions tracking.SessionStore,
	workLog tracking.WorkLogRepository,
	aggregator *aggregateService.Service,
	hub *sse.Hub,
	exporter *export.Client,
	opts ...Option,
) *ServiceImpl {
	s := &ServiceImpl{
		EmployeeRepository: employeeRepo,
		CustomerRepository: customerRepo,
		sessions:           sessions,
		workLog:            workLog,
		aggregator:         aggregator,
		hub:                hub,
		exporter:           exporter,
		clock:              quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandleConfirmedValue implements tracking.Service.
func (s *ServiceImpl) HandleConfirmedValue(ctx context.Context, deviceKey, value string, timestampMs int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, err := s.EmployeeRepository.GetByDeviceKey(ctx, deviceKey)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			slog.Warn("Rejecting signal for unmapped device", "device_key", deviceKey, "value", value)
			return tracking.ErrUnknownDevice
		}
		return fmt.Errorf("failed to resolve employee for %s: %w", deviceKey, err)
	}

	current, err := s.sessions.Get(ctx, deviceKey)
	if err != nil {
		return fmt.Errorf("failed to read session for %s: %w", deviceKey, err)
	}

	switch {
	case current == nil && value == tracking.Sentinel:
		// Idle device left no geofence: nothing to do.
		return nil

	case current == nil:
		return s.openLocked(ctx, emp, deviceKey, value, timestampMs)

	case current.CustomerKey == value:
		// Re-affirmation of the running session; start time is untouched.
		return nil

	case value == tracking.Sentinel:
		return s.closeLocked(ctx, emp, *current, timestampMs)

	default:
		// Switch: the old session ends exactly where the new one starts.
		closeErr := s.closeLocked(ctx, emp, *current, timestampMs)
		if err := s.openLocked(ctx, emp, deviceKey, value, timestampMs); err != nil {
			return err
		}
		if closeErr != nil {
			return closeErr
		}
		s.hub.Publish(emp.AggregateKey(), sse.Event{
			EmployeeKey: emp.AggregateKey(),
			Event:       sse.EventSessionSwitched,
			Data: map[string]interface{}{
				"device_key": deviceKey,
				"customer":   value,
				"at":         tracking.FormatMillis(timestampMs),
			},
		})
		return nil
	}
}

func (s *ServiceImpl) openLocked(ctx context.Context, emp employee.Employee, deviceKey, customerKey string, timestampMs int64) error {
	session := tracking.Session{
		DeviceKey:   deviceKey,
		CustomerKey: customerKey,
		StartMillis: timestampMs,
	}
	if err := s.sessions.Set(ctx, session); err != nil {
		return fmt.Errorf("failed to store session for %s: %w", deviceKey, err)
	}

	slog.Info("Session opened",
		"employee", emp.FullName(),
		"customer", customerKey,
		"start", tracking.FormatMillis(timestampMs))

	s.hub.Publish(emp.AggregateKey(), sse.Event{
		EmployeeKey: emp.AggregateKey(),
		Event:       sse.EventSessionOpened,
		Data: map[string]interface{}{
			"device_key": deviceKey,
			"customer":   customerKey,
			"start":      tracking.FormatMillis(timestampMs),
		},
	})
	s.exporter.NotifyAsync(export.BoundaryStart, time.UnixMilli(timestampMs))

	return nil
}

// closeLocked finishes a session. The session leaves the store no matter
// what: a negative duration or a persistence failure must not wedge the
// device in a closed-but-active state.
func (s *ServiceImpl) closeLocked(ctx context.Context, emp employee.Employee, session tracking.Session, endMillis int64) error {
	if err := s.sessions.Delete(ctx, session.DeviceKey); err != nil {
		return fmt.Errorf("failed to remove session for %s: %w", session.DeviceKey, err)
	}

	if endMillis < session.StartMillis {
		slog.Error("Dropping session with negative duration",
			"device_key", session.DeviceKey,
			"start", tracking.FormatMillis(session.StartMillis),
			"end", tracking.FormatMillis(endMillis))
		return tracking.ErrNegativeDuration
	}

	cust, err := s.CustomerRepository.GetByKey(ctx, session.CustomerKey)
	if err != nil {
		if !errors.Is(err, customer.ErrCustomerNotFound) {
			return fmt.Errorf("failed to resolve customer %s: %w", session.CustomerKey, err)
		}
		cust = customer.Synthetic(session.CustomerKey)
	}

	entry := tracking.LogEntry{
		ID:              uuid.NewString(),
		Employee:        emp.FullName(),
		Customer:        cust.Name,
		Address:         cust.Address,
		HourlyRate:      cust.HourlyRate,
		StartTime:       tracking.FormatMillis(session.StartMillis),
		EndTime:         tracking.FormatMillis(endMillis),
		DurationHours:   tracking.HoursBetween(session.StartMillis, endMillis),
		WorkDescription: session.WorkDescription,
	}

	entry, err = s.workLog.Append(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to append work log entry for %s: %w", session.DeviceKey, err)
	}

	end := time.UnixMilli(endMillis).UTC()
	if err := s.aggregator.Add(ctx, emp.AggregateKey(), end, entry.DurationHours); err != nil {
		return fmt.Errorf("failed to aggregate %s: %w", emp.AggregateKey(), err)
	}

	slog.Info("Session closed",
		"employee", entry.Employee,
		"customer", entry.Customer,
		"duration_hours", entry.DurationHours)

	s.hub.Publish(emp.AggregateKey(), sse.Event{
		EmployeeKey: emp.AggregateKey(),
		Event:       sse.EventSessionClosed,
		Data:        entry,
	})
	s.exporter.NotifyAsync(export.BoundaryStop, end)

	return nil
}

// SetWorkDescription implements tracking.Service.
func (s *ServiceImpl) SetWorkDescription(ctx context.Context, deviceKey, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(ctx, deviceKey)
	if err != nil {
		return fmt.Errorf("failed to read session for %s: %w", deviceKey, err)
	}
	if session == nil {
		return tracking.ErrNoActiveSession
	}

	session.WorkDescription = description
	if err := s.sessions.Set(ctx, *session); err != nil {
		return fmt.Errorf("failed to update session for %s: %w", deviceKey, err)
	}
	return nil
}

// ActiveSessions implements tracking.Service.
func (s *ServiceImpl) ActiveSessions(ctx context.Context) ([]tracking.SessionResponse, error) {
	sessions, err := s.sessions.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	result := make([]tracking.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		name := ""
		if emp, err := s.EmployeeRepository.GetByDeviceKey(ctx, session.DeviceKey); err == nil {
			name = emp.FullName()
		}
		result = append(result, tracking.SessionResponse{
			DeviceKey:       session.DeviceKey,
			Employee:        name,
			CustomerKey:     session.CustomerKey,
			StartTime:       tracking.FormatMillis(session.StartMillis),
			WorkDescription: session.WorkDescription,
		})
	}
	return result, nil
}

// WorkLog implements tracking.Service.
func (s *ServiceImpl) WorkLog(ctx context.Context, limit int) ([]tracking.LogEntry, error) {
	return s.workLog.List(ctx, limit)
}

// ForceCloseStale implements tracking.Service. Sessions older than maxAge
// are closed at the current wall time.
func (s *ServiceImpl) ForceCloseStale(ctx context.Context, maxAge time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.sessions.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list sessions: %w", err)
	}

	now := s.clock.Now()
	closed := 0
	for _, session := range sessions {
		if now.Sub(session.Start()) <= maxAge {
			continue
		}
		emp, err := s.EmployeeRepository.GetByDeviceKey(ctx, session.DeviceKey)
		if err != nil {
			slog.Error("Skipping stale session with unresolvable employee",
				"device_key", session.DeviceKey, "error", err)
			continue
		}
		if err := s.closeLocked(ctx, emp, session, now.UnixMilli()); err != nil {
			return closed, err
		}
		closed++
	}
	return closed, nil
}

var _ tracking.Service = (*ServiceImpl)(nil)
