// Package aggregate folds completed session durations into rolling
// day/week/month/year counters per employee.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zano-5702/worktime-backend-go/internal/domain/tracking"
)

// Period kinds of aggregate buckets.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// Periods lists all bucket period kinds.
var Periods = []string{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear}

// ErrNegativeHours rejects an addition that would decrease a bucket. No
// decrement operation exists on aggregates.
var ErrNegativeHours = errors.New("aggregated hours must not be negative")

// PeriodKeys are the four calendar labels a timestamp falls into. All labels
// are computed in UTC so bucket boundaries are consistent system wide.
type PeriodKeys struct {
	Day   string
	Week  string
	Month string
	Year  string
}

// KeysFor computes the period labels for a point in time. The week label
// uses the ISO-8601 week number and week-year, so timestamps in year
// boundary weeks land in the week-year owning the Thursday, not the
// calendar year.
func KeysFor(end time.Time) PeriodKeys {
	end = end.UTC()
	isoYear, isoWeek := end.ISOWeek()
	return PeriodKeys{
		Day:   end.Format("2006-01-02"),
		Week:  fmt.Sprintf("%d-W%02d", isoYear, isoWeek),
		Month: end.Format("2006-01"),
		Year:  end.Format("2006"),
	}
}

// BucketKey builds the canonical "<employeeKey>.<period>.<label>" identifier.
func BucketKey(employeeKey, period, label string) string {
	return employeeKey + "." + period + "." + label
}

type Service struct {
	buckets tracking.AggregateRepository
}

func NewService(buckets tracking.AggregateRepository) *Service {
	return &Service{buckets: buckets}
}

// Add accumulates hours into the four buckets endTime falls into. Buckets
// only ever grow; a failed write is propagated and may leave earlier buckets
// of the same call already updated.
func (s *Service) Add(ctx context.Context, employeeKey string, endTime time.Time, hours float64) error {
	if hours < 0 {
		return ErrNegativeHours
	}

	keys := KeysFor(endTime)
	for _, bucket := range []struct {
		period string
		label  string
	}{
		{PeriodDay, keys.Day},
		{PeriodWeek, keys.Week},
		{PeriodMonth, keys.Month},
		{PeriodYear, keys.Year},
	} {
		key := BucketKey(employeeKey, bucket.period, bucket.label)
		if _, err := s.buckets.Add(ctx, key, hours); err != nil {
			return fmt.Errorf("failed to update %s bucket %s: %w", bucket.period, key, err)
		}
	}

	return nil
}

// Buckets returns all bucket totals of an employee, optionally narrowed to
// one period kind.
func (s *Service) Buckets(ctx context.Context, employeeKey, period string) (map[string]float64, error) {
	prefix := employeeKey + "."
	if period != "" {
		prefix += period + "."
	}
	totals, err := s.buckets.ListByPrefix(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets for %s: %w", employeeKey, err)
	}
	return totals, nil
}
