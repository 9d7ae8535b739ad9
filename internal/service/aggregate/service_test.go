package aggregate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zano-5702/worktime-backend-go/internal/repository/memory"
)

func TestKeysFor(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		end  time.Time
		want PeriodKeys
	}{
		{
			name: "mid february",
			end:  time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC),
			want: PeriodKeys{Day: "2025-02-23", Week: "2025-W08", Month: "2025-02", Year: "2025"},
		},
		{
			name: "new year in previous iso week-year",
			end:  time.Date(2021, 1, 1, 10, 0, 0, 0, time.UTC),
			want: PeriodKeys{Day: "2021-01-01", Week: "2020-W53", Month: "2021-01", Year: "2021"},
		},
		{
			name: "december in next iso week-year",
			end:  time.Date(2024, 12, 30, 10, 0, 0, 0, time.UTC),
			want: PeriodKeys{Day: "2024-12-30", Week: "2025-W01", Month: "2024-12", Year: "2024"},
		},
		{
			name: "single digit week zero padded",
			end:  time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC),
			want: PeriodKeys{Day: "2025-01-08", Week: "2025-W02", Month: "2025-01", Year: "2025"},
		},
		{
			name: "non utc input converted",
			end:  time.Date(2025, 2, 24, 0, 30, 0, 0, time.FixedZone("CET", 3600)),
			want: PeriodKeys{Day: "2025-02-23", Week: "2025-W08", Month: "2025-02", Year: "2025"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, KeysFor(c.end))
		})
	}
}

func TestBucketKey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Max_Mustermann.day.2025-02-23", BucketKey("Max_Mustermann", PeriodDay, "2025-02-23"))
}

func TestService_Add_UpdatesAllPeriods(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	buckets := memory.NewAggregateRepository()
	svc := NewService(buckets)

	end := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	require.NoError(t, svc.Add(ctx, "Max_Mustermann", end, 4.0))

	for _, bucketKey := range []string{
		"Max_Mustermann.day.2025-02-23",
		"Max_Mustermann.week.2025-W08",
		"Max_Mustermann.month.2025-02",
		"Max_Mustermann.year.2025",
	} {
		hours, err := buckets.Get(ctx, bucketKey)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, hours, 1e-6, "bucket %s", bucketKey)
	}
}

func TestService_Add_Accumulates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	buckets := memory.NewAggregateRepository()
	svc := NewService(buckets)

	end := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	require.NoError(t, svc.Add(ctx, "Max_Mustermann", end, 4.0))
	require.NoError(t, svc.Add(ctx, "Max_Mustermann", end.Add(3*time.Hour), 2.5))

	hours, err := buckets.Get(ctx, "Max_Mustermann.day.2025-02-23")
	require.NoError(t, err)
	assert.InDelta(t, 6.5, hours, 1e-6)

	// A close on the next day lands in a fresh day bucket but the same
	// week, month and year buckets.
	require.NoError(t, svc.Add(ctx, "Max_Mustermann", end.AddDate(0, 0, 1), 1.0))

	hours, err = buckets.Get(ctx, "Max_Mustermann.day.2025-02-24")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, hours, 1e-6)

	hours, err = buckets.Get(ctx, "Max_Mustermann.month.2025-02")
	require.NoError(t, err)
	assert.InDelta(t, 7.5, hours, 1e-6)
}

func TestService_Add_RejectsNegativeHours(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	buckets := memory.NewAggregateRepository()
	svc := NewService(buckets)

	err := svc.Add(ctx, "Max_Mustermann", time.Now(), -0.5)
	assert.ErrorIs(t, err, ErrNegativeHours)

	totals, err := buckets.ListByPrefix(ctx, "Max_Mustermann.")
	require.NoError(t, err)
	assert.Empty(t, totals)
}

func TestService_Buckets_FiltersByPeriod(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	buckets := memory.NewAggregateRepository()
	svc := NewService(buckets)

	end := time.Date(2025, 2, 23, 12, 0, 0, 0, time.UTC)
	require.NoError(t, svc.Add(ctx, "Max_Mustermann", end, 4.0))
	require.NoError(t, svc.Add(ctx, "Erika_Musterfrau", end, 3.0))

	all, err := svc.Buckets(ctx, "Max_Mustermann", "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	weeks, err := svc.Buckets(ctx, "Max_Mustermann", PeriodWeek)
	require.NoError(t, err)
	require.Len(t, weeks, 1)
	assert.InDelta(t, 4.0, weeks["Max_Mustermann.week.2025-W08"], 1e-6)
}
