package postgresql

import (
	"context"
	"fmt"

	"github.com/zano-5702/worktime-backend-go/internal/domain/tracking"
	"github.com/zano-5702/worktime-backend-go/internal/pkg/database"
)

type workLogRepository struct {
	db *database.DB
}

func NewWorkLogRepository(db *database.DB) tracking.WorkLogRepository {
	return &workLogRepository{db: db}
}

// Append implements tracking.WorkLogRepository. Entries are insert-only;
// nothing in the schema updates or deletes them.
func (r *workLogRepository) Append(ctx context.Context, entry tracking.LogEntry) (tracking.LogEntry, error) {
	query := `
		INSERT INTO work_log_entries (
			id, employee, customer, address, hourly_rate,
			start_time, end_time, duration_hours, work_description
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		entry.ID,
		entry.Employee,
		entry.Customer,
		entry.Address,
		entry.HourlyRate,
		entry.StartTime,
		entry.EndTime,
		entry.DurationHours,
		entry.WorkDescription,
	).Scan(&entry.CreatedAt)

	if err != nil {
		return tracking.LogEntry{}, fmt.Errorf("failed to append work log entry: %w", err)
	}

	return entry, nil
}

// List implements tracking.WorkLogRepository.
func (r *workLogRepository) List(ctx context.Context, limit int) ([]tracking.LogEntry, error) {
	query := `
		SELECT id, employee, customer, address, hourly_rate,
			   start_time, end_time, duration_hours, work_description, created_at
		FROM work_log_entries
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list work log entries: %w", err)
	}
	defer rows.Close()

	var entries []tracking.LogEntry
	for rows.Next() {
		var e tracking.LogEntry
		if err := rows.Scan(
			&e.ID, &e.Employee, &e.Customer, &e.Address, &e.HourlyRate,
			&e.StartTime, &e.EndTime, &e.DurationHours, &e.WorkDescription, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work log entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
