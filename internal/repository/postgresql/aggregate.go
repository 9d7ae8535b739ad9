package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zano-5702/worktime-backend-go/internal/domain/tracking"
	"github.com/zano-5702/worktime-backend-go/internal/pkg/database"
)

type aggregateRepository struct {
	db *database.DB
}

func NewAggregateRepository(db *database.DB) tracking.AggregateRepository {
	return &aggregateRepository{db: db}
}

// Add implements tracking.AggregateRepository. The upsert arithmetic runs
// inside the database, so concurrent closes into the same bucket never lose
// an update.
func (r *aggregateRepository) Add(ctx context.Context, bucketKey string, hours float64) (float64, error) {
	query := `
		INSERT INTO aggregate_buckets (bucket_key, hours, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (bucket_key) DO UPDATE SET
			hours = aggregate_buckets.hours + EXCLUDED.hours,
			updated_at = NOW()
		RETURNING hours
	`

	var total float64
	if err := r.db.QueryRow(ctx, query, bucketKey, hours).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to add to bucket %s: %w", bucketKey, err)
	}

	return total, nil
}

// Get implements tracking.AggregateRepository.
func (r *aggregateRepository) Get(ctx context.Context, bucketKey string) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `SELECT hours FROM aggregate_buckets WHERE bucket_key = $1`, bucketKey).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get bucket %s: %w", bucketKey, err)
	}
	return total, nil
}

// ListByPrefix implements tracking.AggregateRepository.
func (r *aggregateRepository) ListByPrefix(ctx context.Context, prefix string) (map[string]float64, error) {
	query := `
		SELECT bucket_key, hours
		FROM aggregate_buckets
		WHERE bucket_key LIKE $1 || '%'
		ORDER BY bucket_key
	`

	rows, err := r.db.Query(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets with prefix %s: %w", prefix, err)
	}
	defer rows.Close()

	result := make(map[string]float64)
	for rows.Next() {
		var key string
		var hours float64
		if err := rows.Scan(&key, &hours); err != nil {
			return nil, fmt.Errorf("failed to scan bucket: %w", err)
		}
		result[key] = hours
	}

	return result, rows.Err()
}
