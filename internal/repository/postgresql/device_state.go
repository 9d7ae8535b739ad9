package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zano-5702/worktime-backend-go/internal/domain/tracking"
	"github.com/zano-5702/worktime-backend-go/internal/pkg/database"
)

type deviceStateRepository struct {
	db *database.DB
}

func NewDeviceStateRepository(db *database.DB) tracking.DeviceStateRepository {
	return &deviceStateRepository{db: db}
}

// SetRawValue implements tracking.DeviceStateRepository.
func (r *deviceStateRepository) SetRawValue(ctx context.Context, deviceKey, rawValue string, observedAt int64) error {
	query := `
		INSERT INTO device_states (device_key, raw_value, observed_at, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (device_key) DO UPDATE SET
			raw_value = EXCLUDED.raw_value,
			observed_at = EXCLUDED.observed_at,
			updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, deviceKey, rawValue, observedAt); err != nil {
		return fmt.Errorf("failed to store device state for %s: %w", deviceKey, err)
	}
	return nil
}

// GetRawValue implements tracking.DeviceStateRepository. A device that never
// reported reads as the empty string.
func (r *deviceStateRepository) GetRawValue(ctx context.Context, deviceKey string) (string, error) {
	var raw string
	err := r.db.QueryRow(ctx, `SELECT raw_value FROM device_states WHERE device_key = $1`, deviceKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read device state for %s: %w", deviceKey, err)
	}
	return raw, nil
}
