package memory

import (
	"context"
	"sync"

	"github.com/zano-5702/worktime-backend-go/internal/domain/tracking"
)

type deviceStateRepository struct {
	mu     sync.RWMutex
	states map[string]tracking.DeviceState
}

func NewDeviceStateRepository() tracking.DeviceStateRepository {
	return &deviceStateRepository{
		states: make(map[string]tracking.DeviceState),
	}
}

// SetRawValue implements tracking.DeviceStateRepository.
func (r *deviceStateRepository) SetRawValue(_ context.Context, deviceKey, rawValue string, observedAt int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[deviceKey] = tracking.DeviceState{
		DeviceKey:  deviceKey,
		RawValue:   rawValue,
		ObservedAt: observedAt,
	}
	return nil
}

// GetRawValue implements tracking.DeviceStateRepository.
func (r *deviceStateRepository) GetRawValue(_ context.Context, deviceKey string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.states[deviceKey].RawValue, nil
}
