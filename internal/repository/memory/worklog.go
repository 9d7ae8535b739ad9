package memory

import (
	"context"
	"sync"
	"time"

	"github.com/zano-5702/worktime-backend-go/internal/domain/tracking"
)

type workLogRepository struct {
	mu      sync.RWMutex
	entries []tracking.LogEntry
}

func NewWorkLogRepository() tracking.WorkLogRepository {
	return &workLogRepository{}
}

// Append implements tracking.WorkLogRepository.
func (r *workLogRepository) Append(_ context.Context, entry tracking.LogEntry) (tracking.LogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	r.entries = append(r.entries, entry)
	return entry, nil
}

// List implements tracking.WorkLogRepository.
func (r *workLogRepository) List(_ context.Context, limit int) ([]tracking.LogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]tracking.LogEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, r.entries[i])
	}
	return result, nil
}
