package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/zano-5702/worktime-backend-go/internal/domain/tracking"
)

type aggregateRepository struct {
	mu      sync.Mutex
	buckets map[string]float64
}

func NewAggregateRepository() tracking.AggregateRepository {
	return &aggregateRepository{
		buckets: make(map[string]float64),
	}
}

// Add implements tracking.AggregateRepository. The mutex makes the
// read-modify-write atomic per bucket.
func (r *aggregateRepository) Add(_ context.Context, bucketKey string, hours float64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buckets[bucketKey] += hours
	return r.buckets[bucketKey], nil
}

// Get implements tracking.AggregateRepository.
func (r *aggregateRepository) Get(_ context.Context, bucketKey string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.buckets[bucketKey], nil
}

// ListByPrefix implements tracking.AggregateRepository.
func (r *aggregateRepository) ListByPrefix(_ context.Context, prefix string) (map[string]float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[string]float64)
	for key, hours := range r.buckets {
		if strings.HasPrefix(key, prefix) {
			result[key] = hours
		}
	}
	return result, nil
}
