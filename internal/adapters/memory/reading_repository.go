// Package memory keeps light readings in process memory. Readings are lost on restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/quentinrf/bh1750/internal/domain"
)

// ReadingRepository implements domain.ReadingRepository.
// It stores values and hands out copies, so callers never share state with the store.
type ReadingRepository struct {
	mu       sync.RWMutex
	readings map[int64]domain.LightReading
	nextID   int64
}

func NewReadingRepository() *ReadingRepository {
	return &ReadingRepository{
		readings: make(map[int64]domain.LightReading),
		nextID:   1,
	}
}

// SaveReading stores a copy of reading. A zero ID gets the next free one;
// an explicit ID replaces any reading stored under it.
func (r *ReadingRepository) SaveReading(ctx context.Context, reading *domain.LightReading) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if reading.ID == 0 {
		reading.ID = r.nextID
	}
	if reading.ID >= r.nextID {
		r.nextID = reading.ID + 1
	}

	r.readings[reading.ID] = *reading
	return nil
}

func (r *ReadingRepository) GetReading(ctx context.Context, id int64) (*domain.LightReading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reading, ok := r.readings[id]
	if !ok {
		return nil, domain.ErrReadingNotFound
	}
	return &reading, nil
}

// GetReadingsInRange returns copies of the readings in [start, end), oldest first
func (r *ReadingRepository) GetReadingsInRange(ctx context.Context, start, end time.Time) ([]*domain.LightReading, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidRange
	}

	r.mu.RLock()
	results := make([]*domain.LightReading, 0, len(r.readings))
	for _, reading := range r.readings {
		if !reading.Timestamp.Before(start) && reading.Timestamp.Before(end) {
			results = append(results, &reading)
		}
	}
	r.mu.RUnlock()

	sort.Slice(results, func(i, j int) bool {
		if results[i].Timestamp.Equal(results[j].Timestamp) {
			return results[i].ID < results[j].ID
		}
		return results[i].Timestamp.Before(results[j].Timestamp)
	})
	return results, nil
}

// GetLatestReading returns a copy of the newest reading. Ties go to the higher ID.
func (r *ReadingRepository) GetLatestReading(ctx context.Context) (*domain.LightReading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *domain.LightReading
	for _, reading := range r.readings {
		if latest == nil || reading.Timestamp.After(latest.Timestamp) ||
			(reading.Timestamp.Equal(latest.Timestamp) && reading.ID > latest.ID) {
			latest = &reading
		}
	}

	if latest == nil {
		return nil, domain.ErrReadingNotFound
	}
	return latest, nil
}

// DeleteOldReadings removes readings older than olderThan
func (r *ReadingRepository) DeleteOldReadings(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, reading := range r.readings {
		if reading.Timestamp.Before(cutoff) {
			delete(r.readings, id)
		}
	}
	return nil
}
