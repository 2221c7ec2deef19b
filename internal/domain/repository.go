package domain

import (
	"context"
	"time"
)

// ReadingRepository stores and retrieves light readings.
// Implemented by the memory, sqlite and mysql adapters.
type ReadingRepository interface {
	// SaveReading persists a reading and assigns its ID
	SaveReading(ctx context.Context, reading *LightReading) error

	// GetReading retrieves a specific reading by ID
	GetReading(ctx context.Context, id int64) (*LightReading, error)

	// GetReadingsInRange retrieves all readings within time range.
	// Uses a half-open interval: inclusive start, exclusive end [start, end).
	// Returns ErrInvalidRange when end is before start.
	GetReadingsInRange(ctx context.Context, start, end time.Time) ([]*LightReading, error)

	// GetLatestReading retrieves the most recent reading
	GetLatestReading(ctx context.Context) (*LightReading, error)

	// DeleteOldReadings removes readings older than specified duration
	DeleteOldReadings(ctx context.Context, olderThan time.Duration) error
}
