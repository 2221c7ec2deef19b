package ports

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quentinrf/bh1750/internal/domain"
)

// MinRecordInterval keeps the sensor from being polled often enough to self-heat
const MinRecordInterval = 5 * time.Second

// Recorder handles periodic sensor reading and storage
type Recorder struct {
	sensor    LightSensor
	repo      domain.ReadingRepository
	interval  time.Duration
	retention time.Duration
}

// NewRecorder creates a new background recorder. Intervals below
// MinRecordInterval are raised to it; a zero retention keeps everything.
func NewRecorder(sensor LightSensor, repo domain.ReadingRepository, interval, retention time.Duration) *Recorder {
	if interval < MinRecordInterval {
		interval = MinRecordInterval
	}
	return &Recorder{
		sensor:    sensor,
		repo:      repo,
		interval:  interval,
		retention: retention,
	}
}

// Start begins periodic sensor reading
// This runs in a goroutine until context is cancelled
func (r *Recorder) Start(ctx context.Context) {
	log.Info().
		Dur("interval", r.interval).
		Dur("retention", r.retention).
		Msg("starting background recorder")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	cleanupTicker := time.NewTicker(24 * time.Hour)
	defer cleanupTicker.Stop()

	// Record immediately on start
	r.RecordOnce(ctx)

	for {
		select {
		case <-ticker.C:
			r.RecordOnce(ctx)

		case <-cleanupTicker.C:
			r.prune(ctx)

		case <-ctx.Done():
			log.Info().Msg("stopping background recorder")
			return
		}
	}
}

// RecordOnce reads the sensor and saves the result
func (r *Recorder) RecordOnce(ctx context.Context) (*domain.LightReading, error) {
	log.Debug().Msg("reading sensor")

	sample, err := r.sensor.ReadLight(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read sensor")
		return nil, err
	}

	reading, err := domain.NewLightReadingFromSample(sample)
	if err != nil {
		log.Error().Err(err).Msg("failed to create reading")
		return nil, err
	}

	if err := r.repo.SaveReading(ctx, reading); err != nil {
		log.Error().Err(err).Msg("failed to save reading")
		return nil, err
	}

	log.Info().
		Float64("lux", reading.Lux).
		Uint16("raw", reading.Raw).
		Str("category", reading.LightCategory()).
		Msg("recorded light reading")

	return reading, nil
}

func (r *Recorder) prune(ctx context.Context) {
	if r.retention <= 0 {
		return
	}
	if err := r.repo.DeleteOldReadings(ctx, r.retention); err != nil {
		log.Error().Err(err).Msg("failed to delete old readings")
		return
	}
	log.Info().Dur("retention", r.retention).Msg("deleted old readings")
}
