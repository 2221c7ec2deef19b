// Package bh1750sensor implements ports.LightSensor with a BH1750.
package bh1750sensor

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quentinrf/bh1750/internal/domain"
	"github.com/quentinrf/bh1750/pkg/bh1750"
)

// Sensor runs trigger, wait, read cycles on one device. While a cycle waits
// out the settle time the goroutine is parked, so other work keeps running.
type Sensor struct {
	mu     sync.Mutex // one cycle at a time per device
	dev    *bh1750.Sensor
	closer io.Closer
}

// New wraps dev. closer, if not nil, is closed by Close and is normally the bus.
func New(dev *bh1750.Sensor, closer io.Closer) *Sensor {
	return &Sensor{dev: dev, closer: closer}
}

// ReadLight triggers a measurement, waits bh1750.SettleTime and reads it.
// If ctx ends during the wait the cycle is abandoned; the device powers
// down on its own.
func (s *Sensor) ReadLight(ctx context.Context) (domain.Sample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.dev.Trigger(); err != nil {
		return domain.Sample{}, fmt.Errorf("%w: %w", domain.ErrSensorUnavailable, err)
	}

	timer := time.NewTimer(bh1750.SettleTime)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		log.Debug().Uint16("addr", s.dev.Addr()).Msg("measurement abandoned")
		return domain.Sample{}, ctx.Err()
	case <-timer.C:
	}

	raw, err := s.dev.ReadRaw()
	if err != nil {
		return domain.Sample{}, fmt.Errorf("%w: %w", domain.ErrSensorUnavailable, err)
	}

	return domain.Sample{
		Raw: raw,
		Lux: float64(s.dev.Convert(raw)),
	}, nil
}

// Close releases the bus if one was handed over
func (s *Sensor) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
