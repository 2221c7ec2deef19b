package ports

import (
	"context"

	"github.com/quentinrf/bh1750/internal/domain"
)

// LightSensor defines how to read light levels.
// Implemented by the bh1750sensor adapter.
type LightSensor interface {
	// ReadLight runs one measurement and returns it.
	// Blocks until the sensor has a result or ctx is done.
	ReadLight(ctx context.Context) (domain.Sample, error)

	// Close releases any resources
	Close() error
}
