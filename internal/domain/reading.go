package domain

import (
	"time"
)

// Light category thresholds in lux
const (
	lowLightBelow  = 200
	highLightAbove = 2500
)

// Sample is one measurement as produced by a light sensor
type Sample struct {
	Raw uint16  // sensor count, 0 when the sensor does not expose one
	Lux float64 // calibrated illuminance
}

// LightReading represents a single stored light measurement
type LightReading struct {
	ID        int64
	Lux       float64
	Raw       uint16
	Timestamp time.Time
}

// NewLightReading creates a new reading with validation
func NewLightReading(lux float64) (*LightReading, error) {
	if lux < 0 {
		return nil, ErrInvalidLux
	}

	return &LightReading{
		Lux:       lux,
		Timestamp: time.Now(),
	}, nil
}

// NewLightReadingFromSample creates a reading that keeps the sensor count
func NewLightReadingFromSample(s Sample) (*LightReading, error) {
	r, err := NewLightReading(s.Lux)
	if err != nil {
		return nil, err
	}
	r.Raw = s.Raw
	return r, nil
}

// IsLowLight returns true below 200 lux
func (r *LightReading) IsLowLight() bool {
	return r.Lux < lowLightBelow
}

// IsMediumLight returns true for 200-2500 lux
func (r *LightReading) IsMediumLight() bool {
	return r.Lux >= lowLightBelow && r.Lux < highLightAbove
}

// IsHighLight returns true from 2500 lux
func (r *LightReading) IsHighLight() bool {
	return r.Lux >= highLightAbove
}

// LightCategory returns human-readable category
func (r *LightReading) LightCategory() string {
	switch {
	case r.IsLowLight():
		return "Low Light"
	case r.IsMediumLight():
		return "Medium Light"
	}
	return "High Light"
}
