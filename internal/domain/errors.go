package domain

import "errors"

// Lux and range validation
var (
	ErrInvalidLux   = errors.New("lux value cannot be negative")
	ErrInvalidRange = errors.New("end time is before start time")
)

// ErrReadingNotFound is returned by repositories for a missing ID or an empty store
var ErrReadingNotFound = errors.New("reading not found")

// ErrSensorUnavailable wraps every BH1750 bus or decode failure seen by the
// sensor adapter. The driver error stays reachable with errors.As.
var ErrSensorUnavailable = errors.New("sensor unavailable")
