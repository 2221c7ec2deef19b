package bh1750

import "math"

const (
	// countsPerLux is the typical measurement-result to lux ratio
	countsPerLux = 1.2

	// DomeFactor is the attenuation of the translucent diffuser dome
	DomeFactor = 2.75
)

// Lux converts a raw count to lux. With dome set the result is scaled by
// DomeFactor. Each step rounds half to even, so the dome correction
// applies to an already rounded value.
func Lux(raw uint16, dome bool) int {
	lux := math.RoundToEven(float64(raw) / countsPerLux)
	if dome {
		lux = math.RoundToEven(lux * DomeFactor)
	}
	return int(lux)
}
