// core/calc/cadence.go
package calc

import "math"

// Unit convention: cadence is in hertz (crank revolutions per second),
// speed in kilometers per hour, lengths in millimeters. kphPerMMPerSec
// converts mm/s to km/h.
const kphPerMMPerSec = 3600.0 / 1e6

// CadenceToSpeeds returns the road speed (km/h) reached at the given
// cadence (rev/s) for every cog combination. Gain ratios are recomputed
// internally from the raw measurements so the result is exact with
// respect to SpeedToCadences.
func CadenceToSpeeds(cadence float64, frontCogs, rearCogs []int, crankLength, wheelDiameter float64) (map[Pair]float64, error) {
	gains, err := GainRatios(frontCogs, rearCogs, crankLength, wheelDiameter)
	if err != nil {
		return nil, err
	}
	out := make(map[Pair]float64, len(gains))
	for p, g := range gains {
		out[p] = 2 * math.Pi * crankLength * g * cadence * kphPerMMPerSec
	}
	return out, nil
}

// SpeedToCadences returns the cadence (rev/s) needed to hold the given
// speed (km/h) for every cog combination. Exact inverse of
// CadenceToSpeeds.
func SpeedToCadences(speed float64, frontCogs, rearCogs []int, crankLength, wheelDiameter float64) (map[Pair]float64, error) {
	gains, err := GainRatios(frontCogs, rearCogs, crankLength, wheelDiameter)
	if err != nil {
		return nil, err
	}
	out := make(map[Pair]float64, len(gains))
	for p, g := range gains {
		out[p] = speed / (2 * math.Pi * crankLength * g * kphPerMMPerSec)
	}
	return out, nil
}
