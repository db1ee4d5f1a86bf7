// internal/output/round.go
package output

import "math"

// NoRounding is the digits value meaning "emit the exact float".
const NoRounding = -1

// RoundTo rounds v to the given number of decimal digits. Rounding is a
// display concern: it happens exactly once, here, on final values.
func RoundTo(v float64, digits int) float64 {
	if digits < 0 {
		return v
	}
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}

func roundPtr(v *float64, digits int) *float64 {
	if v == nil {
		return nil
	}
	r := RoundTo(*v, digits)
	return &r
}
