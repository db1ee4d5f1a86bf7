// core/calc/diameter.go
package calc

// ApproxWheelDiameter estimates the inflated wheel diameter as the bead
// seat diameter plus twice the tire width. It ignores casing compression,
// so it approximates — and must not be confused with — a measured
// diameter.
func ApproxWheelDiameter(bsd, tireWidth float64) float64 {
	return bsd + 2*tireWidth
}
