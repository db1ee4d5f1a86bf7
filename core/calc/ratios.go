// core/calc/ratios.go
package calc

// GearRatios returns front/rear tooth ratios for every cog combination.
// The ratio is dimensionless and exact up to float64 division.
func GearRatios(frontCogs, rearCogs []int) (map[Pair]float64, error) {
	if err := checkBothCogs(frontCogs, rearCogs); err != nil {
		return nil, err
	}
	out := make(map[Pair]float64, len(frontCogs)*len(rearCogs))
	for _, p := range Pairs(frontCogs, rearCogs) {
		out[p] = float64(p.Front) / float64(p.Rear)
	}
	return out, nil
}

// GainRatios returns gain ratios for every cog combination: forward travel
// per unit of pedal-circle travel. wheelDiameter is the rear wheel's
// inflated diameter in mm; crankLength is in mm. Values are never rounded
// here so dependent conversions do not compound rounding error.
func GainRatios(frontCogs, rearCogs []int, crankLength, wheelDiameter float64) (map[Pair]float64, error) {
	if err := checkBothCogs(frontCogs, rearCogs); err != nil {
		return nil, err
	}
	if wheelDiameter <= 0 {
		return nil, invalidf("wheel diameter must be positive, got %g", wheelDiameter)
	}
	if crankLength <= 0 {
		return nil, domainf("crank_length %g would divide by zero", crankLength)
	}
	w := wheelDiameter / 2 / crankLength
	out := make(map[Pair]float64, len(frontCogs)*len(rearCogs))
	for _, p := range Pairs(frontCogs, rearCogs) {
		out[p] = w * float64(p.Front) / float64(p.Rear)
	}
	return out, nil
}
