// core/calc/spoke.go
package calc

import "math"

// Side identifies one flange of a hub. Left is the non-drive side.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Sides lists both sides in display order.
var Sides = []Side{SideLeft, SideRight}

// SpokeGeometry carries the hub, rim, and lacing measurements needed to
// compute spoke lengths. Lengths are in mm. Offset is the rim's lateral
// offset for off-center rims; it shifts the right flange distance by
// +Offset and the left by -Offset.
type SpokeGeometry struct {
	CenterToFlange    map[Side]float64
	FlangeDiameter    map[Side]float64
	SpokeHoleDiameter float64
	ERD               float64
	Offset            float64
	NumSpokes         int
	NumCrosses        int
}

// SpokeLengths returns the spoke length for each side of the wheel.
//
// Each spoke spans the triangle between its hub flange hole and its rim
// hole. With the flange circle (radius r1) rotated ahead of the rim hole
// by the cross pattern's pitch angle and pushed out axially by the
// flange distance d, the law of cosines gives the chord, less the spoke
// hole counterbore radius.
func SpokeLengths(g SpokeGeometry) (map[Side]float64, error) {
	if g.NumSpokes <= 0 || g.NumSpokes%2 != 0 {
		return nil, invalidf("num_spokes must be a positive even number, got %d", g.NumSpokes)
	}
	if g.NumCrosses < 0 {
		return nil, invalidf("num_crosses must be non-negative, got %d", g.NumCrosses)
	}
	if g.ERD <= 0 {
		return nil, invalidf("erd must be positive, got %g", g.ERD)
	}
	for _, k := range Sides {
		if _, ok := g.CenterToFlange[k]; !ok {
			return nil, invalidf("center_to_flange missing %q entry", k)
		}
		if _, ok := g.FlangeDiameter[k]; !ok {
			return nil, invalidf("flange_diameter missing %q entry", k)
		}
	}

	// Each side carries half the spokes, so the pitch swept by one
	// spoke's crosses is num_crosses spoke intervals on one flange.
	phi := 2 * math.Pi * float64(g.NumCrosses) / (float64(g.NumSpokes) / 2)

	out := make(map[Side]float64, 2)
	for _, k := range Sides {
		d := g.CenterToFlange[k]
		if k == SideRight {
			d += g.Offset
		} else {
			d -= g.Offset
		}
		r1 := g.FlangeDiameter[k] / 2
		r2 := g.ERD / 2
		r3 := g.SpokeHoleDiameter / 2
		radicand := d*d + r1*r1 + r2*r2 - 2*r1*r2*math.Cos(phi)
		if radicand < 0 {
			return nil, domainf("side %q geometry is inconsistent (radicand %g)", k, radicand)
		}
		out[k] = math.Sqrt(radicand) - r3
	}
	return out, nil
}
