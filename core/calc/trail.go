// core/calc/trail.go
package calc

import "math"

// Steering holds the three derived steering-geometry quantities, all in mm.
type Steering struct {
	Trail           float64
	MechanicalTrail float64
	WheelFlop       float64
}

// Trail computes trail, mechanical trail, and wheel flop from the head
// tube angle (degrees), fork rake (mm, may be negative), and the front
// wheel's inflated diameter (mm).
//
// Trail is the horizontal distance between the front wheel's contact
// point and where the steering axis meets the ground; mechanical trail
// is that distance measured perpendicular to the steering axis.
func Trail(headTubeAngle, forkRake, wheelDiameter float64) (Steering, error) {
	if wheelDiameter <= 0 {
		return Steering{}, invalidf("wheel diameter must be positive, got %g", wheelDiameter)
	}
	if math.Mod(headTubeAngle, 180) == 0 {
		return Steering{}, domainf("head_tube_angle %g° has no ground intersection", headTubeAngle)
	}
	a := headTubeAngle * math.Pi / 180
	wheelRadius := wheelDiameter / 2
	trail := (wheelRadius*math.Cos(a) - forkRake) / math.Sin(a)
	return Steering{
		Trail:           trail,
		MechanicalTrail: trail * math.Sin(a),
		WheelFlop:       trail * math.Sin(a) * math.Cos(a),
	}, nil
}
