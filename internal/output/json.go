// internal/output/json.go
package output

import (
	"io"

	"bikecalc/internal/jsonutil"
	"bikecalc/pkg/api"
)

// WriteGearingJSON writes the report as pretty JSON against the v1
// schema, with display rounding applied to a copy.
func WriteGearingJSON(w io.Writer, r api.GearingReportV1, digits int) error {
	if digits >= 0 {
		entries := make([]api.GearEntryV1, len(r.Entries))
		for i, e := range r.Entries {
			e.GearRatio = RoundTo(e.GearRatio, digits)
			e.GainRatio = roundPtr(e.GainRatio, digits)
			e.SpeedKPH = roundPtr(e.SpeedKPH, digits)
			e.CadenceHz = roundPtr(e.CadenceHz, digits)
			entries[i] = e
		}
		r.Entries = entries
		if r.Steering != nil {
			s := api.SteeringV1{
				Trail:           RoundTo(r.Steering.Trail, digits),
				MechanicalTrail: RoundTo(r.Steering.MechanicalTrail, digits),
				WheelFlop:       RoundTo(r.Steering.WheelFlop, digits),
			}
			r.Steering = &s
		}
	}
	return jsonutil.EncodePretty(w, r)
}

// WriteSpokeJSON writes the wheel report as pretty JSON.
func WriteSpokeJSON(w io.Writer, r api.SpokeReportV1, digits int) error {
	if digits >= 0 {
		r.Left = roundPtr(r.Left, digits)
		r.Right = roundPtr(r.Right, digits)
		r.ApproxDiameter = roundPtr(r.ApproxDiameter, digits)
	}
	return jsonutil.EncodePretty(w, r)
}
