// pkg/api/reports_v1.go
package api

// Stable JSON schemas for calculator reports. Keep fields, names, and
// types stable. Add new fields only with ",omitempty".

// GearEntryV1 is one (front, rear) cog combination and its derived
// quantities. Only the columns the caller asked for are populated.
type GearEntryV1 struct {
	Front       int      `json:"front"`
	Rear        int      `json:"rear"`
	GearRatio   float64  `json:"gear_ratio"`
	GainRatio   *float64 `json:"gain_ratio,omitempty"`
	SpeedKPH    *float64 `json:"speed_kph,omitempty"`
	CadenceHz   *float64 `json:"cadence_hz,omitempty"`
	SkidPatches *int     `json:"skid_patches,omitempty"`
}

// SteeringV1 carries the trail triple, in mm.
type SteeringV1 struct {
	Trail           float64 `json:"trail"`
	MechanicalTrail float64 `json:"mechanical_trail"`
	WheelFlop       float64 `json:"wheel_flop"`
}

// GearingReportV1 is the bikecalc report.
type GearingReportV1 struct {
	Name             string        `json:"name,omitempty"`
	CrankLength      float64       `json:"crank_length,omitempty"`
	WheelDiameter    float64       `json:"wheel_diameter,omitempty"`
	DerailerCapacity *int          `json:"derailer_capacity,omitempty"`
	Entries          []GearEntryV1 `json:"entries,omitempty"`
	Steering         *SteeringV1   `json:"steering,omitempty"`
}

// SpokeReportV1 is the spokecalc report. Lengths in mm.
type SpokeReportV1 struct {
	Name           string   `json:"name,omitempty"`
	Left           *float64 `json:"left,omitempty"`
	Right          *float64 `json:"right,omitempty"`
	ApproxDiameter *float64 `json:"approx_diameter,omitempty"`
}
