// core/bike/bike.go
package bike

import (
	"sort"

	"bikecalc-core/calc"
)

// Conventions: lengths in millimeters, angles in degrees, cadence in
// revolutions per second, speed in km/h. Cog lists hold tooth counts and
// are kept sorted ascending. Wheel diameter means the diameter with the
// tire on and inflated.

// Wheel is a passive wheel measurement record. Zero fields mean
// "not measured"; each calculation validates just the fields it reads.
type Wheel struct {
	Name string

	// Rim and tire
	BSD       float64 // bead seat diameter
	ERD       float64 // effective rim diameter
	TireWidth float64
	Diameter  float64 // measured inflated diameter; never derived implicitly

	// Hub and lacing
	CenterToFlange    map[calc.Side]float64
	FlangeDiameter    map[calc.Side]float64
	SpokeHoleDiameter float64
	NumSpokes         int
	NumCrosses        int
	Offset            float64 // rim offset, positive toward the right flange
}

// Default hub drillings per the usual spoke vendor conventions.
const (
	DefaultSpokeHoleDiameter = 2.6
	DefaultNumCrosses        = 3
)

// NewWheel returns a wheel record with fresh side maps and the usual
// defaults filled in. Maps are built per call, never shared.
func NewWheel() *Wheel {
	return &Wheel{
		CenterToFlange:    make(map[calc.Side]float64),
		FlangeDiameter:    make(map[calc.Side]float64),
		SpokeHoleDiameter: DefaultSpokeHoleDiameter,
		NumCrosses:        DefaultNumCrosses,
	}
}

// SpokeLengths returns the left and right spoke lengths for the wheel.
func (w *Wheel) SpokeLengths() (map[calc.Side]float64, error) {
	if err := w.ValidateForSpokes(); err != nil {
		return nil, err
	}
	return calc.SpokeLengths(calc.SpokeGeometry{
		CenterToFlange:    w.CenterToFlange,
		FlangeDiameter:    w.FlangeDiameter,
		SpokeHoleDiameter: w.SpokeHoleDiameter,
		ERD:               w.ERD,
		Offset:            w.Offset,
		NumSpokes:         w.NumSpokes,
		NumCrosses:        w.NumCrosses,
	})
}

// ApproxDiameter estimates the inflated diameter from BSD and tire width.
func (w *Wheel) ApproxDiameter() (float64, error) {
	if err := w.ValidateForApproxDiameter(); err != nil {
		return 0, err
	}
	return calc.ApproxWheelDiameter(w.BSD, w.TireWidth), nil
}

// Bicycle is a passive bicycle measurement record. Gearing calculations
// read the rear wheel; steering reads the front wheel.
type Bicycle struct {
	Name          string
	HeadTubeAngle float64
	ForkRake      float64
	CrankLength   float64
	FrontCogs     []int
	RearCogs      []int
	FrontWheel    *Wheel
	RearWheel     *Wheel
}

// NewBicycle returns a bicycle record with fresh (empty) wheels.
func NewBicycle() *Bicycle {
	return &Bicycle{
		FrontWheel: NewWheel(),
		RearWheel:  NewWheel(),
	}
}

// Normalize sorts both cog lists ascending, the canonical order.
func (b *Bicycle) Normalize() {
	sort.Ints(b.FrontCogs)
	sort.Ints(b.RearCogs)
}

func (b *Bicycle) GearRatios() (map[calc.Pair]float64, error) {
	if err := b.ValidateForGearing(); err != nil {
		return nil, err
	}
	return calc.GearRatios(b.FrontCogs, b.RearCogs)
}

func (b *Bicycle) GainRatios() (map[calc.Pair]float64, error) {
	if err := b.ValidateForDrive(); err != nil {
		return nil, err
	}
	return calc.GainRatios(b.FrontCogs, b.RearCogs, b.CrankLength, b.RearWheel.Diameter)
}

// CadenceToSpeeds converts a cadence in rev/s to km/h per cog pair.
func (b *Bicycle) CadenceToSpeeds(cadence float64) (map[calc.Pair]float64, error) {
	if err := b.ValidateForDrive(); err != nil {
		return nil, err
	}
	return calc.CadenceToSpeeds(cadence, b.FrontCogs, b.RearCogs, b.CrankLength, b.RearWheel.Diameter)
}

// SpeedToCadences converts a speed in km/h to rev/s per cog pair.
func (b *Bicycle) SpeedToCadences(speed float64) (map[calc.Pair]float64, error) {
	if err := b.ValidateForDrive(); err != nil {
		return nil, err
	}
	return calc.SpeedToCadences(speed, b.FrontCogs, b.RearCogs, b.CrankLength, b.RearWheel.Diameter)
}

func (b *Bicycle) SkidPatches(ambidextrous bool) (map[calc.Pair]int, error) {
	if err := b.ValidateForGearing(); err != nil {
		return nil, err
	}
	return calc.SkidPatches(b.FrontCogs, b.RearCogs, ambidextrous)
}

func (b *Bicycle) DerailerCapacity() (int, error) {
	if err := b.ValidateForGearing(); err != nil {
		return 0, err
	}
	return calc.DerailerCapacity(b.FrontCogs, b.RearCogs)
}

// Trail computes the steering geometry. The front wheel's diameter is
// the one that matters here.
func (b *Bicycle) Trail() (calc.Steering, error) {
	if err := b.ValidateForSteering(); err != nil {
		return calc.Steering{}, err
	}
	return calc.Trail(b.HeadTubeAngle, b.ForkRake, b.FrontWheel.Diameter)
}
