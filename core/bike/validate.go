// core/bike/validate.go
package bike

import "bikecalc-core/calc"

// Completeness checks run once, up front, before any arithmetic. Each
// names the specific missing measurement so the caller can fix the
// record. All failures wrap calc.ErrInvalidInput.

// ValidateForGearing checks the fields combinatorial cog calculations read.
func (b *Bicycle) ValidateForGearing() error {
	if len(b.FrontCogs) == 0 {
		return missing("front_cogs")
	}
	if len(b.RearCogs) == 0 {
		return missing("rear_cogs")
	}
	return nil
}

// ValidateForDrive additionally checks crank length and the rear wheel
// diameter needed for gain ratios and cadence/speed conversion.
func (b *Bicycle) ValidateForDrive() error {
	if err := b.ValidateForGearing(); err != nil {
		return err
	}
	if b.CrankLength == 0 {
		return missing("crank_length")
	}
	if b.RearWheel == nil || b.RearWheel.Diameter == 0 {
		return missing("rear_wheel.diameter")
	}
	return nil
}

// ValidateForSteering checks the fields the trail calculation reads.
// Fork rake may legitimately be zero or negative, so only the angle and
// the front wheel diameter are required.
func (b *Bicycle) ValidateForSteering() error {
	if b.HeadTubeAngle == 0 {
		return missing("head_tube_angle")
	}
	if b.FrontWheel == nil || b.FrontWheel.Diameter == 0 {
		return missing("front_wheel.diameter")
	}
	return nil
}

// ValidateForSpokes checks the hub and lacing fields spoke length reads.
func (w *Wheel) ValidateForSpokes() error {
	if len(w.CenterToFlange) == 0 {
		return missing("center_to_flange")
	}
	if len(w.FlangeDiameter) == 0 {
		return missing("flange_diameter")
	}
	if w.SpokeHoleDiameter == 0 {
		return missing("spoke_hole_diameter")
	}
	if w.ERD == 0 {
		return missing("erd")
	}
	if w.NumSpokes == 0 {
		return missing("num_spokes")
	}
	return nil
}

// ValidateForApproxDiameter checks the rim and tire fields the diameter
// approximation reads.
func (w *Wheel) ValidateForApproxDiameter() error {
	if w.BSD == 0 {
		return missing("bsd")
	}
	if w.TireWidth == 0 {
		return missing("tire_width")
	}
	return nil
}

func missing(attr string) error {
	return calc.Missing(attr)
}
