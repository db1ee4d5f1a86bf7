// core/calc/trail_test.go
package calc

import (
	"errors"
	"math"
	"testing"
)

func TestTrailExample(t *testing.T) {
	got, err := Trail(73, 64, 700)
	if err != nil {
		t.Fatalf("Trail: %v", err)
	}
	if math.Abs(got.Trail-40.1) > 0.05 {
		t.Errorf("trail = %v, want ≈40.1", got.Trail)
	}
	if math.Abs(got.MechanicalTrail-38.3) > 0.05 {
		t.Errorf("mechanical trail = %v, want ≈38.3", got.MechanicalTrail)
	}
	if math.Abs(got.WheelFlop-11.2) > 0.05 {
		t.Errorf("wheel flop = %v, want ≈11.2", got.WheelFlop)
	}
}

func TestTrailNegativeRake(t *testing.T) {
	// Negative rake moves the contact point back, increasing trail.
	plus, err := Trail(71, 50, 680)
	if err != nil {
		t.Fatalf("Trail: %v", err)
	}
	minus, err := Trail(71, -50, 680)
	if err != nil {
		t.Fatalf("Trail: %v", err)
	}
	if minus.Trail <= plus.Trail {
		t.Errorf("trail with rake -50 (%v) should exceed trail with rake 50 (%v)", minus.Trail, plus.Trail)
	}
}

func TestTrailDegenerateAngle(t *testing.T) {
	for _, angle := range []float64{0, 180, 360, -180} {
		if _, err := Trail(angle, 64, 700); !errors.Is(err, ErrDomain) {
			t.Errorf("Trail(angle=%v) expected ErrDomain, got %v", angle, err)
		}
	}
}

func TestTrailMissingDiameter(t *testing.T) {
	if _, err := Trail(73, 64, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
