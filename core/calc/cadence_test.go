// core/calc/cadence_test.go
package calc

import (
	"math"
	"testing"
)

func TestCadenceToSpeedsExample(t *testing.T) {
	got, err := CadenceToSpeeds(2, []int{40}, []int{20, 30}, 100, 600)
	if err != nil {
		t.Fatalf("CadenceToSpeeds: %v", err)
	}
	// 2π·100·6·2·0.0036 ≈ 27.14 km/h on the 40/20.
	if math.Abs(got[Pair{40, 20}]-27.1) > 0.05 {
		t.Errorf("40/20 speed = %v, want ≈27.1", got[Pair{40, 20}])
	}
	if math.Abs(got[Pair{40, 30}]-18.1) > 0.05 {
		t.Errorf("40/30 speed = %v, want ≈18.1", got[Pair{40, 30}])
	}
}

// Converting a cadence to a speed and back must return the original
// cadence, because both directions recompute gain ratios from the raw
// measurements.
func TestCadenceSpeedRoundTrip(t *testing.T) {
	front := []int{26, 36}
	rear := []int{12, 18, 32}
	for _, cadence := range []float64{0.5, 1.5, 2.0, 3.25} {
		speeds, err := CadenceToSpeeds(cadence, front, rear, 170, 700)
		if err != nil {
			t.Fatalf("CadenceToSpeeds(%v): %v", cadence, err)
		}
		for p, s := range speeds {
			back, err := SpeedToCadences(s, []int{p.Front}, []int{p.Rear}, 170, 700)
			if err != nil {
				t.Fatalf("SpeedToCadences: %v", err)
			}
			if math.Abs(back[p]-cadence) > 1e-9 {
				t.Errorf("pair %v: round trip %v -> %v -> %v", p, cadence, s, back[p])
			}
		}
	}
}
