// core/calc/spoke_test.go
package calc

import (
	"errors"
	"math"
	"testing"
)

func rearHub36() SpokeGeometry {
	return SpokeGeometry{
		CenterToFlange:    map[Side]float64{SideLeft: 37.1, SideRight: 20.9},
		FlangeDiameter:    map[Side]float64{SideLeft: 45, SideRight: 45},
		SpokeHoleDiameter: 2.6,
		ERD:               560,
		Offset:            3,
		NumSpokes:         36,
		NumCrosses:        3,
	}
}

func TestSpokeLengthsExample(t *testing.T) {
	got, err := SpokeLengths(rearHub36())
	if err != nil {
		t.Fatalf("SpokeLengths: %v", err)
	}
	if math.Abs(got[SideRight]-269.2) > 0.05 {
		t.Errorf("right = %v, want ≈269.2", got[SideRight])
	}
	if math.Abs(got[SideLeft]-270.3) > 0.05 {
		t.Errorf("left = %v, want ≈270.3", got[SideLeft])
	}
}

func TestSpokeLengthsRadialLacing(t *testing.T) {
	g := rearHub36()
	g.NumCrosses = 0
	g.Offset = 0
	g.CenterToFlange = map[Side]float64{SideLeft: 30, SideRight: 30}
	got, err := SpokeLengths(g)
	if err != nil {
		t.Fatalf("SpokeLengths: %v", err)
	}
	// Radial spokes: chord reduces to hypot(d, r2-r1).
	want := math.Hypot(30, 560.0/2-45.0/2) - 2.6/2
	if math.Abs(got[SideLeft]-want) > 1e-9 {
		t.Errorf("left = %v, want %v", got[SideLeft], want)
	}
	if got[SideLeft] != got[SideRight] {
		t.Errorf("symmetric geometry should give equal sides: %v vs %v", got[SideLeft], got[SideRight])
	}
}

func TestSpokeLengthsOddSpokeCount(t *testing.T) {
	g := rearHub36()
	g.NumSpokes = 35
	if _, err := SpokeLengths(g); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for odd num_spokes, got %v", err)
	}
}

func TestSpokeLengthsMissingSide(t *testing.T) {
	g := rearHub36()
	delete(g.CenterToFlange, SideLeft)
	if _, err := SpokeLengths(g); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing left entry, got %v", err)
	}
}

func TestSpokeLengthsDegenerateTriangle(t *testing.T) {
	// Flange circle equal to the rim circle, laced radially, with the
	// flange in the rim plane: the triangle collapses to a point. The
	// radicand hits its floor of exactly zero, the boundary of the
	// physically consistent region.
	g := SpokeGeometry{
		CenterToFlange:    map[Side]float64{SideLeft: 0, SideRight: 0},
		FlangeDiameter:    map[Side]float64{SideLeft: 100, SideRight: 100},
		SpokeHoleDiameter: 2.6,
		ERD:               100,
		NumSpokes:         4,
		NumCrosses:        0,
	}
	got, err := SpokeLengths(g)
	if err != nil {
		t.Fatalf("zero radicand is the valid boundary, got error: %v", err)
	}
	if got[SideLeft] != -2.6/2 {
		t.Errorf("collapsed triangle should leave only the counterbore term, got %v", got[SideLeft])
	}
}
