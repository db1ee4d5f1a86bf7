// internal/spokecli/options_test.go
package spokecli

import (
	"io"
	"testing"
)

func parse(t *testing.T, argv, pos []string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("spokecalc")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv, pos)
}

func TestParseInlineGeometry(t *testing.T) {
	opt, err := parse(t, []string{
		"--center-to-flange-left", "37.1", "--center-to-flange-right", "20.9",
		"--flange-diameter-left", "45", "--flange-diameter-right", "45",
		"--erd", "560", "--offset", "3", "--num-spokes", "36",
	}, nil)
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opt.ERD != 560 || opt.NumSpokes != 36 {
		t.Errorf("unexpected options: %+v", opt)
	}
	if opt.SpokeHoleDiameter != Unset || opt.NumCrosses != Unset {
		t.Error("defaults should stay Unset so record defaults apply")
	}
}

func TestParsePositionalWheelFile(t *testing.T) {
	opt, err := parse(t, nil, []string{"wheel.yaml"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opt.WheelFile != "wheel.yaml" {
		t.Errorf("wheel file = %q", opt.WheelFile)
	}
}

func TestParseRejections(t *testing.T) {
	cases := []struct {
		name string
		argv []string
		pos  []string
	}{
		{"no input", nil, nil},
		{"wheel flag and positional", []string{"--wheel", "a.yaml"}, []string{"b.yaml"}},
		{"bad output", []string{"--erd", "560", "--output", "tsv"}, nil},
		{"bad digits", []string{"--erd", "560", "--digits", "-3"}, nil},
	}
	for _, c := range cases {
		if _, err := parse(t, c.argv, c.pos); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}
