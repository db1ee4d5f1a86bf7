// internal/spokecli/options.go
package spokecli

import (
	"errors"
	"flag"
	"fmt"

	"bikecalc/internal/version"
)

// Unset marks numeric flags the user did not supply.
const Unset = -1

// Options holds all CLI flags and arguments for spokecalc.
type Options struct {
	// Spec input
	WheelFile string

	// Inline hub/rim measurements (override file values)
	CenterToFlangeLeft  float64
	CenterToFlangeRight float64
	FlangeDiameterLeft  float64
	FlangeDiameterRight float64
	SpokeHoleDiameter   float64
	ERD                 float64
	Offset              float64
	NumSpokes           int
	NumCrosses          int

	// Tire measurements for the diameter approximation
	BSD       float64
	TireWidth float64

	// Output
	Output string
	Digits int
	Header bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: wheel building calculator (spoke lengths, approximate diameter)

Lengths in mm. Left is the non-drive side.
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv, posArgs []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.WheelFile, "wheel", "", "wheel spec YAML file (or positional)")

	fs.Float64Var(&opt.CenterToFlangeLeft, "center-to-flange-left", 0, "hub center to left flange (mm)")
	fs.Float64Var(&opt.CenterToFlangeRight, "center-to-flange-right", 0, "hub center to right flange (mm)")
	fs.Float64Var(&opt.FlangeDiameterLeft, "flange-diameter-left", 0, "left flange spoke hole circle diameter (mm)")
	fs.Float64Var(&opt.FlangeDiameterRight, "flange-diameter-right", 0, "right flange spoke hole circle diameter (mm)")
	fs.Float64Var(&opt.SpokeHoleDiameter, "spoke-hole-diameter", Unset, "flange spoke hole diameter (mm) [2.6]")
	fs.Float64Var(&opt.ERD, "erd", 0, "effective rim diameter (mm)")
	fs.Float64Var(&opt.Offset, "offset", 0, "rim offset, positive toward the right flange (mm)")
	fs.IntVar(&opt.NumSpokes, "num-spokes", 0, "total spoke count (even)")
	fs.IntVar(&opt.NumCrosses, "num-crosses", Unset, "lacing cross count [3]")

	fs.Float64Var(&opt.BSD, "bsd", 0, "bead seat diameter (mm)")
	fs.Float64Var(&opt.TireWidth, "tire-width", 0, "tire width (mm)")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	fs.IntVar(&opt.Digits, "digits", Unset, "round displayed values to N decimals (-1 = exact) [-1]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	switch len(posArgs) {
	case 0:
	case 1:
		if opt.WheelFile != "" {
			return opt, errors.New("--wheel conflicts with a positional spec file")
		}
		opt.WheelFile = posArgs[0]
	default:
		return opt, errors.New("at most one spec file may be given")
	}
	haveInline := opt.ERD != 0 || opt.NumSpokes != 0 || opt.BSD != 0
	if opt.WheelFile == "" && !haveInline {
		return opt, errors.New("provide a spec file or inline measurements (--erd/--num-spokes/… or --bsd/--tire-width)")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.Digits < Unset {
		return opt, errors.New("--digits must be ≥ -1")
	}
	return opt, nil
}
