// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"bikecalc/internal/version"
)

// Unset marks numeric flags the user did not supply.
const Unset = -1

// Options holds all CLI flags and arguments for bikecalc.
type Options struct {
	// Spec input
	BikeFile string

	// Inline measurements (override file values)
	FrontCogs     []int
	RearCogs      []int
	CrankLength   float64
	WheelDiameter float64 // rear wheel, used for gearing
	FrontDiameter float64 // front wheel, used for trail
	HeadTubeAngle float64
	ForkRake      float64

	// Calculations
	Cadence      float64 // rev/s; Unset = skip speed column
	Speed        float64 // km/h; Unset = skip cadence column
	SkidPatches  bool
	Ambidextrous bool
	Trail        bool
	Capacity     bool

	// Output
	Output string // text | json
	Digits int    // display rounding; Unset = exact values
	Header bool   // true unless --no-header

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: bicycle drivetrain and steering calculator

Lengths in mm, angles in degrees, cadence in rev/s, speed in km/h.
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// posArgs are positional spec-file paths already split off by cliutil.
func ParseArgs(fs *flag.FlagSet, argv, posArgs []string) (Options, error) {
	var opt Options
	var help bool

	// Spec input
	fs.StringVar(&opt.BikeFile, "bike", "", "bicycle spec YAML file (or positional)")

	// Inline measurements
	front := intsValue{dst: &opt.FrontCogs}
	rear := intsValue{dst: &opt.RearCogs}
	fs.Var(&front, "front-cogs", "front cog tooth counts, comma-separated (e.g. 26,36)")
	fs.Var(&rear, "rear-cogs", "rear cog tooth counts, comma-separated (e.g. 12,18,32)")
	fs.Float64Var(&opt.CrankLength, "crank-length", 0, "crank length (mm)")
	fs.Float64Var(&opt.WheelDiameter, "wheel-diameter", 0, "rear wheel inflated diameter (mm)")
	fs.Float64Var(&opt.FrontDiameter, "front-wheel-diameter", 0, "front wheel inflated diameter (mm)")
	fs.Float64Var(&opt.HeadTubeAngle, "head-tube-angle", 0, "head tube angle (degrees)")
	fs.Float64Var(&opt.ForkRake, "fork-rake", 0, "fork rake (mm, may be negative)")

	// Calculations
	fs.Float64Var(&opt.Cadence, "cadence", Unset, "cadence (rev/s): add a speed column")
	fs.Float64Var(&opt.Speed, "speed", Unset, "speed (km/h): add a cadence column")
	fs.BoolVar(&opt.SkidPatches, "skid-patches", false, "add a fixed-gear skid patch column [false]")
	fs.BoolVar(&opt.Ambidextrous, "ambidextrous", false, "skid with either foot forward [false]")
	fs.BoolVar(&opt.Trail, "trail", false, "compute trail, mechanical trail, wheel flop [false]")
	fs.BoolVar(&opt.Capacity, "capacity", false, "compute derailer capacity [false]")

	// Output
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

	// Validation
	switch len(posArgs) {
	case 0:
	case 1:
		if opt.BikeFile != "" {
			return opt, errors.New("--bike conflicts with a positional spec file")
		}
		opt.BikeFile = posArgs[0]
	default:
		return opt, errors.New("at most one spec file may be given")
	}
	haveInline := len(opt.FrontCogs) > 0 || len(opt.RearCogs) > 0 ||
		opt.HeadTubeAngle != 0 || opt.FrontDiameter != 0
	if opt.BikeFile == "" && !haveInline {
		return opt, errors.New("provide a spec file or inline measurements (--front-cogs/--rear-cogs, or --head-tube-angle for --trail)")
	}
	if opt.Cadence != Unset && opt.Cadence <= 0 {
		return opt, errors.New("--cadence must be positive")
	}
	if opt.Speed != Unset && opt.Speed <= 0 {
		return opt, errors.New("--speed must be positive")
	}
	if opt.Ambidextrous && !opt.SkidPatches {
		return opt, errors.New("--ambidextrous requires --skid-patches")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.Digits < Unset {
		return opt, errors.New("--digits must be ≥ -1")
	}
	return opt, nil
}

// intsValue parses comma-separated tooth counts.
type intsValue struct{ dst *[]int }

func (v *intsValue) String() string {
	if v.dst == nil {
		return ""
	}
	parts := make([]string, len(*v.dst))
	for i, n := range *v.dst {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (v *intsValue) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return fmt.Errorf("bad tooth count %q", part)
		}
		*v.dst = append(*v.dst, n)
	}
	return nil
}
