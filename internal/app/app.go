// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"bikecalc-core/bike"
	"bikecalc-core/calc"
	"bikecalc/internal/cli"
	"bikecalc/internal/cliutil"
	"bikecalc/internal/output"
	"bikecalc/internal/specfile"
	"bikecalc/internal/version"
	"bikecalc/pkg/api"
)

// RunContext drives one bikecalc invocation: parse argv, assemble the
// bicycle record from spec file and inline overrides, run the selected
// calculations, and write one report.
func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("bikecalc")
	fs.SetOutput(io.Discard)
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)

	opts, err := cli.ParseArgs(fs, flagArgs, posArgs)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "bikecalc version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	b, err := assemble(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	report, err := buildReport(b, opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	switch opts.Output {
	case "json":
		err = output.WriteGearingJSON(outw, report, opts.Digits)
	default:
		err = output.WriteGearingText(outw, report, opts.Digits, opts.Header)
	}
	if output.IsBrokenPipe(err) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushCode(outw, stderr, 0)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); output.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

// assemble builds the bicycle record: spec file first, then inline
// flag overrides on top.
func assemble(opts cli.Options) (*bike.Bicycle, error) {
	b := bike.NewBicycle()
	if opts.BikeFile != "" {
		loaded, err := specfile.LoadBicycle(opts.BikeFile)
		if err != nil {
			return nil, err
		}
		b = loaded
	}
	if len(opts.FrontCogs) > 0 {
		b.FrontCogs = opts.FrontCogs
	}
	if len(opts.RearCogs) > 0 {
		b.RearCogs = opts.RearCogs
	}
	if opts.CrankLength != 0 {
		b.CrankLength = opts.CrankLength
	}
	if opts.WheelDiameter != 0 {
		b.RearWheel.Diameter = opts.WheelDiameter
	}
	if opts.FrontDiameter != 0 {
		b.FrontWheel.Diameter = opts.FrontDiameter
	}
	if opts.HeadTubeAngle != 0 {
		b.HeadTubeAngle = opts.HeadTubeAngle
	}
	if opts.ForkRake != 0 {
		b.ForkRake = opts.ForkRake
	}
	b.Normalize()
	return b, nil
}

// buildReport runs the requested calculations. Gear ratios are the
// default; other columns and scalars join per flags. Trail-only runs
// skip the cog table entirely.
func buildReport(b *bike.Bicycle, opts cli.Options) (api.GearingReportV1, error) {
	report := api.GearingReportV1{
		Name:        b.Name,
		CrankLength: b.CrankLength,
	}
	if b.RearWheel != nil {
		report.WheelDiameter = b.RearWheel.Diameter
	}

	wantGearing := len(b.FrontCogs) > 0 || len(b.RearCogs) > 0 || !opts.Trail
	if wantGearing {
		gears, err := b.GearRatios()
		if err != nil {
			return report, err
		}

		var gains map[calc.Pair]float64
		if opts.Cadence != cli.Unset || opts.Speed != cli.Unset {
			// Conversions depend on gain ratios being computable.
			if gains, err = b.GainRatios(); err != nil {
				return report, err
			}
		} else if b.CrankLength != 0 && b.RearWheel != nil && b.RearWheel.Diameter != 0 {
			if gains, err = b.GainRatios(); err != nil {
				return report, err
			}
		}

		var speeds, cadences map[calc.Pair]float64
		if opts.Cadence != cli.Unset {
			if speeds, err = b.CadenceToSpeeds(opts.Cadence); err != nil {
				return report, err
			}
		}
		if opts.Speed != cli.Unset {
			if cadences, err = b.SpeedToCadences(opts.Speed); err != nil {
				return report, err
			}
		}
		var patches map[calc.Pair]int
		if opts.SkidPatches {
			if patches, err = b.SkidPatches(opts.Ambidextrous); err != nil {
				return report, err
			}
		}

		for _, p := range output.SortedPairs(gears) {
			e := api.GearEntryV1{Front: p.Front, Rear: p.Rear, GearRatio: gears[p]}
			if gains != nil {
				v := gains[p]
				e.GainRatio = &v
			}
			if speeds != nil {
				v := speeds[p]
				e.SpeedKPH = &v
			}
			if cadences != nil {
				v := cadences[p]
				e.CadenceHz = &v
			}
			if patches != nil {
				v := patches[p]
				e.SkidPatches = &v
			}
			report.Entries = append(report.Entries, e)
		}

		if opts.Capacity {
			capacity, err := b.DerailerCapacity()
			if err != nil {
				return report, err
			}
			report.DerailerCapacity = &capacity
		}
	}

	if opts.Trail {
		s, err := b.Trail()
		if err != nil {
			return report, err
		}
		report.Steering = &api.SteeringV1{
			Trail:           s.Trail,
			MechanicalTrail: s.MechanicalTrail,
			WheelFlop:       s.WheelFlop,
		}
	}
	return report, nil
}
