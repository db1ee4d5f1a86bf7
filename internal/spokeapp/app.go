// internal/spokeapp/app.go
package spokeapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"bikecalc-core/bike"
	"bikecalc-core/calc"
	"bikecalc/internal/cliutil"
	"bikecalc/internal/output"
	"bikecalc/internal/specfile"
	"bikecalc/internal/spokecli"
	"bikecalc/internal/version"
	"bikecalc/pkg/api"
)

// RunContext drives one spokecalc invocation: assemble the wheel record,
// compute spoke lengths and/or the approximate diameter, write a report.
func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := spokecli.NewFlagSet("spokecalc")
	fs.SetOutput(io.Discard)
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)

	opts, err := spokecli.ParseArgs(fs, flagArgs, posArgs)
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
		_, _ = fmt.Fprintf(outw, "spokecalc version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	w, err := assemble(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	report, err := buildReport(w)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	switch opts.Output {
	case "json":
		err = output.WriteSpokeJSON(outw, report, opts.Digits)
	default:
		err = output.WriteSpokeText(outw, report, opts.Digits, opts.Header)
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

func assemble(opts spokecli.Options) (*bike.Wheel, error) {
	w := bike.NewWheel()
	if opts.WheelFile != "" {
		loaded, err := specfile.LoadWheel(opts.WheelFile)
		if err != nil {
			return nil, err
		}
		w = loaded
	}
	if opts.CenterToFlangeLeft != 0 {
		w.CenterToFlange[calc.SideLeft] = opts.CenterToFlangeLeft
	}
	if opts.CenterToFlangeRight != 0 {
		w.CenterToFlange[calc.SideRight] = opts.CenterToFlangeRight
	}
	if opts.FlangeDiameterLeft != 0 {
		w.FlangeDiameter[calc.SideLeft] = opts.FlangeDiameterLeft
	}
	if opts.FlangeDiameterRight != 0 {
		w.FlangeDiameter[calc.SideRight] = opts.FlangeDiameterRight
	}
	if opts.SpokeHoleDiameter != spokecli.Unset {
		w.SpokeHoleDiameter = opts.SpokeHoleDiameter
	}
	if opts.ERD != 0 {
		w.ERD = opts.ERD
	}
	if opts.Offset != 0 {
		w.Offset = opts.Offset
	}
	if opts.NumSpokes != 0 {
		w.NumSpokes = opts.NumSpokes
	}
	if opts.NumCrosses != spokecli.Unset {
		w.NumCrosses = opts.NumCrosses
	}
	if opts.BSD != 0 {
		w.BSD = opts.BSD
	}
	if opts.TireWidth != 0 {
		w.TireWidth = opts.TireWidth
	}
	return w, nil
}

// buildReport computes whatever the record supports: spoke lengths when
// the hub geometry is present, the diameter approximation when bsd and
// tire width are present. At least one must be computable.
func buildReport(w *bike.Wheel) (api.SpokeReportV1, error) {
	report := api.SpokeReportV1{Name: w.Name}

	haveSpokes := w.ERD != 0 || w.NumSpokes != 0 || len(w.CenterToFlange) > 0
	if haveSpokes {
		lengths, err := w.SpokeLengths()
		if err != nil {
			return report, err
		}
		l, r := lengths[calc.SideLeft], lengths[calc.SideRight]
		report.Left = &l
		report.Right = &r
	}

	if w.BSD != 0 || w.TireWidth != 0 {
		d, err := w.ApproxDiameter()
		if err != nil {
			return report, err
		}
		report.ApproxDiameter = &d
	}

	if report.Left == nil && report.ApproxDiameter == nil {
		return report, errors.New("nothing to compute: provide hub geometry or bsd/tire_width")
	}
	return report, nil
}
