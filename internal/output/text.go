// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"bikecalc/pkg/api"
)

// WriteGearingText prints a gearing report as TSV: one row per cog
// pair, followed by scalar lines for capacity and steering. digits
// controls display rounding (NoRounding leaves values exact).
func WriteGearingText(w io.Writer, r api.GearingReportV1, digits int, header bool) error {
	if r.Name != "" {
		if _, err := fmt.Fprintf(w, "%s\n%s\n", r.Name, strings.Repeat("=", len(r.Name))); err != nil {
			return err
		}
	}
	if len(r.Entries) > 0 {
		cols := gearColumns(r.Entries[0])
		if header {
			if _, err := fmt.Fprintln(w, strings.Join(cols, "\t")); err != nil {
				return err
			}
		}
		for _, e := range r.Entries {
			if _, err := fmt.Fprintln(w, strings.Join(gearRow(e, cols, digits), "\t")); err != nil {
				return err
			}
		}
	}
	if r.DerailerCapacity != nil {
		if _, err := fmt.Fprintf(w, "derailer_capacity\t%d\n", *r.DerailerCapacity); err != nil {
			return err
		}
	}
	if r.Steering != nil {
		s := *r.Steering
		_, err := fmt.Fprintf(w, "trail\t%s\nmechanical_trail\t%s\nwheel_flop\t%s\n",
			fmtFloat(RoundTo(s.Trail, digits)),
			fmtFloat(RoundTo(s.MechanicalTrail, digits)),
			fmtFloat(RoundTo(s.WheelFlop, digits)))
		if err != nil {
			return err
		}
	}
	return nil
}

// gearColumns derives the column set from whichever quantities were
// computed; entries in one report are uniform.
func gearColumns(e api.GearEntryV1) []string {
	cols := []string{"front", "rear", "gear_ratio"}
	if e.GainRatio != nil {
		cols = append(cols, "gain_ratio")
	}
	if e.SpeedKPH != nil {
		cols = append(cols, "speed_kph")
	}
	if e.CadenceHz != nil {
		cols = append(cols, "cadence_hz")
	}
	if e.SkidPatches != nil {
		cols = append(cols, "skid_patches")
	}
	return cols
}

func gearRow(e api.GearEntryV1, cols []string, digits int) []string {
	row := make([]string, 0, len(cols))
	for _, c := range cols {
		switch c {
		case "front":
			row = append(row, strconv.Itoa(e.Front))
		case "rear":
			row = append(row, strconv.Itoa(e.Rear))
		case "gear_ratio":
			row = append(row, fmtFloat(RoundTo(e.GearRatio, digits)))
		case "gain_ratio":
			row = append(row, fmtFloat(RoundTo(*e.GainRatio, digits)))
		case "speed_kph":
			row = append(row, fmtFloat(RoundTo(*e.SpeedKPH, digits)))
		case "cadence_hz":
			row = append(row, fmtFloat(RoundTo(*e.CadenceHz, digits)))
		case "skid_patches":
			row = append(row, strconv.Itoa(*e.SkidPatches))
		}
	}
	return row
}

// WriteSpokeText prints a wheel report: per-side spoke lengths and the
// approximate diameter when present.
func WriteSpokeText(w io.Writer, r api.SpokeReportV1, digits int, header bool) error {
	if r.Name != "" {
		if _, err := fmt.Fprintf(w, "%s\n%s\n", r.Name, strings.Repeat("-", len(r.Name))); err != nil {
			return err
		}
	}
	if r.Left != nil && r.Right != nil {
		if header {
			if _, err := fmt.Fprintln(w, "side\tspoke_length"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "left\t%s\n", fmtFloat(RoundTo(*r.Left, digits))); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "right\t%s\n", fmtFloat(RoundTo(*r.Right, digits))); err != nil {
			return err
		}
	}
	if r.ApproxDiameter != nil {
		if _, err := fmt.Fprintf(w, "approx_diameter\t%s\n", fmtFloat(RoundTo(*r.ApproxDiameter, digits))); err != nil {
			return err
		}
	}
	return nil
}
