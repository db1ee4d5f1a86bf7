// internal/spokeintegration/integration_test.go
package spokeintegration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bikecalc/internal/spokeapp"
	"bikecalc/pkg/api"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestEndToEndSpokeLengths(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := spokeapp.Run([]string{
		"--center-to-flange-left", "37.1",
		"--center-to-flange-right", "20.9",
		"--flange-diameter-left", "45",
		"--flange-diameter-right", "45",
		"--erd", "560",
		"--offset", "3",
		"--num-spokes", "36",
		"--digits", "1",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	got := out.String()
	for _, want := range []string{"left\t270.3\n", "right\t269.2\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestEndToEndWheelFileJSON(t *testing.T) {
	wheelFile := write(t, "wheel.yaml", `
name: rear road
erd: 560
offset: 3
num_spokes: 36
bsd: 584
tire_width: 42
center_to_flange:
  left: 37.1
  right: 20.9
flange_diameter:
  left: 45
  right: 45
`)
	var out, errBuf bytes.Buffer
	code := spokeapp.Run([]string{wheelFile, "--output", "json", "--digits", "1"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	var report api.SpokeReportV1
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out.String())
	}
	if report.Name != "rear road" {
		t.Errorf("name = %q", report.Name)
	}
	if report.Left == nil || *report.Left != 270.3 {
		t.Errorf("left = %v, want 270.3", report.Left)
	}
	if report.Right == nil || *report.Right != 269.2 {
		t.Errorf("right = %v, want 269.2", report.Right)
	}
	if report.ApproxDiameter == nil || *report.ApproxDiameter != 668 {
		t.Errorf("approx diameter = %v, want 668", report.ApproxDiameter)
	}
}

func TestEndToEndDiameterOnly(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := spokeapp.Run([]string{"--bsd", "584", "--tire-width", "42"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "approx_diameter\t668\n") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestEndToEndOddSpokesExitCode(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := spokeapp.Run([]string{
		"--center-to-flange-left", "37.1",
		"--center-to-flange-right", "20.9",
		"--flange-diameter-left", "45",
		"--flange-diameter-right", "45",
		"--erd", "560",
		"--num-spokes", "35",
	}, &out, &errBuf)
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if !strings.Contains(errBuf.String(), "num_spokes") {
		t.Errorf("error should name num_spokes: %s", errBuf.String())
	}
}
