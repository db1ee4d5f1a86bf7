// internal/specfile/specfile.go
package specfile

import (
	"fmt"
	"os"

	"bikecalc-core/bike"
	"bikecalc-core/calc"
	yaml "gopkg.in/yaml.v2"
)

// YAML measurement files. Field names follow the measurement glossary;
// all lengths in mm, angles in degrees. Pointer fields distinguish
// "absent" from a literal zero so constructor defaults survive.

type wheelFile struct {
	Name              string             `yaml:"name"`
	BSD               float64            `yaml:"bsd"`
	ERD               float64            `yaml:"erd"`
	TireWidth         float64            `yaml:"tire_width"`
	Diameter          float64            `yaml:"diameter"`
	CenterToFlange    map[string]float64 `yaml:"center_to_flange"`
	FlangeDiameter    map[string]float64 `yaml:"flange_diameter"`
	SpokeHoleDiameter *float64           `yaml:"spoke_hole_diameter"`
	NumSpokes         int                `yaml:"num_spokes"`
	NumCrosses        *int               `yaml:"num_crosses"`
	Offset            float64            `yaml:"offset"`
}

type bicycleFile struct {
	Name          string     `yaml:"name"`
	HeadTubeAngle float64    `yaml:"head_tube_angle"`
	ForkRake      float64    `yaml:"fork_rake"`
	CrankLength   float64    `yaml:"crank_length"`
	FrontCogs     []int      `yaml:"front_cogs"`
	RearCogs      []int      `yaml:"rear_cogs"`
	FrontWheel    *wheelFile `yaml:"front_wheel"`
	RearWheel     *wheelFile `yaml:"rear_wheel"`
}

// LoadBicycle reads a bicycle spec file into a normalized record.
func LoadBicycle(path string) (*bike.Bicycle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f bicycleFile
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	b := bike.NewBicycle()
	b.Name = f.Name
	b.HeadTubeAngle = f.HeadTubeAngle
	b.ForkRake = f.ForkRake
	b.CrankLength = f.CrankLength
	b.FrontCogs = append(b.FrontCogs, f.FrontCogs...)
	b.RearCogs = append(b.RearCogs, f.RearCogs...)
	if f.FrontWheel != nil {
		b.FrontWheel = toWheel(f.FrontWheel)
	}
	if f.RearWheel != nil {
		b.RearWheel = toWheel(f.RearWheel)
	}
	b.Normalize()
	return b, nil
}

// LoadWheel reads a standalone wheel spec file.
func LoadWheel(path string) (*bike.Wheel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f wheelFile
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return toWheel(&f), nil
}

func toWheel(f *wheelFile) *bike.Wheel {
	w := bike.NewWheel()
	w.Name = f.Name
	w.BSD = f.BSD
	w.ERD = f.ERD
	w.TireWidth = f.TireWidth
	w.Diameter = f.Diameter
	for k, v := range f.CenterToFlange {
		w.CenterToFlange[calc.Side(k)] = v
	}
	for k, v := range f.FlangeDiameter {
		w.FlangeDiameter[calc.Side(k)] = v
	}
	if f.SpokeHoleDiameter != nil {
		w.SpokeHoleDiameter = *f.SpokeHoleDiameter
	}
	w.NumSpokes = f.NumSpokes
	if f.NumCrosses != nil {
		w.NumCrosses = *f.NumCrosses
	}
	w.Offset = f.Offset
	return w
}
