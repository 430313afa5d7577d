//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package varislice

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FloatOrPercent is a value given either directly or as a percentage of
// some base value, "0.25" versus "150%".
type FloatOrPercent struct {
	Value   float64
	Percent bool
}

// ParseFloatOrPercent reads a plain number or a percentage like "150%".
func ParseFloatOrPercent(s string) (fp FloatOrPercent, err error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		fp.Percent = true
		s = strings.TrimSuffix(s, "%")
	}

	fp.Value, err = strconv.ParseFloat(s, 64)
	return
}

// AbsValue resolves the value against a base when given as a percentage.
func (fp FloatOrPercent) AbsValue(base float64) float64 {
	if fp.Percent {
		return fp.Value * 0.01 * base
	}

	return fp.Value
}

func (fp FloatOrPercent) String() string {
	value := strconv.FormatFloat(fp.Value, 'g', -1, 64)
	if fp.Percent {
		value += "%"
	}

	return value
}

func (fp *FloatOrPercent) UnmarshalYAML(node *yaml.Node) (err error) {
	parsed, err := ParseFloatOrPercent(node.Value)
	if err != nil {
		err = fmt.Errorf("line %d: %q: not a number or percentage", node.Line, node.Value)
		return
	}

	*fp = parsed
	return
}

func (fp FloatOrPercent) MarshalYAML() (interface{}, error) {
	if fp.Percent {
		return fp.String(), nil
	}

	return fp.Value, nil
}

// PrintConfig is the printer side of the configuration.
type PrintConfig struct {
	NozzleDiameter []float64 `yaml:"nozzle_diameter"` // Per extruder, in mm
}

// NozzleDiameterAt returns the nozzle diameter of an extruder, falling
// back to the first extruder for out of range indexes.
func (print *PrintConfig) NozzleDiameterAt(extruder int) float64 {
	if extruder < 0 || extruder >= len(print.NozzleDiameter) {
		return print.NozzleDiameter[0]
	}

	return print.NozzleDiameter[extruder]
}

// ObjectConfig is the per object side of the configuration. Extruder
// references are one-based; zero selects the first extruder.
type ObjectConfig struct {
	LayerHeight                      float64        `yaml:"layer_height"`
	FirstLayerHeight                 FloatOrPercent `yaml:"first_layer_height"`
	RaftLayers                       int            `yaml:"raft_layers"`
	SupportMaterialExtruder          int            `yaml:"support_material_extruder"`
	SupportMaterialInterfaceExtruder int            `yaml:"support_material_interface_extruder"`
	SupportMaterialContactDistance   float64        `yaml:"support_material_contact_distance"` // 0 selects a soluble interface
	Extruders                        []int          `yaml:"extruders,flow"`                    // Zero-based object extruders
}

// HeightRange is a user override fixing the layer height over a Z range.
type HeightRange struct {
	MinZ   float64 `yaml:"min_z"`
	MaxZ   float64 `yaml:"max_z"`
	Height float64 `yaml:"layer_height"`
}

// PlanConfig is one object's slicing plan as read from a YAML file.
type PlanConfig struct {
	Printer string        `yaml:"printer,omitempty"` // Preset name, used when print.nozzle_diameter is absent
	Print   PrintConfig   `yaml:"print,omitempty"`
	Object  ObjectConfig  `yaml:"object"`
	Height  float64       `yaml:"height"` // Object height, in mm
	Ranges  []HeightRange `yaml:"ranges,omitempty"`
}

// DefaultPlanConfig returns the baseline a plan file is merged over.
func DefaultPlanConfig() PlanConfig {
	return PlanConfig{
		Printer: "MK3S",
		Object: ObjectConfig{
			LayerHeight:                      0.2,
			FirstLayerHeight:                 FloatOrPercent{Value: 0.2},
			SupportMaterialExtruder:          1,
			SupportMaterialInterfaceExtruder: 1,
			SupportMaterialContactDistance:   0.2,
			Extruders:                        []int{0},
		},
		Height: 10.0,
	}
}

// ParsePlanConfig merges a YAML plan document over the defaults.
func ParsePlanConfig(data []byte) (cfg *PlanConfig, err error) {
	merged := DefaultPlanConfig()
	err = yaml.Unmarshal(data, &merged)
	if err != nil {
		return
	}

	cfg = &merged
	return
}

// LoadPlanConfig reads a plan configuration file.
func LoadPlanConfig(path string) (cfg *PlanConfig, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	cfg, err = ParsePlanConfig(data)
	return
}

// ResolvedPrint returns the print configuration with the printer preset
// applied when no nozzle set is given explicitly.
func (cfg *PlanConfig) ResolvedPrint() (print PrintConfig, err error) {
	print = cfg.Print
	if len(print.NozzleDiameter) == 0 {
		printer, ok := Printers[cfg.Printer]
		if !ok {
			err = fmt.Errorf("%s: unknown printer preset", cfg.Printer)
			return
		}
		print.NozzleDiameter = printer.NozzleDiameter
	}

	return
}

// Plan derives the slicing parameters and builds the range based profile
// and its layer stack.
func (cfg *PlanConfig) Plan() (plan *Plan, err error) {
	print, err := cfg.ResolvedPrint()
	if err != nil {
		return
	}

	params := NewSlicingParameters(print, cfg.Object, cfg.Height, cfg.Object.Extruders)
	profile := ProfileFromRanges(params, cfg.Ranges)

	plan = &Plan{
		Params:  params,
		Ranges:  cfg.Ranges,
		Profile: profile,
		Layers:  GenerateLayers(params, profile),
	}

	return
}
