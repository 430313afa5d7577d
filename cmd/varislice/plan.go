//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/mpmel/varislice"
)

// The 'plan' pseudo-file builds a fresh plan from flags instead of disk.
type PlanFormatter struct {
	*pflag.FlagSet

	Printer          string
	Nozzle           []float64
	Extruders        []int
	Height           float64
	LayerHeight      float64
	FirstLayerHeight string
	RaftLayers       int
	ContactDistance  float64
	Ranges           []string
}

func NewPlanFormatter() (pf *PlanFormatter) {
	pf = &PlanFormatter{
		FlagSet: pflag.NewFlagSet("plan", pflag.ContinueOnError),
	}

	defaults := varislice.DefaultPlanConfig()

	pf.StringVarP(&pf.Printer, "printer", "P", defaults.Printer, "Printer preset for the nozzle set")
	pf.Float64SliceVarP(&pf.Nozzle, "nozzle", "n", nil, "Nozzle diameters per extruder, in mm")
	pf.IntSliceVarP(&pf.Extruders, "extruders", "e", defaults.Object.Extruders, "Extruders printing the object, zero based")
	pf.Float64VarP(&pf.Height, "height", "H", defaults.Height, "Object height, in mm")
	pf.Float64VarP(&pf.LayerHeight, "layer-height", "l", defaults.Object.LayerHeight, "Nominal layer height, in mm")
	pf.StringVarP(&pf.FirstLayerHeight, "first-layer-height", "f", defaults.Object.FirstLayerHeight.String(), "First layer height, in mm or percent of nominal")
	pf.IntVarP(&pf.RaftLayers, "raft-layers", "R", defaults.Object.RaftLayers, "Raft layer count")
	pf.Float64VarP(&pf.ContactDistance, "contact-distance", "c", defaults.Object.SupportMaterialContactDistance, "Raft contact distance, in mm; 0 selects a soluble interface")
	pf.StringArrayVarP(&pf.Ranges, "range", "r", nil, "Height range override LO:HI:HEIGHT, repeatable")

	pf.SetInterspersed(false)

	return
}

// parseHeightRange reads a LO:HI:HEIGHT triple, all in mm.
func parseHeightRange(spec string) (item varislice.HeightRange, err error) {
	fields := strings.Split(spec, ":")
	if len(fields) != 3 {
		err = fmt.Errorf("%s: expected LO:HI:HEIGHT", spec)
		return
	}

	values := make([]float64, len(fields))
	for n, field := range fields {
		values[n], err = strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			err = fmt.Errorf("%s: %q is not a number", spec, field)
			return
		}
	}

	item = varislice.HeightRange{MinZ: values[0], MaxZ: values[1], Height: values[2]}
	return
}

func (pf *PlanFormatter) Decode(reader varislice.Reader, filesize int64) (plan *varislice.Plan, err error) {
	cfg := varislice.DefaultPlanConfig()

	cfg.Printer = pf.Printer
	cfg.Print.NozzleDiameter = pf.Nozzle
	cfg.Object.Extruders = pf.Extruders
	cfg.Height = pf.Height
	cfg.Object.LayerHeight = pf.LayerHeight
	cfg.Object.RaftLayers = pf.RaftLayers
	cfg.Object.SupportMaterialContactDistance = pf.ContactDistance

	cfg.Object.FirstLayerHeight, err = varislice.ParseFloatOrPercent(pf.FirstLayerHeight)
	if err != nil {
		return
	}

	for _, spec := range pf.Ranges {
		var item varislice.HeightRange
		item, err = parseHeightRange(spec)
		if err != nil {
			return
		}
		cfg.Ranges = append(cfg.Ranges, item)
	}

	plan, err = cfg.Plan()
	return
}

func (pf *PlanFormatter) Encode(writer varislice.Writer, plan *varislice.Plan) (err error) {
	return
}
