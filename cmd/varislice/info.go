//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mpmel/varislice"
)

type InfoCommand struct {
	*pflag.FlagSet

	ParamSummary bool
	Statistics   bool
	LayerDetail  bool
}

func NewInfoCommand() (info *InfoCommand) {
	info = &InfoCommand{
		FlagSet: pflag.NewFlagSet("info", pflag.ContinueOnError),
	}

	info.BoolVarP(&info.ParamSummary, "params", "p", true, "Show the slicing parameter summary")
	info.BoolVarP(&info.Statistics, "stats", "s", true, "Show layer height statistics")
	info.BoolVarP(&info.LayerDetail, "layers", "l", false, "Show layer detail")

	info.SetInterspersed(false)

	return
}

func (info *InfoCommand) Filter(input *varislice.Plan) (output *varislice.Plan, err error) {
	params := &input.Params

	if info.ParamSummary {
		fmt.Printf("Layers: %v, object %.4g mm, layer height %.4g mm (%.4g..%.4g)\n",
			len(input.Layers), params.ObjectPrintZHeight(),
			params.LayerHeight, params.MinLayerHeight, params.MaxLayerHeight)
		fmt.Printf("First layer: %.4g mm", params.FirstObjectLayerHeight)
		if params.FirstObjectLayerBridging {
			fmt.Printf(", bridging")
		}
		fmt.Println()
		if params.HasRaft() {
			fmt.Printf("Raft: %v layers (%v base at %.4g mm, %v interface at %.4g mm, contact %.4g mm), object at %.4g mm\n",
				params.RaftLayers(),
				params.BaseRaftLayers, params.BaseRaftLayerHeight,
				params.InterfaceRaftLayers-1, params.InterfaceRaftLayerHeight,
				params.ContactRaftLayerHeight, params.ObjectPrintZMin)
		}
		if len(input.Ranges) > 0 {
			fmt.Printf("Overrides: %v height ranges\n", len(input.Ranges))
		}
		fmt.Printf("Profile: %v samples\n", len(input.Profile))
	}

	if info.Statistics && len(input.Layers) > 0 {
		heights := make([]float64, len(input.Layers))
		for n, layer := range input.Layers {
			heights[n] = layer.Height()
		}

		mean, stddev := stat.MeanStdDev(heights, nil)
		fmt.Printf("Heights: %.4g..%.4g mm, mean %.4g mm, stddev %.2g mm\n",
			floats.Min(heights), floats.Max(heights), mean, stddev)
	}

	if info.LayerDetail {
		for n, layer := range input.Layers {
			fmt.Printf("%d: %.4f..%.4f mm, %.4f mm\n", n, layer.Bottom, layer.Top, layer.Height())
		}
	}

	output = input

	return
}
