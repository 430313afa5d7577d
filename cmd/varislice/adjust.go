//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package main

import (
	"github.com/spf13/pflag"

	"github.com/mpmel/varislice"
	"github.com/mpmel/varislice/internal/logger"
)

type AdjustCommand struct {
	*pflag.FlagSet

	Z      float64
	Delta  float64
	Band   float64
	Smooth bool
}

func NewAdjustCommand() (cmd *AdjustCommand) {
	cmd = &AdjustCommand{
		FlagSet: pflag.NewFlagSet("adjust", pflag.ContinueOnError),
	}

	cmd.Float64VarP(&cmd.Z, "z", "z", 0, "Center of the edit, in mm")
	cmd.Float64VarP(&cmd.Delta, "delta", "d", 0, "Layer height change, in mm")
	cmd.Float64VarP(&cmd.Band, "band", "b", 1.0, "Width of the edited band, in mm")
	cmd.BoolVarP(&cmd.Smooth, "smooth", "s", false, "Pull towards the nominal height instead of applying the delta")

	cmd.SetInterspersed(false)

	return
}

func (cmd *AdjustCommand) Filter(input *varislice.Plan) (output *varislice.Plan, err error) {
	mode := varislice.AdjustFree
	if cmd.Smooth {
		mode = varislice.AdjustSmooth
	}

	logger.Debugf("  adjust %+.4g mm at %.4g mm over %.4g mm", cmd.Delta, cmd.Z, cmd.Band)
	input.Profile.Adjust(input.Params, cmd.Z, cmd.Delta, cmd.Band, mode)
	input.Rebuild()

	output = input

	return
}
