//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package main

import (
	"fmt"
	"math"

	"github.com/spf13/pflag"

	"github.com/mpmel/varislice"
	"github.com/mpmel/varislice/internal/logger"
)

type AdaptiveCommand struct {
	*pflag.FlagSet

	Angle float64
}

func NewAdaptiveCommand() (cmd *AdaptiveCommand) {
	cmd = &AdaptiveCommand{
		FlagSet: pflag.NewFlagSet("adaptive", pflag.ContinueOnError),
	}

	cmd.Float64VarP(&cmd.Angle, "angle", "a", 30, "Surface tilt from vertical, in degrees")

	cmd.SetInterspersed(false)

	return
}

// slopeOracle is a demo stand-in for a mesh backed cusp oracle: one
// uniform surface tilted the given angle from vertical everywhere. The
// cusp of a layer against such a surface is height times the vertical
// component of the surface normal.
func slopeOracle(angle float64) varislice.CuspOracle {
	normalZ := math.Sin(angle * math.Pi / 180)

	return varislice.CuspOracleFunc(func(z float64, maxCusp float64, facet int) (height float64, nextFacet int) {
		nextFacet = facet
		if normalZ <= 0 {
			// A vertical wall has no staircase artifact.
			height = math.Inf(1)
			return
		}

		height = maxCusp / normalZ
		return
	})
}

func (cmd *AdaptiveCommand) Filter(input *varislice.Plan) (output *varislice.Plan, err error) {
	if cmd.Angle < 0 || cmd.Angle > 90 {
		err = fmt.Errorf("adaptive: --angle=%v out of 0..90", cmd.Angle)
		return
	}

	logger.Debugf("  adaptive rebuild at %v degrees from vertical", cmd.Angle)
	input.SetProfile(varislice.AdaptiveProfile(input.Params, slopeOracle(cmd.Angle)))

	output = input

	return
}
