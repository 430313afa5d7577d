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

type CheckCommand struct {
	*pflag.FlagSet
}

func NewCheckCommand() (cmd *CheckCommand) {
	cmd = &CheckCommand{
		FlagSet: pflag.NewFlagSet("check", pflag.ContinueOnError),
	}

	cmd.SetInterspersed(false)

	return
}

func checkProfile(params *varislice.SlicingParameters, profile varislice.Profile) (err error) {
	if len(profile) < 2 {
		err = fmt.Errorf("profile of %d samples", len(profile))
		return
	}

	if profile[0].Z != 0 {
		err = fmt.Errorf("profile starts at %v mm, not zero", profile[0].Z)
		return
	}

	for n, point := range profile {
		if n > 0 && point.Z < profile[n-1].Z {
			err = fmt.Errorf("profile sample %d: Z %v mm below the sample before it", n, point.Z)
			return
		}
		if point.Height < params.MinLayerHeight-varislice.Epsilon ||
			point.Height > params.MaxLayerHeight+varislice.Epsilon {
			err = fmt.Errorf("profile sample %d: height %v mm outside %v..%v",
				n, point.Height, params.MinLayerHeight, params.MaxLayerHeight)
			return
		}
	}

	return
}

func checkLayers(params *varislice.SlicingParameters, layers []varislice.Layer) (err error) {
	if len(layers) == 0 {
		err = fmt.Errorf("no layers")
		return
	}

	if layers[0].Bottom != 0 {
		err = fmt.Errorf("layer 0: bottom at %v mm, not zero", layers[0].Bottom)
		return
	}

	covered := 0.0
	for n, layer := range layers {
		if n > 0 && layer.Bottom != layers[n-1].Top {
			err = fmt.Errorf("layer %d: bottom %v mm does not meet the layer below at %v mm",
				n, layer.Bottom, layers[n-1].Top)
			return
		}
		height := layer.Height()
		if height < params.MinLayerHeight-varislice.Epsilon ||
			height > params.MaxLayerHeight+varislice.Epsilon {
			err = fmt.Errorf("layer %d: height %v mm outside %v..%v",
				n, height, params.MinLayerHeight, params.MaxLayerHeight)
			return
		}
		covered += height
	}

	// The generator may overshoot the object top by up to half a layer
	// and undershoot by half a minimum layer.
	if math.Abs(covered-params.ObjectPrintZHeight()) > 0.5*params.MaxLayerHeight+varislice.Epsilon {
		err = fmt.Errorf("layer stack covers %v mm of a %v mm object", covered, params.ObjectPrintZHeight())
		return
	}

	return
}

func (cmd *CheckCommand) Filter(input *varislice.Plan) (output *varislice.Plan, err error) {
	err = checkProfile(&input.Params, input.Profile)
	if err != nil {
		err = fmt.Errorf("check: %w", err)
		return
	}

	err = checkLayers(&input.Params, input.Layers)
	if err != nil {
		err = fmt.Errorf("check: %w", err)
		return
	}

	logger.Infof("check: %d profile samples, %d layers ok", len(input.Profile), len(input.Layers))

	output = input

	return
}
