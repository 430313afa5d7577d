//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package main

import (
	"github.com/spf13/pflag"

	"github.com/mpmel/varislice"
	"github.com/mpmel/varislice/internal/logger"
)

type RangesCommand struct {
	*pflag.FlagSet

	Ranges  []string
	Replace bool
}

func NewRangesCommand() (cmd *RangesCommand) {
	cmd = &RangesCommand{
		FlagSet: pflag.NewFlagSet("ranges", pflag.ContinueOnError),
	}

	cmd.StringArrayVarP(&cmd.Ranges, "range", "r", nil, "Height range override LO:HI:HEIGHT, repeatable")
	cmd.BoolVarP(&cmd.Replace, "replace", "R", false, "Drop the existing overrides first")

	cmd.SetInterspersed(false)

	return
}

func (cmd *RangesCommand) Filter(input *varislice.Plan) (output *varislice.Plan, err error) {
	ranges := input.Ranges
	if cmd.Replace {
		ranges = nil
	}

	for _, spec := range cmd.Ranges {
		var item varislice.HeightRange
		item, err = parseHeightRange(spec)
		if err != nil {
			return
		}
		logger.Debugf("  range %.4g..%.4g mm at %.4g mm", item.MinZ, item.MaxZ, item.Height)
		ranges = append(ranges, item)
	}

	input.SetRanges(ranges)

	output = input

	return
}
