//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/pflag"

	"github.com/mpmel/varislice"
	"github.com/mpmel/varislice/internal/logger"

	_ "github.com/mpmel/varislice/chart"
	_ "github.com/mpmel/varislice/texpng"
	_ "github.com/mpmel/varislice/vlp"
	_ "github.com/mpmel/varislice/vlz"
	_ "github.com/mpmel/varislice/yamlcfg"
)

var param struct {
	verbose int
	logFile string
}

func init() {
	pflag.CountVarP(&param.verbose, "verbose", "v", "Verbosity of logging (repeatable)")
	pflag.StringVar(&param.logFile, "log-file", "", "Also log to a rotated file")

	pflag.CommandLine.SetInterspersed(false)
	pflag.Usage = Usage
}

// A command transforming a plan in the argument chain
type PlanFilter interface {
	Parse(args []string) (err error)
	Args() (args []string)
	PrintDefaults()

	Filter(input *varislice.Plan) (output *varislice.Plan, err error)
}

type PlanCommand struct {
	NewCommand  func() PlanFilter
	Description string
}

var commandMap = map[string]PlanCommand{
	"ranges": {
		NewCommand:  func() PlanFilter { return NewRangesCommand() },
		Description: "Replace or extend the height range overrides",
	},
	"adaptive": {
		NewCommand:  func() PlanFilter { return NewAdaptiveCommand() },
		Description: "Rebuild the profile adaptively from a surface model",
	},
	"adjust": {
		NewCommand:  func() PlanFilter { return NewAdjustCommand() },
		Description: "Edit the profile around a Z with a cosine band",
	},
	"info": {
		NewCommand:  func() PlanFilter { return NewInfoCommand() },
		Description: "Show plan summary and statistics",
	},
	"check": {
		NewCommand:  func() PlanFilter { return NewCheckCommand() },
		Description: "Validate the profile and the layer stack",
	},
	"show": {
		NewCommand:  func() PlanFilter { return NewShowCommand() },
		Description: "Display the layer height texture in a window",
	},
}

func Usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "  %s [options] INFILE [command [options]]... [OUTFILE [options]]...\n", os.Args[0])
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr)
	pflag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")

	keys := []string{}
	for key := range commandMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		item := commandMap[key]
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "  %-12s %s\n", key, item.Description)
		item.NewCommand().PrintDefaults()
	}

	varislice.FormatterUsage()
	varislice.PrintPrinters()
}

func evaluate(args []string) (err error) {
	var plan *varislice.Plan

	for len(args) > 0 {
		name := args[0]
		args = args[1:]

		item, found := commandMap[name]
		if found {
			command := item.NewCommand()
			err = command.Parse(args)
			if err != nil {
				return
			}
			args = command.Args()

			if plan == nil {
				err = fmt.Errorf("%s: no plan loaded yet", name)
				return
			}

			logger.Debugf("command %s", name)
			plan, err = command.Filter(plan)
			if err != nil {
				return
			}

			continue
		}

		var format *varislice.Format
		format, err = varislice.NewFormat(name, args)
		if err != nil {
			return
		}
		args = format.Args()

		if plan == nil {
			logger.Infof("%s: reading", name)
			plan, err = format.Plan()
		} else {
			logger.Infof("%s: writing", name)
			err = format.SetPlan(plan)
		}
		if err != nil {
			return
		}
	}

	if plan == nil {
		err = fmt.Errorf("no plan specified")
		return
	}

	return
}

func main() {
	pflag.Parse()

	level := "warn"
	switch {
	case param.verbose == 1:
		level = "info"
	case param.verbose > 1:
		level = "debug"
	}

	logger.Init(level, param.logFile)
	defer logger.Sync()

	args := pflag.Args()
	if len(args) == 0 {
		Usage()
		os.Exit(1)
	}

	err := evaluate(args)
	if err != nil {
		logger.Fatalf("%v", err)
	}
}
