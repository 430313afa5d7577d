//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package yamlcfg

import (
	"errors"
	"io"

	"github.com/spf13/pflag"

	"github.com/mpmel/varislice"
)

type YamlFormat struct {
	*pflag.FlagSet
}

func NewYamlFormatter(suffix string) (sf *YamlFormat) {
	flagSet := pflag.NewFlagSet(suffix, pflag.ContinueOnError)

	sf = &YamlFormat{
		FlagSet: flagSet,
	}

	sf.SetInterspersed(false)

	return
}

func (sf *YamlFormat) Decode(reader varislice.Reader, filesize int64) (plan *varislice.Plan, err error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return
	}

	cfg, err := varislice.ParsePlanConfig(data)
	if err != nil {
		return
	}

	plan, err = cfg.Plan()
	return
}

func (sf *YamlFormat) Encode(writer varislice.Writer, plan *varislice.Plan) (err error) {
	err = errors.New("YAML plans are input only")
	return
}
