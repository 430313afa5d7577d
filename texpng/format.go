//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package texpng

import (
	"errors"
	"image/png"

	"github.com/spf13/pflag"

	"github.com/mpmel/varislice"
)

type TexPNGFormat struct {
	*pflag.FlagSet

	Rows int // Texture rows
	Cols int // Texture columns
}

func NewTexPNGFormatter(suffix string) (sf *TexPNGFormat) {
	flagSet := pflag.NewFlagSet(suffix, pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	sf = &TexPNGFormat{
		FlagSet: flagSet,
	}

	sf.IntVarP(&sf.Rows, "rows", "r", 16, "Texture rows")
	sf.IntVarP(&sf.Cols, "cols", "c", 64, "Texture columns")

	return
}

func (sf *TexPNGFormat) Encode(writer varislice.Writer, plan *varislice.Plan) (err error) {
	err = png.Encode(writer, plan.Texture(sf.Rows, sf.Cols))
	return
}

func (sf *TexPNGFormat) Decode(reader varislice.Reader, filesize int64) (plan *varislice.Plan, err error) {
	err = errors.New("PNG textures are output only")
	return
}
