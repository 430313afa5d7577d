//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package main

import (
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/pflag"
	"golang.org/x/image/colornames"

	"github.com/mpmel/varislice"
)

type ShowCommand struct {
	*pflag.FlagSet

	Rows  int
	Cols  int
	Scale float64
}

func NewShowCommand() (cmd *ShowCommand) {
	cmd = &ShowCommand{
		FlagSet: pflag.NewFlagSet("show", pflag.ContinueOnError),
	}

	cmd.IntVarP(&cmd.Rows, "rows", "r", 16, "Texture rows")
	cmd.IntVarP(&cmd.Cols, "cols", "c", 64, "Texture columns")
	cmd.Float64VarP(&cmd.Scale, "scale", "s", 8, "Display scaling")

	cmd.SetInterspersed(false)

	return
}

func (cmd *ShowCommand) pixelRun(plan *varislice.Plan) {
	img := plan.Texture(cmd.Rows, cmd.Cols)
	size := img.Bounds().Size()

	cfg := pixelgl.WindowConfig{
		Title:  "Layer heights",
		Bounds: pixel.R(0, 0, float64(size.X)*cmd.Scale, float64(size.Y)*cmd.Scale),
		VSync:  true,
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		panic(err)
	}

	win.SetSmooth(true)

	pic := pixel.PictureDataFromImage(img)
	sprite := pixel.NewSprite(pic, pic.Bounds())

	mat := pixel.IM
	mat = mat.Scaled(pixel.ZV, cmd.Scale)
	mat = mat.Moved(win.Bounds().Center())

	for !win.Closed() {
		win.Clear(colornames.Wheat)
		sprite.Draw(win, mat)
		win.Update()
	}
}

func (cmd *ShowCommand) Filter(input *varislice.Plan) (output *varislice.Plan, err error) {
	pixelgl.Run(func() { cmd.pixelRun(input) })

	output = input

	return
}
