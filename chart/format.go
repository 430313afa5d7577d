//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package chart

import (
	"errors"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/pflag"

	"github.com/mpmel/varislice"
)

// RdBu palette matching the layer height texture
var heightColors = []string{
	"#b2182b", "#d6604d", "#f4a582", "#fddbc7",
	"#d1e5f0", "#92c5de", "#4393c3", "#2166ac",
}

type ChartFormat struct {
	*pflag.FlagSet
}

func NewChartFormatter(suffix string) (sf *ChartFormat) {
	flagSet := pflag.NewFlagSet(suffix, pflag.ContinueOnError)

	sf = &ChartFormat{
		FlagSet: flagSet,
	}

	sf.SetInterspersed(false)

	return
}

// PlanScatter builds the height over Z scatter of a plan, one series for
// the profile samples and one for the generated layers.
func PlanScatter(plan *varislice.Plan) (scatter *charts.Scatter) {
	params := &plan.Params

	profile := make([]opts.ScatterData, 0, len(plan.Profile))
	for _, point := range plan.Profile {
		profile = append(profile, opts.ScatterData{Value: []interface{}{point.Z, point.Height, point.Height}})
	}

	layers := make([]opts.ScatterData, 0, len(plan.Layers))
	for _, layer := range plan.Layers {
		mid := 0.5 * (layer.Bottom + layer.Top)
		layers = append(layers, opts.ScatterData{Value: []interface{}{mid, layer.Height(), layer.Height()}})
	}

	scatter = charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Layer height plan", Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Layer height profile",
			Subtitle: fmt.Sprintf("object %.4g mm, %d layers", params.ObjectPrintZHeight(), len(plan.Layers)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Name: "Z (mm)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "layer height (mm)", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(params.MinLayerHeight),
			Max:        float32(params.MaxLayerHeight),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: heightColors},
		}),
	)

	scatter.AddSeries("profile", profile, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))
	scatter.AddSeries("layers", layers, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))

	return
}

func (sf *ChartFormat) Encode(writer varislice.Writer, plan *varislice.Plan) (err error) {
	err = PlanScatter(plan).Render(writer)
	return
}

func (sf *ChartFormat) Decode(reader varislice.Reader, filesize int64) (plan *varislice.Plan, err error) {
	err = errors.New("charts are output only")
	return
}
