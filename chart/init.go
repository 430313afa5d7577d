//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

// Package chart writes a plan's profile and layer stack as an HTML
// scatter chart
package chart

import (
	"github.com/mpmel/varislice"
)

func init() {
	newFormatter := func(suffix string) varislice.Formatter { return NewChartFormatter(suffix) }

	varislice.RegisterFormatter(".html", newFormatter)
}
