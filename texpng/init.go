//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

// Package texpng writes the layer height texture of a plan as a PNG
package texpng

import (
	"github.com/mpmel/varislice"
)

func init() {
	newFormatter := func(suffix string) varislice.Formatter { return NewTexPNGFormatter(suffix) }

	varislice.RegisterFormatter(".png", newFormatter)
}
