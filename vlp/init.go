//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

// Package vlp handles input and output of binary variable layer plans
package vlp

import (
	"github.com/mpmel/varislice"
)

func init() {
	newFormatter := func(suffix string) varislice.Formatter { return NewVLPFormatter(suffix) }

	varislice.RegisterFormatter(".vlp", newFormatter)
}
