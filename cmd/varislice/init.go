//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package main

import (
	"github.com/mpmel/varislice"
)

func init() {
	newPlanFormatter := func(suffix string) varislice.Formatter { return NewPlanFormatter() }

	varislice.RegisterFormatter("plan", newPlanFormatter)
}
