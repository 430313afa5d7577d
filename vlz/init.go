//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

// Package vlz handles input and output of zipped variable layer plans
// with preview images
package vlz

import (
	"github.com/mpmel/varislice"
)

func init() {
	newFormatter := func(suffix string) varislice.Formatter { return NewVLZFormatter(suffix) }

	varislice.RegisterFormatter(".vlz", newFormatter)
}
