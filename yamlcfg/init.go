//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

// Package yamlcfg handles input of YAML slicing plan files
package yamlcfg

import (
	"github.com/mpmel/varislice"
)

func init() {
	newFormatter := func(suffix string) varislice.Formatter { return NewYamlFormatter(suffix) }

	varislice.RegisterFormatter(".yaml", newFormatter)
	varislice.RegisterFormatter(".yml", newFormatter)
}
