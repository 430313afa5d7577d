//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package varislice

import (
	"image"
)

// Plan bundles the derived slicing parameters with the height profile
// and the layer stack generated from it.
type Plan struct {
	Params  SlicingParameters
	Ranges  []HeightRange `json:",omitempty"`
	Profile Profile
	Layers  []Layer
}

// Rebuild regenerates the layer stack after a profile change.
func (plan *Plan) Rebuild() {
	plan.Layers = GenerateLayers(plan.Params, plan.Profile)
}

// SetRanges replaces the range overrides and rebuilds the profile and
// the layer stack from them.
func (plan *Plan) SetRanges(ranges []HeightRange) {
	plan.Ranges = ranges
	plan.Profile = ProfileFromRanges(plan.Params, ranges)
	plan.Rebuild()
}

// SetProfile installs a profile not derived from ranges, such as an
// adaptive one, and rebuilds the layer stack.
func (plan *Plan) SetProfile(profile Profile) {
	plan.Ranges = nil
	plan.Profile = profile
	plan.Rebuild()
}

// Texture rasterizes the plan's layer stack into an RGBA image.
func (plan *Plan) Texture(rows, cols int) *image.RGBA {
	return TextureImage(plan.Params, plan.Layers, rows, cols)
}
