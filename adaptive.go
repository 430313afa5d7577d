//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package varislice

import (
	"math"
)

// cuspTolerance is the maximum allowed distance from a corner of a
// rectangular extrusion to its chordal line, in mm.
//
// TODO: promote to ObjectConfig once the configuration surface settles.
const cuspTolerance = 0.2

// CuspOracle estimates the tallest layer starting at z that keeps the
// cusp error below maxCusp. The facet index returned by one call is
// handed back on the next, letting mesh backed oracles resume their
// facet walk instead of rescanning.
type CuspOracle interface {
	CuspHeight(z float64, maxCusp float64, facet int) (height float64, nextFacet int)
}

// CuspOracleFunc adapts a plain function to the CuspOracle interface.
type CuspOracleFunc func(z float64, maxCusp float64, facet int) (height float64, nextFacet int)

func (fn CuspOracleFunc) CuspHeight(z float64, maxCusp float64, facet int) (height float64, nextFacet int) {
	return fn(z, maxCusp, facet)
}

// AdaptiveProfile builds a layer height profile by querying the oracle
// at each successive layer boundary. Oracle heights are clamped into the
// printable band before use.
func AdaptiveProfile(params SlicingParameters, oracle CuspOracle) (profile Profile) {
	profile = append(profile, ProfilePoint{Z: 0, Height: params.FirstObjectLayerHeight})
	if params.FirstObjectLayerFixed() {
		profile = append(profile, ProfilePoint{
			Z:      params.FirstObjectLayerHeight,
			Height: params.FirstObjectLayerHeight,
		})
	}

	objectHeight := params.ObjectPrintZHeight()
	sliceZ := params.FirstObjectLayerHeight
	height := params.FirstObjectLayerHeight
	facet := 0
	for sliceZ-height <= objectHeight {
		height, facet = oracle.CuspHeight(sliceZ, cuspTolerance, facet)
		height = clamp(params.MinLayerHeight, params.MaxLayerHeight, height)

		profile = append(profile, ProfilePoint{Z: sliceZ, Height: height})
		sliceZ += height
		profile = append(profile, ProfilePoint{Z: sliceZ, Height: height})
	}

	// Close the profile at the object top with the first layer height.
	last := math.Max(params.FirstObjectLayerHeight, profile[len(profile)-1].Z)
	profile = append(profile,
		ProfilePoint{Z: last, Height: params.FirstObjectLayerHeight},
		ProfilePoint{Z: objectHeight, Height: params.FirstObjectLayerHeight})

	return
}
