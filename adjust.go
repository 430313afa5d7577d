//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package varislice

import (
	"fmt"
	"math"
)

// How Adjust applies its delta inside the band: AdjustFree raises or
// lowers the profile, AdjustSmooth pulls it towards the nominal layer
// height.
type AdjustMode uint

const (
	AdjustFree = AdjustMode(iota)
	AdjustSmooth
)

// Spacing of the samples the edited band is rebuilt from, in mm.
const adjustStep = 0.1

// Adjust edits the profile around z, spreading the height delta over a
// band of the given width with a raised cosine falloff. The profile is
// densified inside the band and must enter well formed; the edit keeps
// it within the printable height band.
func (profile *Profile) Adjust(params SlicingParameters, z, delta, bandWidth float64, mode AdjustMode) {
	// The first object layer takes no edits when its height is fixed.
	spanLo := 0.0
	if params.FirstObjectLayerFixed() {
		spanLo = params.FirstObjectLayerHeight
	}
	spanHi := params.ObjectPrintZHeight()
	if z < spanLo || z > spanHi {
		return
	}

	old := *profile
	if len(old) < 2 {
		panic(fmt.Sprintf("adjust: profile of %d samples", len(old)))
	}

	// 1) The current layer thickness at z.
	current := old.HeightAt(z)

	// 2) Is it possible to apply the delta?
	switch mode {
	case AdjustSmooth:
		delta = math.Abs(delta)
		delta = math.Min(delta, math.Abs(params.LayerHeight-current))
		if delta < Epsilon {
			return
		}
	default:
		if delta > 0 {
			if current >= params.MaxLayerHeight-Epsilon {
				return
			}
			delta = math.Min(delta, params.MaxLayerHeight-current)
		} else {
			if current <= params.MinLayerHeight+Epsilon {
				return
			}
			delta = math.Max(delta, params.MinLayerHeight-current)
		}
	}

	// 3) Densify the profile inside z +- bandWidth/2, dropping the
	// samples it replaces.
	lo := math.Max(spanLo, z-0.5*bandWidth)
	hi := math.Min(spanHi, z+0.5*bandWidth)

	i := 0
	for i < len(old) && old[i].Z < lo {
		i++
	}
	if i > 0 {
		i--
	}

	adjusted := make(Profile, 0, len(old))
	adjusted = append(adjusted, old[:i+1]...)

	for zz := lo; zz < hi; zz += adjustStep {
		next := i + 1
		z1 := old[i].Z
		h1 := old[i].Height
		height := h1
		if next < len(old) {
			z2 := old[next].Z
			h2 := old[next].Height
			height = lerp(h1, h2, (zz-z1)/(z2-z1))
		}

		weight := 0.0
		if math.Abs(zz-z) < 0.5*bandWidth {
			weight = 0.5 + 0.5*math.Cos(2*math.Pi*(zz-z)/bandWidth)
		}

		switch mode {
		case AdjustSmooth:
			diff := height - params.LayerHeight
			step := weight * delta
			if math.Abs(diff) > step {
				if diff > 0 {
					step = -step
				}
			} else {
				step = -diff
			}
			height += step
		default:
			height += weight * delta
		}

		// Avoid entering a too short segment.
		if adjusted[len(adjusted)-1].Z+Epsilon < zz {
			adjusted = append(adjusted, ProfilePoint{
				Z:      zz,
				Height: clamp(params.MinLayerHeight, params.MaxLayerHeight, height),
			})
		}

		i = next
		for i < len(old) && old[i].Z < zz+adjustStep {
			i++
		}
		if i > 0 {
			i--
		}
	}

	// 4) Stitch the remainder of the old profile back on, bridging a
	// wide gap with one sample at the remainder's height.
	i++
	if i < len(old) {
		if adjusted[len(adjusted)-1].Z+adjustStep < old[i].Z {
			adjusted = append(adjusted, ProfilePoint{
				Z:      adjusted[len(adjusted)-1].Z + adjustStep,
				Height: old[i].Height,
			})
		}
		adjusted = append(adjusted, old[i:]...)
	}

	if len(adjusted) < 2 {
		panic(fmt.Sprintf("adjust: profile shrank to %d samples", len(adjusted)))
	}
	if adjusted[0].Z != 0 {
		panic(fmt.Sprintf("adjust: profile starts at %v, not zero", adjusted[0].Z))
	}
	for k := 1; k < len(adjusted); k++ {
		if adjusted[k-1].Z > adjusted[k].Z {
			panic(fmt.Sprintf("adjust: profile Z not monotonic at sample %d", k))
		}
	}
	for k, point := range adjusted {
		if point.Height <= params.MinLayerHeight-Epsilon || point.Height >= params.MaxLayerHeight+Epsilon {
			panic(fmt.Sprintf("adjust: height %v out of bounds at sample %d", point.Height, k))
		}
	}

	*profile = adjusted
}
