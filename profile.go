//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package varislice

import (
	"math"
)

// ProfilePoint is a single sample of a layer height profile.
type ProfilePoint struct {
	Z      float64 // Z of the sample, in mm
	Height float64 // Layer height at Z, in mm
}

// Profile is a piecewise linear map from Z to layer height. Two
// consecutive points with equal height describe a constant segment.
type Profile []ProfilePoint

// HeightAt evaluates the profile at z. Past the last sample the last
// height carries on; an empty profile evaluates to zero.
func (profile Profile) HeightAt(z float64) (height float64) {
	for i := 0; i < len(profile); i++ {
		if i+1 == len(profile) {
			height = profile[i].Height
			return
		}
		if profile[i+1].Z > z {
			z1 := profile[i].Z
			h1 := profile[i].Height
			z2 := profile[i+1].Z
			h2 := profile[i+1].Height
			height = lerp(h1, h2, (z-z1)/(z2-z1))
			return
		}
	}

	return
}

func lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

func clamp(low, high, value float64) float64 {
	return math.Max(low, math.Min(high, value))
}
