//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package varislice

// Layer is one printed slab, bounded by its bottom and top print Z.
type Layer struct {
	Bottom float64 // mm
	Top    float64 // mm
}

func (layer *Layer) Height() float64 {
	return layer.Top - layer.Bottom
}

// GenerateLayers discretizes a layer height profile into a stack of
// layer boundaries. Each layer's height is found by probing the profile
// at the candidate midpoint, seeded with the minimum layer height.
func GenerateLayers(params SlicingParameters, profile Profile) (layers []Layer) {
	printZ := 0.0

	if params.FirstObjectLayerFixed() {
		printZ = params.FirstObjectLayerHeight
		layers = append(layers, Layer{Bottom: 0, Top: printZ})
	}

	objectHeight := params.ObjectPrintZHeight()
	idx := 0
	sliceZ := printZ + 0.5*params.MinLayerHeight
	for sliceZ < objectHeight {
		height := params.MinLayerHeight
		if idx < len(profile) {
			next := idx + 1
			for next < len(profile) && profile[next].Z <= sliceZ {
				idx = next
				next++
			}
			z1 := profile[idx].Z
			h1 := profile[idx].Height
			height = h1
			if next < len(profile) {
				z2 := profile[next].Z
				h2 := profile[next].Height
				height = lerp(h1, h2, (sliceZ-z1)/(z2-z1))
			}
		}

		// Re-probe at the midpoint of the refined height; a layer whose
		// midpoint falls past the object top is dropped.
		sliceZ = printZ + 0.5*height
		if sliceZ >= objectHeight {
			break
		}

		layers = append(layers, Layer{Bottom: printZ, Top: printZ + height})
		printZ += height
		sliceZ = printZ + 0.5*params.MinLayerHeight
	}

	return
}
