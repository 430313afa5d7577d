//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package varislice

import (
	"math"
	"sort"
)

// ProfileFromRanges builds a layer height profile from a set of height
// range overrides, filling the spans in between with the nominal layer
// height. Overlapping ranges are trimmed one by the other in (MinZ, MaxZ)
// order, earlier ranges winning.
func ProfileFromRanges(params SlicingParameters, ranges []HeightRange) (profile Profile) {
	// Trim the ranges to make them non overlapping. A fixed first object
	// layer takes part as a range of its own, so user ranges cannot cut
	// into it.
	trimmed := make([]HeightRange, 0, len(ranges)+1)
	if params.FirstObjectLayerFixed() {
		trimmed = append(trimmed, HeightRange{
			MinZ:   0,
			MaxZ:   params.FirstObjectLayerHeight,
			Height: params.FirstObjectLayerHeight,
		})
	}

	sorted := make([]HeightRange, len(ranges))
	copy(sorted, ranges)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].MinZ != sorted[j].MinZ {
			return sorted[i].MinZ < sorted[j].MinZ
		}
		return sorted[i].MaxZ < sorted[j].MaxZ
	})

	objectHeight := params.ObjectPrintZHeight()
	for _, item := range sorted {
		lo := item.MinZ
		hi := math.Min(item.MaxZ, objectHeight)
		if len(trimmed) > 0 {
			lo = math.Max(lo, trimmed[len(trimmed)-1].MaxZ)
		}
		if lo+Epsilon < hi {
			// Too narrow ranges are dropped.
			trimmed = append(trimmed, HeightRange{MinZ: lo, MaxZ: hi, Height: item.Height})
		}
	}

	// Convert the trimmed ranges to a height profile.
	for _, item := range trimmed {
		lastZ := 0.0
		if len(profile) > 0 {
			lastZ = profile[len(profile)-1].Z
		}
		if item.MinZ > lastZ+Epsilon {
			// Insert a step of nominal layer height.
			profile = append(profile,
				ProfilePoint{Z: lastZ, Height: params.LayerHeight},
				ProfilePoint{Z: item.MinZ, Height: params.LayerHeight})
		}
		// Insert a step of the overridden layer height.
		profile = append(profile,
			ProfilePoint{Z: item.MinZ, Height: item.Height},
			ProfilePoint{Z: item.MaxZ, Height: item.Height})
	}

	lastZ := 0.0
	if len(profile) > 0 {
		lastZ = profile[len(profile)-1].Z
	}
	if lastZ < objectHeight {
		// Insert a step of nominal layer height up to the object top.
		profile = append(profile,
			ProfilePoint{Z: lastZ, Height: params.LayerHeight},
			ProfilePoint{Z: objectHeight, Height: params.LayerHeight})
	}

	return
}
