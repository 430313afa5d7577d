//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package varislice

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProfileFromRanges(t *testing.T) {
	table := map[string]struct {
		ranges   []HeightRange
		expected Profile
	}{
		"empty": {
			ranges: nil,
			expected: Profile{
				{Z: 0, Height: 0.2}, {Z: 0.2, Height: 0.2},
				{Z: 0.2, Height: 0.2}, {Z: 1.0, Height: 0.2},
			},
		},
		"one override": {
			ranges: []HeightRange{
				{MinZ: 0.3, MaxZ: 0.6, Height: 0.1},
			},
			expected: Profile{
				{Z: 0, Height: 0.2}, {Z: 0.2, Height: 0.2},
				{Z: 0.2, Height: 0.2}, {Z: 0.3, Height: 0.2},
				{Z: 0.3, Height: 0.1}, {Z: 0.6, Height: 0.1},
				{Z: 0.6, Height: 0.2}, {Z: 1.0, Height: 0.2},
			},
		},
		"overlapping": {
			ranges: []HeightRange{
				{MinZ: 0.4, MaxZ: 0.8, Height: 0.25},
				{MinZ: 0.2, MaxZ: 0.6, Height: 0.1},
			},
			expected: Profile{
				{Z: 0, Height: 0.2}, {Z: 0.2, Height: 0.2},
				{Z: 0.2, Height: 0.1}, {Z: 0.6, Height: 0.1},
				{Z: 0.6, Height: 0.25}, {Z: 0.8, Height: 0.25},
				{Z: 0.8, Height: 0.2}, {Z: 1.0, Height: 0.2},
			},
		},
		"sliver dropped": {
			ranges: []HeightRange{
				{MinZ: 0.3, MaxZ: 0.30005, Height: 0.1},
			},
			expected: Profile{
				{Z: 0, Height: 0.2}, {Z: 0.2, Height: 0.2},
				{Z: 0.2, Height: 0.2}, {Z: 1.0, Height: 0.2},
			},
		},
		"clipped to top": {
			ranges: []HeightRange{
				{MinZ: 0.8, MaxZ: 5.0, Height: 0.25},
			},
			expected: Profile{
				{Z: 0, Height: 0.2}, {Z: 0.2, Height: 0.2},
				{Z: 0.2, Height: 0.2}, {Z: 0.8, Height: 0.2},
				{Z: 0.8, Height: 0.25}, {Z: 1.0, Height: 0.25},
			},
		},
	}

	params := testParams(1.0)
	for key, item := range table {
		profile := ProfileFromRanges(params, item.ranges)

		if diff := cmp.Diff(item.expected, profile, approx); diff != "" {
			t.Errorf("%v: profile mismatch (-expected +got):\n%v", key, diff)
			continue
		}

		if profile[0].Z != 0 {
			t.Errorf("%v: profile starts at %v, not zero", key, profile[0].Z)
		}
		if top := profile[len(profile)-1].Z; top != params.ObjectPrintZHeight() {
			t.Errorf("%v: profile ends at %v, object is %v", key, top, params.ObjectPrintZHeight())
		}
		for n := 1; n < len(profile); n++ {
			if profile[n-1].Z > profile[n].Z {
				t.Errorf("%v: sample %d: Z not monotonic", key, n)
			}
		}
	}
}

func TestProfileFromRangesUnfixedFirstLayer(t *testing.T) {
	object := testObjectConfig()
	object.RaftLayers = 2
	object.SupportMaterialContactDistance = 0
	params := NewSlicingParameters(testPrintConfig(), object, 1.0, object.Extruders)

	// A free first layer over a soluble raft gets no seed range.
	profile := ProfileFromRanges(params, nil)

	expected := Profile{
		{Z: 0, Height: 0.2}, {Z: 1.0, Height: 0.2},
	}
	if diff := cmp.Diff(expected, profile, approx); diff != "" {
		t.Errorf("profile mismatch (-expected +got):\n%v", diff)
	}
}
