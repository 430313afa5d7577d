//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package varislice

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func constantOracle(height float64) CuspOracle {
	return CuspOracleFunc(func(z float64, maxCusp float64, facet int) (float64, int) {
		return height, facet
	})
}

func TestAdaptiveProfileConstant(t *testing.T) {
	params := testParams(1.0)
	profile := AdaptiveProfile(params, constantOracle(0.25))

	expected := Profile{
		{Z: 0, Height: 0.2}, {Z: 0.2, Height: 0.2},
		{Z: 0.2, Height: 0.25}, {Z: 0.45, Height: 0.25},
		{Z: 0.45, Height: 0.25}, {Z: 0.7, Height: 0.25},
		{Z: 0.7, Height: 0.25}, {Z: 0.95, Height: 0.25},
		{Z: 0.95, Height: 0.25}, {Z: 1.2, Height: 0.25},
		{Z: 1.2, Height: 0.25}, {Z: 1.45, Height: 0.25},
		{Z: 1.45, Height: 0.2}, {Z: 1.0, Height: 0.2},
	}
	if diff := cmp.Diff(expected, profile, approx); diff != "" {
		t.Errorf("profile mismatch (-expected +got):\n%v", diff)
	}
}

func TestAdaptiveProfileClamping(t *testing.T) {
	params := testParams(1.0)

	table := map[string]struct {
		oracle   float64
		expected float64
	}{
		"too tall":  {oracle: 10.0, expected: params.MaxLayerHeight},
		"too short": {oracle: 0.001, expected: params.MinLayerHeight},
	}

	for key, item := range table {
		profile := AdaptiveProfile(params, constantOracle(item.oracle))

		// Samples between the first layer and the top sentinel carry the
		// clamped oracle height.
		if height := profile[2].Height; height != item.expected {
			t.Errorf("%v: expected height %v, got %v", key, item.expected, height)
		}

		for n, point := range profile {
			if point.Height < params.MinLayerHeight || point.Height > params.MaxLayerHeight {
				t.Errorf("%v: sample %d: height %v outside %v..%v",
					key, n, point.Height, params.MinLayerHeight, params.MaxLayerHeight)
			}
		}
	}
}

func TestAdaptiveProfileTop(t *testing.T) {
	params := testParams(1.0)
	profile := AdaptiveProfile(params, constantOracle(0.25))

	last := profile[len(profile)-1]
	if last.Z != params.ObjectPrintZHeight() {
		t.Errorf("profile ends at %v, object is %v", last.Z, params.ObjectPrintZHeight())
	}
	if last.Height != params.FirstObjectLayerHeight {
		t.Errorf("top sentinel height %v, expected %v", last.Height, params.FirstObjectLayerHeight)
	}
}

func TestAdaptiveProfileFacetHint(t *testing.T) {
	params := testParams(1.0)

	expected := 0
	oracle := CuspOracleFunc(func(z float64, maxCusp float64, facet int) (float64, int) {
		if facet != expected {
			t.Errorf("z %v: expected facet hint %v, got %v", z, expected, facet)
		}
		if maxCusp != cuspTolerance {
			t.Errorf("z %v: expected cusp tolerance %v, got %v", z, cuspTolerance, maxCusp)
		}
		expected++
		return 0.25, expected
	})

	AdaptiveProfile(params, oracle)

	if expected == 0 {
		t.Errorf("oracle never consulted")
	}
}
