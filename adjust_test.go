//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package varislice

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func flatProfile(params SlicingParameters) Profile {
	return ProfileFromRanges(params, nil)
}

func TestAdjustFreeRaise(t *testing.T) {
	params := testParams(2.0)
	profile := flatProfile(params)

	profile.Adjust(params, 0.5, 0.1, 0.4, AdjustFree)

	expected := Profile{
		{Z: 0, Height: 0.2}, {Z: 0.2, Height: 0.2},
		{Z: 0.2, Height: 0.2}, {Z: 0.3, Height: 0.2},
		{Z: 0.4, Height: 0.25}, {Z: 0.5, Height: 0.3},
		{Z: 0.6, Height: 0.25}, {Z: 0.7, Height: 0.2},
		{Z: 2.0, Height: 0.2},
	}
	if diff := cmp.Diff(expected, profile, approx); diff != "" {
		t.Errorf("profile mismatch (-expected +got):\n%v", diff)
	}

	table := map[float64]float64{
		0.3: 0.2,
		0.5: 0.3,
		0.7: 0.2,
		1.5: 0.2,
	}
	for z, height := range table {
		if got := profile.HeightAt(z); math.Abs(got-height) > Epsilon {
			t.Errorf("z %v: expected height %v, got %v", z, height, got)
		}
	}
}

func TestAdjustFreeLower(t *testing.T) {
	params := testParams(2.0)
	profile := flatProfile(params)

	profile.Adjust(params, 1.0, -0.1, 0.4, AdjustFree)

	if got := profile.HeightAt(1.0); math.Abs(got-0.1) > Epsilon {
		t.Errorf("expected height 0.1 at the center, got %v", got)
	}
	if got := profile.HeightAt(1.5); math.Abs(got-0.2) > Epsilon {
		t.Errorf("expected nominal height outside the band, got %v", got)
	}
}

func TestAdjustZeroDelta(t *testing.T) {
	params := testParams(2.0)
	profile := flatProfile(params)

	profile.Adjust(params, 0.5, 0, 0.4, AdjustFree)

	for z := 0.0; z <= 2.0; z += 0.05 {
		if got := profile.HeightAt(z); math.Abs(got-0.2) > Epsilon {
			t.Errorf("z %v: height %v drifted from 0.2", z, got)
		}
	}
}

func TestAdjustOutOfSpan(t *testing.T) {
	params := testParams(2.0)
	profile := flatProfile(params)
	original := append(Profile{}, profile...)

	// Below the fixed first layer and above the object top.
	profile.Adjust(params, 0.1, 0.1, 0.4, AdjustFree)
	profile.Adjust(params, 2.5, 0.1, 0.4, AdjustFree)

	if diff := cmp.Diff(original, profile); diff != "" {
		t.Errorf("out of span edit changed the profile:\n%v", diff)
	}
}

func TestAdjustAtBound(t *testing.T) {
	params := testParams(2.0)
	profile := flatProfile(params)

	// Saturate at the maximum, then try to raise further.
	profile.Adjust(params, 0.5, 0.2, 0.4, AdjustFree)
	saturated := append(Profile{}, profile...)

	profile.Adjust(params, 0.5, 0.1, 0.4, AdjustFree)

	if diff := cmp.Diff(saturated, profile); diff != "" {
		t.Errorf("edit at the bound changed the profile:\n%v", diff)
	}
}

func TestAdjustSmooth(t *testing.T) {
	params := testParams(2.0)
	profile := flatProfile(params)

	profile.Adjust(params, 0.5, 0.1, 0.4, AdjustFree)
	profile.Adjust(params, 0.5, 0.2, 0.4, AdjustSmooth)

	// Smoothing pulls the bump back to the nominal height without ever
	// crossing it.
	for z := 0.3; z <= 0.7; z += 0.05 {
		got := profile.HeightAt(z)
		if got < 0.2-Epsilon {
			t.Errorf("z %v: smoothing overshot nominal, height %v", z, got)
		}
		if got > 0.2+Epsilon {
			t.Errorf("z %v: smoothing left height %v above nominal", z, got)
		}
	}
}

func TestAdjustSmoothNoop(t *testing.T) {
	params := testParams(2.0)
	profile := flatProfile(params)
	original := append(Profile{}, profile...)

	// Already at the nominal height everywhere.
	profile.Adjust(params, 0.5, 0.1, 0.4, AdjustSmooth)

	if diff := cmp.Diff(original, profile); diff != "" {
		t.Errorf("smoothing a nominal profile changed it:\n%v", diff)
	}
}

func TestAdjustInvariants(t *testing.T) {
	params := testParams(2.0)
	profile := flatProfile(params)

	edits := []struct {
		z, delta, band float64
		mode           AdjustMode
	}{
		{0.5, 0.1, 0.4, AdjustFree},
		{0.6, -0.2, 0.6, AdjustFree},
		{1.3, 0.05, 1.0, AdjustFree},
		{0.6, 0.1, 0.8, AdjustSmooth},
		{1.9, 0.1, 0.4, AdjustFree},
	}

	for _, edit := range edits {
		profile.Adjust(params, edit.z, edit.delta, edit.band, edit.mode)

		if profile[0].Z != 0 {
			t.Fatalf("edit at %v: profile starts at %v", edit.z, profile[0].Z)
		}
		for n := 1; n < len(profile); n++ {
			if profile[n-1].Z > profile[n].Z {
				t.Fatalf("edit at %v: sample %d: Z not monotonic", edit.z, n)
			}
		}
		for n, point := range profile {
			if point.Height < params.MinLayerHeight-Epsilon || point.Height > params.MaxLayerHeight+Epsilon {
				t.Fatalf("edit at %v: sample %d: height %v outside %v..%v",
					edit.z, n, point.Height, params.MinLayerHeight, params.MaxLayerHeight)
			}
		}
	}
}
