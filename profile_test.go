//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package varislice

import (
	"math"
	"testing"
)

func TestProfileHeightAt(t *testing.T) {
	profile := Profile{
		{Z: 0, Height: 0.2}, {Z: 0.2, Height: 0.2},
		{Z: 0.2, Height: 0.1}, {Z: 0.6, Height: 0.3},
	}

	table := map[string]struct {
		profile  Profile
		z        float64
		expected float64
	}{
		"empty":       {Profile{}, 0.5, 0},
		"single":      {Profile{{Z: 0, Height: 0.15}}, 3.0, 0.15},
		"flat":        {profile, 0.1, 0.2},
		"step start":  {profile, 0.2, 0.1},
		"interpolate": {profile, 0.4, 0.2},
		"past end":    {profile, 2.0, 0.3},
	}

	for key, item := range table {
		if got := item.profile.HeightAt(item.z); math.Abs(got-item.expected) > 1e-12 {
			t.Errorf("%v: expected %v, got %v", key, item.expected, got)
		}
	}
}
