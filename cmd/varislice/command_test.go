//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package main

import (
	"testing"

	"github.com/mpmel/varislice"
)

func TestParseHeightRange(t *testing.T) {
	table := map[string]struct {
		expected varislice.HeightRange
		fails    bool
	}{
		"0.3:0.6:0.1":   {expected: varislice.HeightRange{MinZ: 0.3, MaxZ: 0.6, Height: 0.1}},
		"0 : 1 : 0.25":  {expected: varislice.HeightRange{MinZ: 0, MaxZ: 1, Height: 0.25}},
		"0.3:0.6":       {fails: true},
		"0.3:0.6:0.1:2": {fails: true},
		"lo:hi:h":       {fails: true},
	}

	for input, item := range table {
		got, err := parseHeightRange(input)
		if item.fails {
			if err == nil {
				t.Errorf("%v: expected an error", input)
			}
			continue
		}
		if err != nil {
			t.Errorf("%v: %v", input, err)
			continue
		}
		if got != item.expected {
			t.Errorf("%v: expected %+v, got %+v", input, item.expected, got)
		}
	}
}

func testPlan(t *testing.T) (plan *varislice.Plan) {
	cfg := varislice.DefaultPlanConfig()
	cfg.Height = 1.0

	plan, err := cfg.Plan()
	if err != nil {
		t.Fatalf("plan: %v", err)
	}

	return
}

func TestCheckPlan(t *testing.T) {
	plan := testPlan(t)

	if err := checkProfile(&plan.Params, plan.Profile); err != nil {
		t.Errorf("profile: %v", err)
	}
	if err := checkLayers(&plan.Params, plan.Layers); err != nil {
		t.Errorf("layers: %v", err)
	}
}

func TestCheckBadProfile(t *testing.T) {
	plan := testPlan(t)

	table := map[string]varislice.Profile{
		"too short":    {{Z: 0, Height: 0.2}},
		"nonzero base": {{Z: 0.1, Height: 0.2}, {Z: 1.0, Height: 0.2}},
		"z reversal": {
			{Z: 0, Height: 0.2}, {Z: 0.5, Height: 0.2},
			{Z: 0.4, Height: 0.2}, {Z: 1.0, Height: 0.2},
		},
		"height out of bounds": {
			{Z: 0, Height: 0.2}, {Z: 1.0, Height: 0.45},
		},
	}

	for key, profile := range table {
		if err := checkProfile(&plan.Params, profile); err == nil {
			t.Errorf("%v: accepted", key)
		}
	}
}

func TestCheckBadLayers(t *testing.T) {
	plan := testPlan(t)

	table := map[string][]varislice.Layer{
		"empty":        {},
		"nonzero base": {{Bottom: 0.1, Top: 0.3}},
		"gap": {
			{Bottom: 0, Top: 0.2},
			{Bottom: 0.3, Top: 0.5},
		},
		"short stack": {
			{Bottom: 0, Top: 0.2},
		},
	}

	for key, layers := range table {
		if err := checkLayers(&plan.Params, layers); err == nil {
			t.Errorf("%v: accepted", key)
		}
	}
}

func TestPlanFormatter(t *testing.T) {
	pf := NewPlanFormatter()
	if err := pf.Parse([]string{"--height", "1.0", "--range", "0.3:0.6:0.1"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	plan, err := pf.Decode(nil, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if plan.Params.ObjectPrintZHeight() != 1.0 {
		t.Errorf("object height %v, expected 1.0", plan.Params.ObjectPrintZHeight())
	}
	if len(plan.Ranges) != 1 {
		t.Errorf("expected 1 range, got %v", len(plan.Ranges))
	}
	if got := plan.Profile.HeightAt(0.45); got != 0.1 {
		t.Errorf("height at 0.45: %v, expected the override", got)
	}
}
