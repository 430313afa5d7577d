//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

// Package varislice computes variable layer height profiles, layer
// stacks and their visualization textures for 3D print slicing.
package varislice

import (
	"math"
)

// Epsilon is the Z comparison tolerance, in mm.
const Epsilon = 1e-4

// Hard floor for the minimum layer height, in mm.
// TODO: promote to PrintConfig once the configuration surface settles.
const minLayerHeightFloor = 0.05

// SlicingParameters describes the vertical layout of a sliced object:
// nominal and first layer heights, the global height bounds, and the
// raft stack below the object.
type SlicingParameters struct {
	// Nominal layer height and the global bounds, in mm.
	LayerHeight    float64
	MinLayerHeight float64
	MaxLayerHeight float64

	// Raft stack, bottom up. The topmost interface layer is the contact
	// layer, so InterfaceRaftLayers includes it.
	BaseRaftLayers                 int
	InterfaceRaftLayers            int
	BaseRaftLayerHeight            float64
	InterfaceRaftLayerHeight       float64
	ContactRaftLayerHeight         float64
	ContactRaftLayerHeightBridging bool

	// First layer of the object itself, above the raft if any.
	FirstObjectLayerHeight   float64
	FirstObjectLayerBridging bool

	// Absolute Z range of the object, raft lift included.
	ObjectPrintZMin float64
	ObjectPrintZMax float64
}

// NewSlicingParameters derives the slicing parameters for one object from
// the print and object configuration. objectExtruders lists the zero-based
// extruders printing the object body; it may be empty.
func NewSlicingParameters(print PrintConfig, object ObjectConfig, objectHeight float64, objectExtruders []int) (params SlicingParameters) {
	firstLayerHeight := object.LayerHeight
	if object.FirstLayerHeight.Value > 0 {
		firstLayerHeight = object.FirstLayerHeight.AbsValue(object.LayerHeight)
	}

	supportDmr := print.NozzleDiameterAt(object.SupportMaterialExtruder - 1)
	interfaceDmr := print.NozzleDiameterAt(object.SupportMaterialInterfaceExtruder - 1)
	soluble := object.SupportMaterialContactDistance == 0

	params.LayerHeight = object.LayerHeight
	params.FirstObjectLayerHeight = firstLayerHeight
	params.ObjectPrintZMin = 0
	params.ObjectPrintZMax = objectHeight
	params.BaseRaftLayers = object.RaftLayers

	if params.BaseRaftLayers > 0 {
		params.InterfaceRaftLayers = (params.BaseRaftLayers + 1) / 2
		params.BaseRaftLayers -= params.InterfaceRaftLayers
		// Use as thick as possible layers for the intermediate raft.
		params.BaseRaftLayerHeight = math.Max(params.LayerHeight, 0.75*supportDmr)
		params.InterfaceRaftLayerHeight = math.Max(params.LayerHeight, 0.75*interfaceDmr)
		params.ContactRaftLayerHeight = math.Max(params.LayerHeight, 0.75*interfaceDmr)
		params.ContactRaftLayerHeightBridging = false
		params.FirstObjectLayerBridging = false
		if !soluble {
			// A non-soluble raft needs a bridged first object layer for a
			// clean separation, printed at the average object nozzle size.
			average := 0.0
			if len(objectExtruders) > 0 {
				for _, extruder := range objectExtruders {
					average += print.NozzleDiameterAt(extruder)
				}
				average /= float64(len(objectExtruders))
			}
			params.FirstObjectLayerHeight = average
			params.FirstObjectLayerBridging = true
		}
	}

	if params.HasRaft() {
		// Lift the object by the raft thickness plus the support contact gap.
		printZ := firstLayerHeight + object.SupportMaterialContactDistance
		if params.RaftLayers() == 1 {
			// Only the contact layer.
			params.ContactRaftLayerHeight = firstLayerHeight
		} else {
			// The first base layer is already carried by the first layer
			// height, the contact layer replaces the last interface layer.
			printZ += float64(params.BaseRaftLayers-1)*params.BaseRaftLayerHeight +
				float64(params.InterfaceRaftLayers-1)*params.InterfaceRaftLayerHeight +
				params.ContactRaftLayerHeight
		}
		params.ObjectPrintZMin = printZ
		params.ObjectPrintZMax += printZ
	}

	params.MinLayerHeight = math.Min(params.LayerHeight, firstLayerHeight)
	params.MaxLayerHeight = math.Max(params.LayerHeight, firstLayerHeight)

	params.MinLayerHeight = minLayerHeightFloor

	if len(objectExtruders) > 0 {
		// Cap the maximum layer height at 0.75 of the smallest object nozzle.
		minDmr := print.NozzleDiameterAt(objectExtruders[0])
		for _, extruder := range objectExtruders[1:] {
			minDmr = math.Min(minDmr, print.NozzleDiameterAt(extruder))
		}
		params.MaxLayerHeight = math.Max(params.MaxLayerHeight, 0.75*minDmr)
	}

	return
}

// HasRaft reports whether the object sits on a raft.
func (params *SlicingParameters) HasRaft() bool {
	return params.BaseRaftLayers > 0 || params.InterfaceRaftLayers > 0
}

// RaftLayers returns the total raft layer count, contact layer included.
func (params *SlicingParameters) RaftLayers() int {
	return params.BaseRaftLayers + params.InterfaceRaftLayers
}

// FirstObjectLayerFixed reports whether the first object layer height is
// pinned. Only a non-bridged layer over a raft may vary.
func (params *SlicingParameters) FirstObjectLayerFixed() bool {
	return !params.HasRaft() || params.FirstObjectLayerBridging
}

// ObjectPrintZHeight returns the object height without the raft lift.
func (params *SlicingParameters) ObjectPrintZHeight() float64 {
	return params.ObjectPrintZMax - params.ObjectPrintZMin
}
