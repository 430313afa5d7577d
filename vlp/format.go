//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package vlp

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-restruct/restruct"
	"github.com/spf13/pflag"

	"github.com/mpmel/varislice"
)

const (
	defaultHeaderMagic = uint32(0x564c5031) // 'VLP1'

	formatVersion = uint32(1)

	flagFirstLayerBridging = uint32(1 << 0)
	flagContactBridging    = uint32(1 << 1)
)

type vlpHeader struct {
	Magic         uint32    // 00:
	Version       uint32    // 04:
	ParamsOffset  uint32    // 08: Offset of the slicing parameters
	RangeOffset   uint32    // 0c: Offset of the range overrides
	RangeCount    uint32    // 10:
	ProfileOffset uint32    // 14: Offset of the profile samples
	ProfileCount  uint32    // 18:
	LayerOffset   uint32    // 1c: Offset of the layer boundaries
	LayerCount    uint32    // 20:
	_             [3]uint32 // 24:
}

type vlpParams struct {
	LayerHeight              float64 // 00:
	MinLayerHeight           float64 // 08:
	MaxLayerHeight           float64 // 10:
	BaseRaftLayerHeight      float64 // 18:
	InterfaceRaftLayerHeight float64 // 20:
	ContactRaftLayerHeight   float64 // 28:
	FirstObjectLayerHeight   float64 // 30:
	ObjectPrintZMin          float64 // 38:
	ObjectPrintZMax          float64 // 40:
	BaseRaftLayers           uint32  // 48:
	InterfaceRaftLayers      uint32  // 4c:
	Flags                    uint32  // 50: Bridging flags
	_                        uint32  // 54:
}

type vlpRange struct {
	MinZ   float64 // 00:
	MaxZ   float64 // 08:
	Height float64 // 10:
}

type vlpSample struct {
	Z      float64 // 00:
	Height float64 // 08:
}

type vlpLayer struct {
	Bottom float64 // 00:
	Top    float64 // 08:
}

type VLPFormat struct {
	*pflag.FlagSet
}

func NewVLPFormatter(suffix string) (sf *VLPFormat) {
	flagSet := pflag.NewFlagSet(suffix, pflag.ContinueOnError)

	sf = &VLPFormat{
		FlagSet: flagSet,
	}

	sf.SetInterspersed(false)

	return
}

func (sf *VLPFormat) Encode(writer varislice.Writer, plan *varislice.Plan) (err error) {
	source := &plan.Params

	params := vlpParams{
		LayerHeight:              source.LayerHeight,
		MinLayerHeight:           source.MinLayerHeight,
		MaxLayerHeight:           source.MaxLayerHeight,
		BaseRaftLayerHeight:      source.BaseRaftLayerHeight,
		InterfaceRaftLayerHeight: source.InterfaceRaftLayerHeight,
		ContactRaftLayerHeight:   source.ContactRaftLayerHeight,
		FirstObjectLayerHeight:   source.FirstObjectLayerHeight,
		ObjectPrintZMin:          source.ObjectPrintZMin,
		ObjectPrintZMax:          source.ObjectPrintZMax,
		BaseRaftLayers:           uint32(source.BaseRaftLayers),
		InterfaceRaftLayers:      uint32(source.InterfaceRaftLayers),
	}
	if source.FirstObjectLayerBridging {
		params.Flags |= flagFirstLayerBridging
	}
	if source.ContactRaftLayerHeightBridging {
		params.Flags |= flagContactBridging
	}

	headerBase := uint32(0)
	header := vlpHeader{
		Magic:   defaultHeaderMagic,
		Version: formatVersion,
	}
	headerSize, _ := restruct.SizeOf(&header)
	paramsSize, _ := restruct.SizeOf(&params)
	rangeSize, _ := restruct.SizeOf(&vlpRange{})
	sampleSize, _ := restruct.SizeOf(&vlpSample{})
	layerSize, _ := restruct.SizeOf(&vlpLayer{})

	paramsBase := headerBase + uint32(headerSize)
	rangeBase := paramsBase + uint32(paramsSize)
	profileBase := rangeBase + uint32(rangeSize*len(plan.Ranges))
	layerBase := profileBase + uint32(sampleSize*len(plan.Profile))

	header.ParamsOffset = paramsBase
	header.RangeOffset = rangeBase
	header.RangeCount = uint32(len(plan.Ranges))
	header.ProfileOffset = profileBase
	header.ProfileCount = uint32(len(plan.Profile))
	header.LayerOffset = layerBase
	header.LayerCount = uint32(len(plan.Layers))

	data, _ := restruct.Pack(binary.LittleEndian, &header)
	_, err = writer.WriteAt(data, int64(headerBase))
	if err != nil {
		return
	}

	data, _ = restruct.Pack(binary.LittleEndian, &params)
	_, err = writer.WriteAt(data, int64(paramsBase))
	if err != nil {
		return
	}

	for n, item := range plan.Ranges {
		record := vlpRange{MinZ: item.MinZ, MaxZ: item.MaxZ, Height: item.Height}
		data, _ = restruct.Pack(binary.LittleEndian, &record)
		_, err = writer.WriteAt(data, int64(int(rangeBase)+rangeSize*n))
		if err != nil {
			return
		}
	}

	for n, item := range plan.Profile {
		record := vlpSample{Z: item.Z, Height: item.Height}
		data, _ = restruct.Pack(binary.LittleEndian, &record)
		_, err = writer.WriteAt(data, int64(int(profileBase)+sampleSize*n))
		if err != nil {
			return
		}
	}

	for n, item := range plan.Layers {
		record := vlpLayer{Bottom: item.Bottom, Top: item.Top}
		data, _ = restruct.Pack(binary.LittleEndian, &record)
		_, err = writer.WriteAt(data, int64(int(layerBase)+layerSize*n))
		if err != nil {
			return
		}
	}

	return
}

func (sf *VLPFormat) Decode(reader varislice.Reader, filesize int64) (plan *varislice.Plan, err error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return
	}

	header := vlpHeader{}
	err = restruct.Unpack(data, binary.LittleEndian, &header)
	if err != nil {
		return
	}

	if header.Magic != defaultHeaderMagic {
		err = fmt.Errorf("unknown magic 0x%08x", header.Magic)
		return
	}
	if header.Version != formatVersion {
		err = fmt.Errorf("version %d not supported", header.Version)
		return
	}

	params := vlpParams{}
	err = restruct.Unpack(data[header.ParamsOffset:], binary.LittleEndian, &params)
	if err != nil {
		return
	}

	rangeSize, _ := restruct.SizeOf(&vlpRange{})
	sampleSize, _ := restruct.SizeOf(&vlpSample{})
	layerSize, _ := restruct.SizeOf(&vlpLayer{})

	ranges := make([]varislice.HeightRange, header.RangeCount)
	for n := range ranges {
		record := vlpRange{}
		offset := int(header.RangeOffset) + rangeSize*n
		err = restruct.Unpack(data[offset:], binary.LittleEndian, &record)
		if err != nil {
			return
		}
		ranges[n] = varislice.HeightRange{MinZ: record.MinZ, MaxZ: record.MaxZ, Height: record.Height}
	}

	profile := make(varislice.Profile, header.ProfileCount)
	for n := range profile {
		record := vlpSample{}
		offset := int(header.ProfileOffset) + sampleSize*n
		err = restruct.Unpack(data[offset:], binary.LittleEndian, &record)
		if err != nil {
			return
		}
		profile[n] = varislice.ProfilePoint{Z: record.Z, Height: record.Height}
	}

	layers := make([]varislice.Layer, header.LayerCount)
	for n := range layers {
		record := vlpLayer{}
		offset := int(header.LayerOffset) + layerSize*n
		err = restruct.Unpack(data[offset:], binary.LittleEndian, &record)
		if err != nil {
			return
		}
		layers[n] = varislice.Layer{Bottom: record.Bottom, Top: record.Top}
	}

	plan = &varislice.Plan{
		Params: varislice.SlicingParameters{
			LayerHeight:                    params.LayerHeight,
			MinLayerHeight:                 params.MinLayerHeight,
			MaxLayerHeight:                 params.MaxLayerHeight,
			BaseRaftLayerHeight:            params.BaseRaftLayerHeight,
			InterfaceRaftLayerHeight:       params.InterfaceRaftLayerHeight,
			ContactRaftLayerHeight:         params.ContactRaftLayerHeight,
			FirstObjectLayerHeight:         params.FirstObjectLayerHeight,
			ObjectPrintZMin:                params.ObjectPrintZMin,
			ObjectPrintZMax:                params.ObjectPrintZMax,
			BaseRaftLayers:                 int(params.BaseRaftLayers),
			InterfaceRaftLayers:            int(params.InterfaceRaftLayers),
			FirstObjectLayerBridging:       params.Flags&flagFirstLayerBridging != 0,
			ContactRaftLayerHeightBridging: params.Flags&flagContactBridging != 0,
		},
		Ranges:  ranges,
		Profile: profile,
		Layers:  layers,
	}

	return
}
