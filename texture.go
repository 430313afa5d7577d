//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package varislice

import (
	"fmt"
	"image"
	"math"
)

// RdBu diverging palette, thinnest layer first.
// https://github.com/aschn/gnuplot-colorbrewer
var texturePalette = [8][3]float64{
	{0xB2, 0x18, 0x2B},
	{0xD6, 0x60, 0x4D},
	{0xF4, 0xA5, 0x82},
	{0xFD, 0xDB, 0xC7},
	{0xD1, 0xE5, 0xF0},
	{0x92, 0xC5, 0xDE},
	{0x43, 0x93, 0xC3},
	{0x21, 0x66, 0xAC},
}

// Texture cells allotted per minimum height layer of the object.
//
// TODO: promote to PrintConfig once the configuration surface settles.
const textureCellsPerMinLayer = 16

func colorByte(v float64) uint8 {
	return uint8(clamp(0, 255, math.Floor(v+0.5)))
}

// WriteTexture rasterizes the layer stack into an RGBA texture mapping
// layer height to color, one cell strip wrapped into rows. The buffer
// holds the rows x cols base level followed by a rows/2 x cols/2 second
// level, rows*cols*5 bytes in all, and is required even when lod2 is
// false. Returns the number of cells used on the base level.
func WriteTexture(params SlicingParameters, layers []Layer, data []byte, rows, cols int, lod2 bool) int {
	size := rows * cols * 5
	if len(data) < size {
		panic(fmt.Sprintf("texture: buffer of %d bytes, need %d", len(data), size))
	}

	for k := range data[:size] {
		data[k] = 0
	}
	data1 := data[rows*cols*4:]

	objectHeight := params.ObjectPrintZHeight()
	ncells := (cols - 1) * rows
	if limit := int(math.Ceil(textureCellsPerMinLayer * (objectHeight / params.MinLayerHeight))); limit < ncells {
		ncells = limit
	}
	ncells1 := ncells / 2
	cols1 := cols / 2

	zToCell := float64(ncells-1) / objectHeight
	cellToZ := objectHeight / float64(ncells-1)
	zToCell1 := float64(ncells1-1) / objectHeight

	// Color scale spanning the printable height band around the nominal
	// layer height.
	hscale := 2 * math.Max(params.MaxLayerHeight-params.LayerHeight, params.LayerHeight-params.MinLayerHeight)
	if hscale == 0 {
		// All layers share one height.
		hscale = params.LayerHeight
	}

	for _, layer := range layers {
		lo := layer.Bottom
		hi := layer.Top
		mid := 0.5 * (lo + hi)
		h := hi - lo
		hi = math.Min(hi, objectHeight)

		// The palette slot and blend factor depend only on the layer.
		idxf := (0.5*hscale + (h - params.LayerHeight)) * float64(len(texturePalette)) / hscale
		idx1 := int(clamp(0, float64(len(texturePalette)-1), math.Floor(idxf)))
		idx2 := idx1 + 1
		if idx2 >= len(texturePalette) {
			idx2 = len(texturePalette) - 1
		}
		t := idxf - float64(idx1)
		red := lerp(texturePalette[idx1][0], texturePalette[idx2][0], t)
		green := lerp(texturePalette[idx1][1], texturePalette[idx2][1], t)
		blue := lerp(texturePalette[idx1][2], texturePalette[idx2][2], t)

		cellFirst := int(clamp(0, float64(ncells-1), math.Ceil(lo*zToCell)))
		cellLast := int(clamp(0, float64(ncells-1), math.Floor(hi*zToCell)))
		for cell := cellFirst; cell <= cellLast; cell++ {
			z := cellToZ * float64(cell)

			// Intensity tapers towards the layer faces to keep the
			// layers apart visually.
			intensity := math.Cos(math.Pi * 0.7 * (mid - z) / h)

			row := cell / (cols - 1)
			col := cell - row*(cols-1)
			ptr := (row*cols + col) * 4
			data[ptr+0] = colorByte(intensity * red)
			data[ptr+1] = colorByte(intensity * green)
			data[ptr+2] = colorByte(intensity * blue)
			data[ptr+3] = 255
			if col == 0 && row > 0 {
				// The first value in a row doubles as the last value of
				// the row before it.
				copy(data[ptr-4:ptr], data[ptr:ptr+4])
			}
		}

		if !lod2 {
			continue
		}

		cellFirst = int(clamp(0, float64(ncells1-1), math.Ceil(lo*zToCell1)))
		cellLast = int(clamp(0, float64(ncells1-1), math.Floor(hi*zToCell1)))
		for cell := cellFirst; cell <= cellLast; cell++ {
			row := cell / (cols1 - 1)
			col := cell - row*(cols1-1)
			ptr := (row*cols1 + col) * 4
			data1[ptr+0] = colorByte(red)
			data1[ptr+1] = colorByte(green)
			data1[ptr+2] = colorByte(blue)
			data1[ptr+3] = 255
			if col == 0 && row > 0 {
				copy(data1[ptr-4:ptr], data1[ptr:ptr+4])
			}
		}
	}

	return ncells
}

// TextureImage rasterizes the layer stack into an RGBA image of the
// given size.
func TextureImage(params SlicingParameters, layers []Layer, rows, cols int) *image.RGBA {
	data := make([]byte, rows*cols*5)
	WriteTexture(params, layers, data, rows, cols, false)

	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	copy(img.Pix, data[:rows*cols*4])

	return img
}
