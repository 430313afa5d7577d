//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package vlz

import (
	"archive/zip"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/mpmel/varislice"
)

var (
	uuid_New = uuid.New
)

// Size of the embedded preview textures
const (
	previewRows = 16
	previewCols = 64
)

type VLZConfig struct {
	Guid    string
	Params  varislice.SlicingParameters
	Ranges  []varislice.HeightRange `json:",omitempty"`
	Profile varislice.Profile
	Layers  []varislice.Layer
}

type VLZFormat struct {
	*pflag.FlagSet
}

func NewVLZFormatter(suffix string) (sf *VLZFormat) {
	flagSet := pflag.NewFlagSet(suffix, pflag.ContinueOnError)

	sf = &VLZFormat{
		FlagSet: flagSet,
	}

	sf.SetInterspersed(false)

	return
}

func (sf *VLZFormat) Encode(writer varislice.Writer, plan *varislice.Plan) (err error) {
	archive := zip.NewWriter(writer)
	defer archive.Close()

	config := VLZConfig{
		Guid:    uuid_New().String(),
		Params:  plan.Params,
		Ranges:  plan.Ranges,
		Profile: plan.Profile,
		Layers:  plan.Layers,
	}

	fileConfig, err := archive.Create("plan.json")
	if err != nil {
		return
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return
	}

	fileConfig.Write(data)
	fileConfig.Write([]byte("\n"))

	// Rasterize both texture levels in one pass
	buffer := make([]byte, previewRows*previewCols*5)
	varislice.WriteTexture(plan.Params, plan.Layers, buffer, previewRows, previewCols, true)

	full := image.NewRGBA(image.Rect(0, 0, previewCols, previewRows))
	copy(full.Pix, buffer[:previewRows*previewCols*4])

	half := image.NewRGBA(image.Rect(0, 0, previewCols/2, previewRows/2))
	copy(half.Pix, buffer[previewRows*previewCols*4:])

	previews := []struct {
		Name  string
		Image *image.RGBA
	}{
		{Name: "preview/full.png", Image: full},
		{Name: "preview/half.png", Image: half},
	}

	for _, item := range previews {
		var out io.Writer
		out, err = archive.Create(item.Name)
		if err != nil {
			return
		}

		err = png.Encode(out, item.Image)
		if err != nil {
			return
		}
	}

	return
}

func (sf *VLZFormat) Decode(reader varislice.Reader, filesize int64) (plan *varislice.Plan, err error) {
	archive, err := zip.NewReader(reader, filesize)
	if err != nil {
		return
	}

	fileMap := make(map[string](*zip.File))

	for _, file := range archive.File {
		fileMap[file.Name] = file
	}

	cfg, found := fileMap["plan.json"]
	if !found {
		err = errors.New("plan.json not found in archive")
		return
	}

	cfg_reader, err := cfg.Open()
	if err != nil {
		return
	}
	defer func() { cfg_reader.Close() }()

	data, err := io.ReadAll(cfg_reader)
	if err != nil {
		return
	}

	var config VLZConfig

	err = json.Unmarshal(data, &config)
	if err != nil {
		return
	}

	// The preview images are regenerated from the layers on demand, so
	// they are not read back.
	plan = &varislice.Plan{
		Params:  config.Params,
		Ranges:  config.Ranges,
		Profile: config.Profile,
		Layers:  config.Layers,
	}

	return
}
