//
// Copyright (c) 2026 Martin P. Meloun <mpmel.dev@gmail.com>
//

package yamlcfg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mpmel/varislice"
)

var testDoc = `
object:
  layer_height: 0.2
  first_layer_height: 0.2
height: 1.0
`

func TestDecodeYaml(t *testing.T) {
	formatter := NewYamlFormatter(".yaml")

	plan, err := formatter.Decode(bytes.NewReader([]byte(testDoc)), int64(len(testDoc)))
	require.NoError(t, err)

	require.Len(t, plan.Layers, 5)
	require.InDelta(t, 1.0, plan.Params.ObjectPrintZHeight(), 1e-12)
}

func TestDecodeYamlInvalid(t *testing.T) {
	doc := "object: {layer_height: tall}"

	formatter := NewYamlFormatter(".yaml")
	_, err := formatter.Decode(bytes.NewReader([]byte(doc)), int64(len(doc)))
	require.Error(t, err)
}

func TestEncodeYamlRejected(t *testing.T) {
	formatter := NewYamlFormatter(".yaml")
	require.Error(t, formatter.Encode(nil, &varislice.Plan{}))
}
