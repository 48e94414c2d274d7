package codec

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONDecode(t *testing.T) {
	value, err := JSON{}.Decode([]byte(`{"name":"uniswap","stars":42,"score":9.5}`))
	require.NoError(t, err)
	assert.Equal(t, "uniswap", value["name"])
	assert.Equal(t, json.Number("42"), value["stars"])
	assert.Equal(t, json.Number("9.5"), value["score"])
}

func TestJSONDecodeMalformed(t *testing.T) {
	_, err := JSON{}.Decode([]byte(`{"name":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid json")
}

func TestJSONDecodeTrailingContent(t *testing.T) {
	_, err := JSON{}.Decode([]byte(`{"name":"a"} {"name":"b"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid json")
}

func TestYAMLDecodeMatchesJSON(t *testing.T) {
	jsonValue, err := JSON{}.Decode([]byte(`{"name":"punks","address":"0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984","nested":{"count":3},"tags":["nft","art"]}`))
	require.NoError(t, err)

	yamlValue, err := YAML{}.Decode([]byte(`
name: punks
address: "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984"
nested:
  count: 3
tags:
  - nft
  - art
`))
	require.NoError(t, err)

	assert.Equal(t, jsonValue, yamlValue)
}

func TestYAMLDecodeMalformed(t *testing.T) {
	_, err := YAML{}.Decode([]byte("name: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid yaml")
}
