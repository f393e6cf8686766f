package config

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textsteg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output-format: bmp\npng-compression: best\nterminator: legacy\nport: \"9999\"\n"), 0600))

	fc, err := LoadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9999", fc.ServerPort())

	encodeConfig, err := fc.EncodeConfig()
	require.NoError(t, err)
	assert.Equal(t, OutputBMP, encodeConfig.OutputFormat)
	assert.Equal(t, TerminatorLegacy, encodeConfig.Terminator)
	assert.Equal(t, png.BestCompression, encodeConfig.PngCompressionLevel)

	decodeConfig, err := fc.DecodeConfig()
	require.NoError(t, err)
	assert.Equal(t, TerminatorLegacy, decodeConfig.Terminator)
}

func TestLoadMissingFileConfigFallsBackToDefaults(t *testing.T) {
	fc, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, fc.ServerPort())

	encodeConfig, err := fc.EncodeConfig()
	require.NoError(t, err)
	assert.Equal(t, OutputPNG, encodeConfig.OutputFormat)
	assert.Equal(t, TerminatorStrict, encodeConfig.Terminator)
	assert.Equal(t, png.DefaultCompression, encodeConfig.PngCompressionLevel)
}

func TestLoadFileConfigRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textsteg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output-format: jpeg\nterminator: sometimes\n"), 0600))

	fc, err := LoadFileConfig(path)
	require.NoError(t, err)

	_, err = fc.EncodeConfig()
	assert.Error(t, err)
	_, err = fc.DecodeConfig()
	assert.Error(t, err)
}

func TestParseOutputFormat(t *testing.T) {
	for input, expected := range map[string]OutputFormat{"PNG": OutputPNG, ".bmp": OutputBMP, "tif": OutputTIFF, "tiff": OutputTIFF} {
		format, err := ParseOutputFormat(input)
		assert.NoError(t, err, input)
		assert.Equal(t, expected, format, input)
	}
	_, err := ParseOutputFormat("jpg")
	assert.Error(t, err)
}
