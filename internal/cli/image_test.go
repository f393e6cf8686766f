package cli

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"textsteg/pkg/config"
	"textsteg/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestImage(t *testing.T, dir string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, "source.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func blackImage(width, height int) image.Image {
	return test.GenerateUniformImage(width, height, color.NRGBA{A: 255})
}

func defaultEncodeConfig() config.ImageEncodeConfig {
	c := config.ImageEncodeConfig{}
	c.PopulateUnsetConfigVars()
	return c
}

func TestResolveOutputPath(t *testing.T) {
	encodeConfig := defaultEncodeConfig()

	path, resolved, err := resolveOutputPath("secret", encodeConfig, false)
	require.NoError(t, err)
	assert.Equal(t, "secret.png", path)
	assert.Equal(t, config.OutputPNG, resolved.OutputFormat)

	path, resolved, err = resolveOutputPath("secret.bmp", encodeConfig, false)
	require.NoError(t, err)
	assert.Equal(t, "secret.bmp", path)
	assert.Equal(t, config.OutputBMP, resolved.OutputFormat)

	_, _, err = resolveOutputPath("secret.jpg", encodeConfig, false)
	assert.Error(t, err)

	tiffConfig := encodeConfig
	tiffConfig.OutputFormat = config.OutputTIFF
	path, resolved, err = resolveOutputPath("secret.bmp", tiffConfig, true)
	require.NoError(t, err)
	assert.Equal(t, "secret.bmp", path)
	assert.Equal(t, config.OutputTIFF, resolved.OutputFormat)
}

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(&rootOpts{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	err := cmd.Execute()
	return out.String(), err
}

func TestEncodeDecodeCommands(t *testing.T) {
	dir := t.TempDir()
	source := writeTestImage(t, dir, test.GenerateImage(20, 20, false))
	output := filepath.Join(dir, "encoded")

	stdout, err := runCommand(t, "", "image", "encode", "--image", source, "--output-file", output, "--text", "over the wire", "--format", "tiff")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Message embedded successfully")
	assert.FileExists(t, output+".tiff")

	stdout, err = runCommand(t, "", "image", "decode", "--source", output+".tiff")
	require.NoError(t, err)
	assert.Equal(t, "over the wire\n", stdout)
}

func TestEncodeCommandReadsTextFromStdin(t *testing.T) {
	dir := t.TempDir()
	source := writeTestImage(t, dir, test.GenerateImage(20, 20, false))
	output := filepath.Join(dir, "encoded.bmp")

	_, err := runCommand(t, "piped text", "image", "encode", "--image", source, "--output-file", output, "--text-file", "-")
	require.NoError(t, err)

	decodedFile := filepath.Join(dir, "decoded.txt")
	_, err = runCommand(t, "", "image", "decode", "--source", output, "--output-file", decodedFile)
	require.NoError(t, err)

	decoded, err := os.ReadFile(decodedFile)
	require.NoError(t, err)
	assert.Equal(t, "piped text", string(decoded))
}

func TestEncodeCommandRequiresText(t *testing.T) {
	dir := t.TempDir()
	source := writeTestImage(t, dir, blackImage(4, 4))

	_, err := runCommand(t, "", "image", "encode", "--image", source, "--output-file", filepath.Join(dir, "out.png"))
	assert.ErrorIs(t, err, ErrMissingData)
}

func TestDecodeCommandWithoutMessage(t *testing.T) {
	dir := t.TempDir()
	source := writeTestImage(t, dir, blackImage(4, 4))

	stdout, err := runCommand(t, "", "image", "decode", "--source", source)
	require.NoError(t, err)
	assert.Equal(t, noMessageFound+"\n", stdout)
}

func TestCapacityCommand(t *testing.T) {
	dir := t.TempDir()
	source := writeTestImage(t, dir, blackImage(100, 100))

	stdout, err := runCommand(t, "", "image", "capacity", "--image", source)
	require.NoError(t, err)
	assert.Contains(t, stdout, "(100x100) can hold 3,748 characters")
}
