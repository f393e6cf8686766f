package config

import (
	"fmt"
	"image/png"
	"strings"
)

// OutputFormat is the lossless container the stego-image is written as
type OutputFormat string

const (
	OutputPNG  OutputFormat = "png"
	OutputBMP  OutputFormat = "bmp"
	OutputTIFF OutputFormat = "tiff"
)

// TerminatorMode decides how the decoder recognises the end of a message, and which payloads the encoder accepts
type TerminatorMode string

const (
	// TerminatorStrict stops only at the full 16-bit 0xFF 0xFE terminator, so 0xFF is a valid payload character
	TerminatorStrict TerminatorMode = "strict"
	// TerminatorLegacy stops at the first 0xFF chunk, matching images produced by older tools bit for bit
	TerminatorLegacy TerminatorMode = "legacy"
)

var (
	PngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
)

type ImageEncodeConfig struct {
	PngCompressionLevel png.CompressionLevel
	OutputFormat        OutputFormat
	Terminator          TerminatorMode
}

func (c *ImageEncodeConfig) PopulateUnsetConfigVars() {
	if c.OutputFormat == "" {
		c.OutputFormat = OutputPNG
	}
	if c.Terminator == "" {
		c.Terminator = TerminatorStrict
	}
}

func (c ImageEncodeConfig) Validate() error {
	if err := c.OutputFormat.Validate(); err != nil {
		return err
	}
	return c.Terminator.Validate()
}

type ImageDecodeConfig struct {
	Terminator TerminatorMode
}

func (c *ImageDecodeConfig) PopulateUnsetConfigVars() {
	if c.Terminator == "" {
		c.Terminator = TerminatorStrict
	}
}

func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimPrefix(s, ".")))
	if f == "tif" {
		f = OutputTIFF
	}
	return f, f.Validate()
}

func (f OutputFormat) Validate() error {
	switch f {
	case OutputPNG, OutputBMP, OutputTIFF:
		return nil
	}
	return fmt.Errorf("unsupported output format %q, options are png, bmp, tiff", string(f))
}

// Extension returns the file extension, including the leading dot, used for images in this format
func (f OutputFormat) Extension() string {
	return "." + string(f)
}

func ParseTerminatorMode(s string) (TerminatorMode, error) {
	m := TerminatorMode(strings.ToLower(s))
	return m, m.Validate()
}

func (m TerminatorMode) Validate() error {
	switch m {
	case TerminatorStrict, TerminatorLegacy:
		return nil
	}
	return fmt.Errorf("unsupported terminator mode %q, options are strict, legacy", string(m))
}

func ParsePngCompression(s string) png.CompressionLevel {
	mappedCompression, found := PngCompressionMapping[s]
	if !found {
		return png.DefaultCompression
	}
	return mappedCompression
}
