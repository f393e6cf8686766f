package image

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"textsteg/pkg/config"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// writeImage only supports lossless formats, since any quantization would destroy the embedded bits
func writeImage(output io.Writer, img image.Image, iConfig config.ImageEncodeConfig) error {
	switch iConfig.OutputFormat {
	case config.OutputPNG, "":
		enc := png.Encoder{CompressionLevel: iConfig.PngCompressionLevel}
		return enc.Encode(output, img)
	case config.OutputBMP:
		return bmp.Encode(output, img)
	case config.OutputTIFF:
		return tiff.Encode(output, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported output format %q", iConfig.OutputFormat)
	}
}
