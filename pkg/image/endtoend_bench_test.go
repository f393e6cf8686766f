package image

import (
	"fmt"
	"image/png"
	"io"
	"testing"
	"textsteg/pkg/config"
	"textsteg/test"
)

const benchImageSize = 2000

func BenchmarkFullEncodeSpeed(b *testing.B) {
	img := test.GenerateImage(benchImageSize, benchImageSize, false)
	for _, numOfCharsToEncode := range []int{1000, 100000, MaxCharacters(benchImageSize * benchImageSize * channelsToWrite)} {
		text := test.GenerateRandomText(numOfCharsToEncode)
		encoder, err := NewImageEncoder(img, config.ImageEncodeConfig{})
		if err != nil {
			b.Fatalf("Error creating image encoder: %s", err)
		}
		b.Run(fmt.Sprintf("Chars=%d", numOfCharsToEncode), func(b *testing.B) {
			b.SetBytes(int64(numOfCharsToEncode))
			for i := 0; i < b.N; i++ {
				if err := encoder.EncodeText(text); err != nil {
					b.Fatalf("Error during encoding: %s", err)
				}
			}
		})
	}
}

func BenchmarkFullDecodeSpeed(b *testing.B) {
	img := test.GenerateImage(benchImageSize, benchImageSize, false)
	for _, numOfCharsToEncode := range []int{1000, 100000, MaxCharacters(benchImageSize * benchImageSize * channelsToWrite)} {
		encoded, err := Embed(img, test.GenerateRandomText(numOfCharsToEncode), config.ImageEncodeConfig{})
		if err != nil {
			b.Fatalf("Error encoding text for decode benchmark: %s", err)
		}
		decoder, err := NewImageDecoder(encoded, config.ImageDecodeConfig{})
		if err != nil {
			b.Fatalf("Error creating image decoder for benchmark: %s", err)
		}
		b.Run(fmt.Sprintf("Chars=%d", numOfCharsToEncode), func(b *testing.B) {
			b.SetBytes(int64(numOfCharsToEncode))
			for i := 0; i < b.N; i++ {
				decoder.DecodeText()
			}
		})
	}
}

func BenchmarkEncodeWithImageOutput(b *testing.B) {
	img := test.GenerateImage(benchImageSize/4, benchImageSize/4, false)
	text := textThatFits(img)

	outputConfigs := map[string]config.ImageEncodeConfig{
		"png-none": {OutputFormat: config.OutputPNG, PngCompressionLevel: png.NoCompression},
		"png-fast": {OutputFormat: config.OutputPNG, PngCompressionLevel: png.BestSpeed},
		"png-best": {OutputFormat: config.OutputPNG, PngCompressionLevel: png.BestCompression},
		"bmp":      {OutputFormat: config.OutputBMP},
		"tiff":     {OutputFormat: config.OutputTIFF},
	}

	for label, iConfig := range outputConfigs {
		encoder, err := NewImageEncoder(img, iConfig)
		if err != nil {
			b.Fatalf("Error creating image encoder: %s", err)
		}
		if err = encoder.EncodeText(text); err != nil {
			b.Fatalf("Error during encoding: %s", err)
		}
		b.Run(label, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := encoder.WriteEncodedImage(io.Discard); err != nil {
					b.Fatalf("Error writing image: %s", err)
				}
			}
		})
	}
}
