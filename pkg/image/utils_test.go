package image

import (
	"fmt"
	"image"
	"image/color"
	"testing"
	"textsteg/internal/bits"
	"textsteg/pkg/config"
	"textsteg/test"
)

type testFunc func(t *testing.T, mode config.TerminatorMode, randomizePixelOpaqueness bool)

var terminatorModes = []config.TerminatorMode{config.TerminatorStrict, config.TerminatorLegacy}

func runImageTestsWithAllModesAndOpaquenessSettings(t *testing.T, testFunc testFunc) {
	for _, mode := range terminatorModes {
		modeCopy := mode
		t.Run(fmt.Sprintf("Terminator-%s", mode), func(t *testing.T) {
			t.Parallel()
			t.Run("opaque", func(t *testing.T) {
				t.Parallel()
				testFunc(t, modeCopy, false)
			})
			t.Run("non-opaque", func(t *testing.T) {
				t.Parallel()
				testFunc(t, modeCopy, true)
			})
		})
	}
}

// linearize returns the R, G, B bytes of img in row-major order
func linearize(img *image.NRGBA) []byte {
	linear := make([]byte, 0, carrierBytes(img))
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			offset := img.PixOffset(x, y)
			linear = append(linear, img.Pix[offset:offset+channelsToWrite]...)
		}
	}
	return linear
}

func checkEncodedImageAgainstExpectedBytes(t *testing.T, outputImage *image.NRGBA, expectedEncodedBytes []byte) {
	t.Helper()

	testBitReader := bits.NewBitReader(expectedEncodedBytes)
	for offset, b := range linearize(outputImage) {
		if testBitReader.BitsLeftToRead() == 0 {
			return
		}
		expectedBit := testBitReader.ReadBit()
		if b&1 != expectedBit {
			t.Errorf("Error at carrier byte %d, expected|got LSB %d|%d", offset, expectedBit, b&1)
			return
		}
	}
	if testBitReader.BitsLeftToRead() > 0 {
		t.Errorf("Image ran out of carrier bytes with %d bits left to check", testBitReader.BitsLeftToRead())
	}
}

func blackImage(width, height int) *image.NRGBA {
	return test.GenerateUniformImage(width, height, color.NRGBA{A: 255})
}

// textThatFits returns random text filling the image, leaving room for the terminator
func textThatFits(img image.Image) string {
	bounds := img.Bounds()
	return test.GenerateRandomText(MaxCharacters(bounds.Dx() * bounds.Dy() * channelsToWrite))
}

func getOpaquenessLabel(randomizeOpaqueness bool) string {
	if randomizeOpaqueness {
		return "non-opaque"
	} else {
		return "opaque"
	}
}
