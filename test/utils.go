package test

import (
	"image"
	"image/color"
	"math/rand"
)

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// GenerateRandomText returns a string made of characters in the U+0000-U+00FE range, which every terminator mode
// can carry
func GenerateRandomText(numOfCharsToGenerate int) string {
	runes := make([]rune, numOfCharsToGenerate)
	for i := range runes {
		runes[i] = rune(rand.Intn(0xFF))
	}
	return string(runes)
}

// GenerateImage builds a width x height RGBA image with random colors. Pixels are opaque unless
// randomizePixelOpaqueness is set, in which case roughly a quarter of them get a random alpha
func GenerateImage(width, height int, randomizePixelOpaqueness bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alpha := uint8(255)
			if randomizePixelOpaqueness && rand.Intn(4) == 0 {
				alpha = randUint8()
			}
			// RGBA is alpha premultiplied, so channels cannot exceed alpha
			img.SetRGBA(x, y, color.RGBA{
				R: randUint8() & alpha,
				G: randUint8() & alpha,
				B: randUint8() & alpha,
				A: alpha,
			})
		}
	}
	return img
}

// GenerateUniformImage builds a width x height opaque image where every pixel has color c
func GenerateUniformImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func randUint8() uint8 {
	return uint8(rand.Intn(256))
}
