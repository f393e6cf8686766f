package image

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes any registered raster format (png, jpeg, bmp, tiff, webp)
func LoadImage(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return img, format, nil
}

// LoadImageBytes is LoadImage for images held in memory
func LoadImageBytes(raw []byte) (image.Image, string, error) {
	return LoadImage(bytes.NewReader(raw))
}

// normalize copies src into a new opaque NRGBA image anchored at the origin. Only the R, G and B bytes of each pixel
// carry data; alpha is forced to 255 so every output is a plain RGB image
func normalize(src image.Image) (*image.NRGBA, error) {
	if src == nil {
		return nil, ErrInvalidImage
	}

	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	switch s := src.(type) {
	case *image.NRGBA:
		// Straight alpha source, keep the color channels as they are instead of going through premultiplication
		for y := 0; y < bounds.Dy(); y++ {
			srcOffset := s.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], s.Pix[srcOffset:srcOffset+dst.Stride])
		}
	case *image.NRGBA64:
		for y := 0; y < bounds.Dy(); y++ {
			srcOffset := s.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			row := dst.Pix[y*dst.Stride : (y+1)*dst.Stride]
			for x := 0; x < bounds.Dx(); x++ {
				// High byte of each big endian channel
				row[x*4] = s.Pix[srcOffset+x*8]
				row[x*4+1] = s.Pix[srcOffset+x*8+2]
				row[x*4+2] = s.Pix[srcOffset+x*8+4]
			}
		}
	case *image.Paletted:
		palette := straightPalette(s.Palette)
		for y := 0; y < bounds.Dy(); y++ {
			srcOffset := s.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			row := dst.Pix[y*dst.Stride : (y+1)*dst.Stride]
			for x := 0; x < bounds.Dx(); x++ {
				// Indexes past the palette stay black, like image.Paletted.At reports them
				if idx := int(s.Pix[srcOffset+x]); idx < len(palette) {
					copy(row[x*4:x*4+3], palette[idx][:])
				}
			}
		}
	default:
		xdraw.Draw(dst, dst.Bounds(), src, bounds.Min, xdraw.Src)
	}

	for p := 3; p < len(dst.Pix); p += 4 {
		dst.Pix[p] = 255
	}
	return dst, nil
}

func straightPalette(p color.Palette) [][3]byte {
	straight := make([][3]byte, len(p))
	for i, c := range p {
		nc := color.NRGBAModel.Convert(c).(color.NRGBA)
		straight[i] = [3]byte{nc.R, nc.G, nc.B}
	}
	return straight
}

// carrierBytes is the number of bytes that can hold one payload bit each
func carrierBytes(img *image.NRGBA) int {
	return img.Bounds().Dx() * img.Bounds().Dy() * channelsToWrite
}

func isAlphaByte(p int) bool {
	return p%4 == 3
}
