package image

import (
	"image"
	"io"
	"textsteg/internal/bits"
	"textsteg/pkg/config"
	"textsteg/pkg/model"
	"time"
)

// Encoder hides text in the least significant bit of every color channel of an image. The source image is copied
// on creation, so callers keep ownership of what they pass in
type Encoder struct {
	source *image.NRGBA
	image  *image.NRGBA

	config config.ImageEncodeConfig
	stats  model.EncodeStats
}

func NewImageEncoder(src image.Image, iConfig config.ImageEncodeConfig) (*Encoder, error) {
	setupStart := time.Now()
	iConfig.PopulateUnsetConfigVars()
	if err := iConfig.Validate(); err != nil {
		return nil, err
	}

	normalized, err := normalize(src)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		source: normalized,
		config: iConfig,
		stats:  model.EncodeStats{Setup: time.Since(setupStart)},
	}, nil
}

func (e *Encoder) Stats() model.EncodeStats {
	return e.stats
}

// Capacity reports how many carrier bits the image has and how many characters fit in them
func (e *Encoder) Capacity() model.Capacity {
	available := carrierBytes(e.source)
	return model.Capacity{
		Width:         e.source.Bounds().Dx(),
		Height:        e.source.Bounds().Dy(),
		AvailableBits: available,
		MaxCharacters: MaxCharacters(available),
	}
}

// Image returns the image produced by the last successful EncodeText, or nil if there was none
func (e *Encoder) Image() *image.NRGBA {
	return e.image
}

// EncodeText writes text followed by the terminator into a fresh copy of the source image. Capacity is verified
// before anything is written, so on error the previously encoded image (if any) is left as it was
func (e *Encoder) EncodeText(text string) error {
	encodeStart := time.Now()
	defer func() {
		e.stats.DataEncoding = time.Since(encodeStart)
	}()

	payload, err := encodePayload(text, e.config.Terminator)
	if err != nil {
		return err
	}

	requiredBits := FramedBitLength(len(payload))
	if available := carrierBytes(e.source); requiredBits > available {
		return &CapacityError{RequiredBits: requiredBits, AvailableBits: available}
	}

	output := image.NewNRGBA(e.source.Bounds())
	copy(output.Pix, e.source.Pix)

	br := bits.NewBitReader(frame(payload))
	for p := 0; br.BitsLeftToRead() > 0; p++ {
		if isAlphaByte(p) {
			continue
		}
		output.Pix[p] = (output.Pix[p] & 0xFE) | br.ReadBit()
	}

	e.image = output
	return nil
}

// WriteEncodedImage writes the encoded image in the configured lossless format
func (e *Encoder) WriteEncodedImage(output io.Writer) error {
	if e.image == nil {
		return ErrNothingEncoded
	}

	imageEncodeStart := time.Now()
	defer func() {
		e.stats.OutputImageEncoding = time.Since(imageEncodeStart)
	}()
	return writeImage(output, e.image, e.config)
}

// Embed is a one shot EncodeText, returning the encoded image
func Embed(src image.Image, text string, iConfig config.ImageEncodeConfig) (*image.NRGBA, error) {
	enc, err := NewImageEncoder(src, iConfig)
	if err != nil {
		return nil, err
	}
	if err = enc.EncodeText(text); err != nil {
		return nil, err
	}
	return enc.Image(), nil
}
