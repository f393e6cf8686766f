package image

import (
	"image"
	"textsteg/internal/bits"
	"textsteg/pkg/config"
	"textsteg/pkg/model"
	"time"
)

type Decoder struct {
	image *image.NRGBA

	config config.ImageDecodeConfig
	stats  model.DecodeStats
}

func NewImageDecoder(src image.Image, dConfig config.ImageDecodeConfig) (*Decoder, error) {
	setupStart := time.Now()
	dConfig.PopulateUnsetConfigVars()
	if err := dConfig.Terminator.Validate(); err != nil {
		return nil, err
	}

	normalized, err := normalize(src)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		image:  normalized,
		config: dConfig,
		stats:  model.DecodeStats{Setup: time.Since(setupStart)},
	}, nil
}

func (d *Decoder) Stats() model.DecodeStats {
	return d.stats
}

// DecodeText reads the message hidden in the image. An image without a terminator is not an error, the returned
// message is simply not terminated and holds whatever characters were read
func (d *Decoder) DecodeText() model.Message {
	decodeStart := time.Now()
	defer func() {
		d.stats.DataDecoding = time.Since(decodeStart)
	}()

	payload, terminated := d.readPayload()
	return model.Message{
		Text:       decodePayload(payload),
		Terminated: terminated,
	}
}

func (d *Decoder) readPayload() ([]byte, bool) {
	bw := bits.NewBitWriter(carrierBytes(d.image) / bitsPerChar)
	for p := 0; p < len(d.image.Pix); p++ {
		if isAlphaByte(p) {
			continue
		}
		if !bw.WriteBit(d.image.Pix[p]) {
			continue
		}
		if payloadLength, found := endOfMessage(d.config.Terminator, bw.Bytes()); found {
			bw.Truncate(payloadLength)
			return bw.Bytes(), true
		}
	}
	// Trailing bits that do not fill a whole character are dropped
	return bw.Bytes(), false
}

// Decode is a one shot DecodeText
func Decode(src image.Image, dConfig config.ImageDecodeConfig) (model.Message, error) {
	dec, err := NewImageDecoder(src, dConfig)
	if err != nil {
		return model.Message{}, err
	}
	return dec.DecodeText(), nil
}
