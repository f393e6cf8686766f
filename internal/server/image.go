package server

import (
	"bytes"
	"textsteg/pkg/config"
	stegImage "textsteg/pkg/image"
	"textsteg/pkg/model"
)

// requestEncodeConfig overrides the server defaults with whatever the request asked for
func requestEncodeConfig(defaults config.ImageEncodeConfig, terminator, outputFormat string) (config.ImageEncodeConfig, error) {
	encodeConfig := defaults
	if terminator != "" {
		mode, err := config.ParseTerminatorMode(terminator)
		if err != nil {
			return encodeConfig, err
		}
		encodeConfig.Terminator = mode
	}
	if outputFormat != "" {
		format, err := config.ParseOutputFormat(outputFormat)
		if err != nil {
			return encodeConfig, err
		}
		encodeConfig.OutputFormat = format
	}
	return encodeConfig, nil
}

func requestDecodeConfig(defaults config.ImageEncodeConfig, terminator string) (config.ImageDecodeConfig, error) {
	encodeConfig, err := requestEncodeConfig(defaults, terminator, "")
	return config.ImageDecodeConfig{Terminator: encodeConfig.Terminator}, err
}

func embedText(rawImage []byte, text string, encodeConfig config.ImageEncodeConfig) ([]byte, model.EncodeStats, error) {
	img, _, err := stegImage.LoadImageBytes(rawImage)
	if err != nil {
		return nil, model.EncodeStats{}, err
	}

	imageEncoder, err := stegImage.NewImageEncoder(img, encodeConfig)
	if err != nil {
		return nil, model.EncodeStats{}, err
	}
	if err = imageEncoder.EncodeText(text); err != nil {
		return nil, imageEncoder.Stats(), err
	}

	encodedImageBuffer := bytes.NewBuffer(make([]byte, 0, len(rawImage))) // pre allocate with size of original, since it should be similar
	if err = imageEncoder.WriteEncodedImage(encodedImageBuffer); err != nil {
		return nil, imageEncoder.Stats(), err
	}
	return encodedImageBuffer.Bytes(), imageEncoder.Stats(), nil
}

func decodeText(rawImage []byte, decodeConfig config.ImageDecodeConfig) (model.Message, model.DecodeStats, error) {
	img, _, err := stegImage.LoadImageBytes(rawImage)
	if err != nil {
		return model.Message{}, model.DecodeStats{}, err
	}

	imageDecoder, err := stegImage.NewImageDecoder(img, decodeConfig)
	if err != nil {
		return model.Message{}, model.DecodeStats{}, err
	}
	return imageDecoder.DecodeText(), imageDecoder.Stats(), nil
}
