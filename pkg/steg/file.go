package steg

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"textsteg/pkg/config"
	stegImage "textsteg/pkg/image"
	"textsteg/pkg/model"
)

// EmbedTextInImage reads the image at sourcePath, hides text in it and writes the result to destinationPath. The
// destination is not touched when the text does not fit or cannot be encoded
func EmbedTextInImage(sourcePath, text, destinationPath string, encodeConfig config.ImageEncodeConfig) error {
	_, err := EmbedFile(sourcePath, text, destinationPath, encodeConfig)
	return err
}

// EmbedFile is EmbedTextInImage, also returning how long each step took
func EmbedFile(sourcePath, text, destinationPath string, encodeConfig config.ImageEncodeConfig) (model.EncodeStats, error) {
	srcImage, err := LoadImageFile(sourcePath)
	if err != nil {
		return model.EncodeStats{}, err
	}

	iEncoder, err := stegImage.NewImageEncoder(srcImage, encodeConfig)
	if err != nil {
		return model.EncodeStats{}, err
	}

	if err = iEncoder.EncodeText(text); err != nil {
		return iEncoder.Stats(), err
	}

	err = writeFileAtomically(destinationPath, iEncoder.WriteEncodedImage)
	return iEncoder.Stats(), err
}

// DecodeTextFromImage returns the text hidden in the image at sourcePath, or an empty string if the image holds no
// terminated message. Characters read from an image without terminator are still available through DecodeFile
func DecodeTextFromImage(sourcePath string, decodeConfig config.ImageDecodeConfig) (string, error) {
	message, _, err := DecodeFile(sourcePath, decodeConfig)
	if err != nil || !message.Found() {
		return "", err
	}
	return message.Text, nil
}

// DecodeFile reads the message hidden in the image at sourcePath. Message.Terminated is false when no end of message
// marker was found, in which case Message.Text holds whatever characters were read
func DecodeFile(sourcePath string, decodeConfig config.ImageDecodeConfig) (model.Message, model.DecodeStats, error) {
	srcImage, err := LoadImageFile(sourcePath)
	if err != nil {
		return model.Message{}, model.DecodeStats{}, err
	}

	decoder, err := stegImage.NewImageDecoder(srcImage, decodeConfig)
	if err != nil {
		return model.Message{}, model.DecodeStats{}, err
	}

	message := decoder.DecodeText()
	return message, decoder.Stats(), nil
}

func ImageCapacity(sourcePath string) (model.Capacity, error) {
	srcImage, err := LoadImageFile(sourcePath)
	if err != nil {
		return model.Capacity{}, err
	}
	iEncoder, err := stegImage.NewImageEncoder(srcImage, config.ImageEncodeConfig{})
	if err != nil {
		return model.Capacity{}, err
	}
	return iEncoder.Capacity(), nil
}

func LoadImageFile(filePath string) (image.Image, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", stegImage.ErrImageIO, err)
	}
	defer f.Close()

	srcImage, _, err := stegImage.LoadImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return srcImage, nil
}

// writeFileAtomically writes into a temporary file next to path, and only renames it over path once write succeeded
func writeFileAtomically(path string, write func(w io.Writer) error) (retErr error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+strings.TrimPrefix(filepath.Base(path), ".")+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", stegImage.ErrImageIO, err)
	}
	defer func() {
		if retErr != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return fmt.Errorf("%w: %w", stegImage.ErrImageIO, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", stegImage.ErrImageIO, err)
	}
	if err = os.Chmod(tmp.Name(), 0664); err != nil {
		return fmt.Errorf("%w: %w", stegImage.ErrImageIO, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", stegImage.ErrImageIO, err)
	}
	return nil
}
