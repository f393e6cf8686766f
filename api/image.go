package api

import "textsteg/pkg/model"

type EmbedImageRequest struct {
	ImageToEncode []byte `json:"image_to_encode"`
	Text          string `json:"text"`
	// Terminator is strict or legacy, the server default is used when empty
	Terminator string `json:"terminator,omitempty"`
	// OutputFormat is png, bmp or tiff, the server default is used when empty
	OutputFormat string `json:"output_format,omitempty"`
}

type EmbedImageResponse struct {
	EncodedImage []byte `json:"encoded_image"`
	OutputFormat string `json:"output_format"`
}

type DecodeImageRequest struct {
	ImageToDecode []byte `json:"image_to_decode"`
	Terminator    string `json:"terminator,omitempty"`
}

type DecodeImageResponse struct {
	model.Message
}

type CapacityImageRequest struct {
	Image []byte `json:"image"`
}

type CapacityImageResponse struct {
	model.Capacity
}
