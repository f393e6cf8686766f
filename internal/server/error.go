package server

import (
	"errors"
	"net/http"
	"textsteg/api"
	stegImage "textsteg/pkg/image"
)

var (
	errRequestBodyDecode = api.Error{Code: "invalid_request", Error: "Error reading request body"}
	errMissingData       = api.Error{Code: "missing_data", Error: "An image and a non empty text are required"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
	errInvalidConfig     = api.Error{Code: "invalid_config", Error: "Unsupported output format or terminator"}
	errImageNotBigEnough = api.Error{Code: "image_not_big_enough", Error: "The image is not big enough to contain the supplied text"}
	errUnencodableText   = api.Error{Code: "unencodable_text", Error: "The text contains characters outside of U+0000-U+00FF"}
	errTerminatorInText  = api.Error{Code: "payload_contains_terminator", Error: "The text contains the end of message marker"}
	errEncode            = api.Error{Code: "encode_error", Error: "An error occurred while encoding the image"}
)

// errorResponseFor maps codec errors to the status and body sent back to clients
func errorResponseFor(err error) (int, api.Error) {
	switch {
	case errors.Is(err, stegImage.ErrInvalidImage):
		return http.StatusBadRequest, errInvalidImage
	case errors.Is(err, stegImage.ErrImageNotBigEnough):
		return http.StatusBadRequest, api.Error{Code: errImageNotBigEnough.Code, Error: err.Error()}
	case errors.Is(err, stegImage.ErrUnencodableText):
		return http.StatusBadRequest, errUnencodableText
	case errors.Is(err, stegImage.ErrPayloadContainsTerminator):
		return http.StatusBadRequest, errTerminatorInText
	default:
		return http.StatusInternalServerError, errEncode
	}
}
