package image

import (
	"errors"
	"fmt"
)

var (
	ErrImageNotBigEnough         = errors.New("supplied image not big enough to contain the supplied text, either choose a bigger image or shorten the text")
	ErrInvalidImage              = errors.New("supplied image could not be decoded or converted to RGB")
	ErrImageIO                   = errors.New("image file could not be read or written")
	ErrUnencodableText           = errors.New("text contains characters outside of the single byte range (U+0000-U+00FF)")
	ErrPayloadContainsTerminator = errors.New("text contains the end of message marker, so it could not be decoded back")
	ErrNothingEncoded            = errors.New("no text has been encoded into the image yet")
)

// CapacityError is returned when the framed text needs more bits than the image has bytes
type CapacityError struct {
	RequiredBits  int
	AvailableBits int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s (%d bits required, %d available)", ErrImageNotBigEnough, e.RequiredBits, e.AvailableBits)
}

func (e *CapacityError) Unwrap() error {
	return ErrImageNotBigEnough
}
