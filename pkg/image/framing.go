package image

import (
	"bytes"
	"fmt"
	"textsteg/pkg/config"

	"golang.org/x/text/encoding/charmap"
)

const (
	channelsToWrite = 3
	bitsPerChar     = 8
	// TerminatorBits is the length of the end of message marker appended after the payload
	TerminatorBits = 16

	terminatorHigh = byte(0xFF)
	terminatorLow  = byte(0xFE)
)

var terminator = []byte{terminatorHigh, terminatorLow}

// FramedBitLength returns how many carrier bytes a payload of payloadLength characters occupies
func FramedBitLength(payloadLength int) int {
	return payloadLength*bitsPerChar + TerminatorBits
}

// MaxCharacters returns the longest payload that fits in availableBits carrier bytes
func MaxCharacters(availableBits int) int {
	if availableBits < TerminatorBits {
		return 0
	}
	return (availableBits - TerminatorBits) / bitsPerChar
}

// encodePayload maps text to one byte per character, rejecting what cannot be read back with the given mode
func encodePayload(text string, mode config.TerminatorMode) ([]byte, error) {
	payload, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnencodableText, err)
	}

	switch mode {
	case config.TerminatorLegacy:
		if bytes.IndexByte(payload, terminatorHigh) >= 0 {
			return nil, fmt.Errorf("%w: U+00FF ends the message early in legacy mode", ErrPayloadContainsTerminator)
		}
	default:
		if bytes.Contains(payload, terminator) {
			return nil, fmt.Errorf("%w: U+00FF U+00FE", ErrPayloadContainsTerminator)
		}
	}
	return payload, nil
}

func decodePayload(payload []byte) string {
	// ISO-8859-1 maps every byte to a rune, so decoding cannot fail
	decoded, _ := charmap.ISO8859_1.NewDecoder().Bytes(payload)
	return string(decoded)
}

func frame(payload []byte) []byte {
	framed := make([]byte, 0, len(payload)+len(terminator))
	framed = append(framed, payload...)
	return append(framed, terminator...)
}

// endOfMessage inspects the chunks decoded so far, and reports the payload length once the last chunk completes a
// terminator
func endOfMessage(mode config.TerminatorMode, chunks []byte) (payloadLength int, found bool) {
	n := len(chunks)
	if n == 0 {
		return 0, false
	}

	switch mode {
	case config.TerminatorLegacy:
		if chunks[n-1] == terminatorHigh {
			return n - 1, true
		}
	default:
		if n >= 2 && chunks[n-2] == terminatorHigh && chunks[n-1] == terminatorLow {
			return n - 2, true
		}
	}
	return 0, false
}
