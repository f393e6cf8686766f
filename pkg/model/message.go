package model

// Message is the result of reading the LSBs of an image
type Message struct {
	// Text holds the characters read before the terminator, or every character read if no terminator was found
	Text string `json:"text"`
	// Terminated is false when the image did not contain a terminator, meaning no message was found
	Terminated bool `json:"terminated"`
}

// Found reports whether an embedded message was recovered
func (m Message) Found() bool {
	return m.Terminated
}

type Capacity struct {
	Width         int `json:"width"`
	Height        int `json:"height"`
	AvailableBits int `json:"available_bits"`
	MaxCharacters int `json:"max_characters"`
}
