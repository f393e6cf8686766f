package bits

// BitWriter packs single bits into bytes, most significant bit first. It is the inverse of BitReader
type BitWriter struct {
	bytes      []byte
	currentBit byte
	bitsInByte uint
}

func NewBitWriter(expectedBytes int) *BitWriter {
	return &BitWriter{bytes: make([]byte, 0, expectedBytes)}
}

// WriteBit appends the lowest bit of b. It reports whether the write completed a byte
func (bw *BitWriter) WriteBit(b byte) (byteCompleted bool) {
	bw.currentBit = bw.currentBit<<1 | (b & 1)
	bw.bitsInByte++
	if bw.bitsInByte < 8 {
		return false
	}
	bw.bytes = append(bw.bytes, bw.currentBit)
	bw.currentBit = 0
	bw.bitsInByte = 0
	return true
}

// Bytes returns the completed bytes. Bits of a partially written byte are not included
func (bw *BitWriter) Bytes() []byte {
	return bw.bytes
}

// Truncate drops completed bytes beyond n
func (bw *BitWriter) Truncate(n int) {
	if n < len(bw.bytes) {
		bw.bytes = bw.bytes[:n]
	}
}
