package bits

// BitReader walks a byte slice one bit at a time, from the least significant bit of the first byte to the most
// significant bit of the last one. This is the order in which payload bits are scattered over carrier bytes.
type BitReader struct {
	bytes         []byte
	currentBitIdx uint
}

func NewBitReader(bytes []byte) *BitReader {
	return &BitReader{
		bytes: bytes,
	}
}

func (br *BitReader) BytesLeftToRead() int {
	return len(br.bytes)
}

func (br *BitReader) BitsLeftToRead() int {
	if len(br.bytes) == 0 {
		return 0
	}
	return (len(br.bytes)-1)*8 + (8 - int(br.currentBitIdx))
}

// ReadBit returns the next bit as 0 or 1. Reading past the end yields 0.
func (br *BitReader) ReadBit() byte {
	if len(br.bytes) == 0 {
		return 0
	}

	bit := (br.bytes[0] >> br.currentBitIdx) & 1
	br.currentBitIdx++
	if br.currentBitIdx == 8 {
		br.bytes = br.bytes[1:]
		br.currentBitIdx = 0
	}
	return bit
}

// ReadBits packs the next bitsToRead (at most 8) bits into a byte, first bit read landing in bit 0
func (br *BitReader) ReadBits(bitsToRead uint) (byteWithRequestedBits byte) {
	for b := uint(0); b < bitsToRead && b < 8; b++ {
		byteWithRequestedBits |= br.ReadBit() << b
	}
	return byteWithRequestedBits
}
