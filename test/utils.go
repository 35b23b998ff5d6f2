package test

import (
	"encoding/binary"
	"math/rand"
)

const (
	fileHeaderLen = 14
	infoHeaderLen = 40
)

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// RawBitmap builds the bytes of a 24 bit uncompressed BMP file holding pixelData, one row high
func RawBitmap(pixelData []byte) []byte {
	return RawBitmapWithGap(nil, pixelData)
}

// RawBitmapWithGap is RawBitmap with extra bytes (palette, extended header) between the info header and the pixels
func RawBitmapWithGap(gap, pixelData []byte) []byte {
	offset := fileHeaderLen + infoHeaderLen + len(gap)
	raw := make([]byte, offset, offset+len(pixelData))

	raw[0], raw[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(raw[2:6], uint32(offset+len(pixelData)))
	binary.LittleEndian.PutUint32(raw[10:14], uint32(offset))

	binary.LittleEndian.PutUint32(raw[14:18], infoHeaderLen)
	binary.LittleEndian.PutUint32(raw[18:22], uint32(len(pixelData)/3))
	binary.LittleEndian.PutUint32(raw[22:26], 1)
	binary.LittleEndian.PutUint16(raw[26:28], 1)
	binary.LittleEndian.PutUint16(raw[28:30], 24)
	binary.LittleEndian.PutUint32(raw[34:38], uint32(len(pixelData)))
	binary.LittleEndian.PutUint32(raw[38:42], 2835)
	binary.LittleEndian.PutUint32(raw[42:46], 2835)

	copy(raw[fileHeaderLen+infoHeaderLen:], gap)
	return append(raw, pixelData...)
}
