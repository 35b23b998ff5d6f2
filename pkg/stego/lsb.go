// Package stego hides a length prefixed payload in the least significant bits of a bitmap's pixel bytes, one
// payload bit per pixel byte, starting at the first pixel byte.
package stego

import (
	"bmpsteg/internal/bits"
	"bmpsteg/pkg/bitmap"
	"bmpsteg/pkg/model"
	"errors"
)

const (
	// CarrierBytesPerByte is how many pixel bytes it takes to hide one payload byte
	CarrierBytesPerByte = 8
	// LengthPrefixBytes is the size of the little endian payload length stored ahead of the payload
	LengthPrefixBytes = 4

	lengthPrefixCarrierBytes = LengthPrefixBytes * CarrierBytesPerByte
)

var (
	ErrInsufficientCapacity   = errors.New("bitmap not big enough to contain the supplied payload, choose a larger carrier or a smaller payload")
	ErrPayloadTooLarge        = errors.New("payload length does not fit in the 32 bit length prefix")
	ErrPayloadNotFound        = errors.New("no valid payload found in bitmap")
	ErrUnsupportedCompression = errors.New("bitmap pixel data is compressed, LSB embedding requires an uncompressed bitmap")
)

// EmbedByte writes bit i of byteToHide into the LSB of window[i], for the first 8 bytes of window. The upper 7 bits
// of every window byte are left untouched.
func EmbedByte(window []byte, byteToHide byte) {
	br := bits.NewBitReader([]byte{byteToHide})
	for i := 0; i < CarrierBytesPerByte; i++ {
		window[i] = window[i]&0xFE | br.ReadBit()
	}
}

// ExtractByte rebuilds a byte from the LSBs of the first 8 bytes of window, window[0] holding bit 0
func ExtractByte(window []byte) (extractedByte byte) {
	for i := 0; i < CarrierBytesPerByte; i++ {
		extractedByte |= (window[i] & 1) << i
	}
	return extractedByte
}

// RequiredPixelBytes is the number of pixel bytes needed to hide a payload of payloadLen bytes, prefix included
func RequiredPixelBytes(payloadLen int) int {
	return CarrierBytesPerByte * (LengthPrefixBytes + payloadLen)
}

// Capacity returns the largest payload, in bytes, that fits in bm
func Capacity(bm *bitmap.Bitmap) int {
	capacity := len(bm.PixelData)/CarrierBytesPerByte - LengthPrefixBytes
	if capacity < 0 {
		return 0
	}
	return capacity
}

func Summarize(bm *bitmap.Bitmap) model.BitmapSummary {
	return model.BitmapSummary{
		FileSize:        bm.FileHeader.FileSize,
		OffsetData:      bm.FileHeader.OffsetData,
		Width:           bm.InfoHeader.Width,
		Height:          bm.InfoHeader.Height,
		BitCount:        bm.InfoHeader.BitCount,
		Compression:     bm.InfoHeader.Compression,
		PixelBytes:      len(bm.PixelData),
		PayloadCapacity: Capacity(bm),
	}
}

func checkCompression(bm *bitmap.Bitmap, requireUncompressed bool) error {
	if requireUncompressed && bm.IsCompressed() {
		return ErrUnsupportedCompression
	}
	return nil
}
