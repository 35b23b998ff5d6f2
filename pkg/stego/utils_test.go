package stego

import (
	"bmpsteg/pkg/bitmap"
	"bmpsteg/test"
	"bytes"
	"testing"
)

func generateBitmap(t testing.TB, pixelBytes int) *bitmap.Bitmap {
	bm, err := bitmap.Decode(test.RawBitmap(test.GenerateRandomBytes(pixelBytes)))
	if err != nil {
		t.Fatalf("Error generating test bitmap: %s", err)
	}
	return bm
}

func cloneBitmap(bm *bitmap.Bitmap) *bitmap.Bitmap {
	clone := *bm
	clone.Gap = bytes.Clone(bm.Gap)
	clone.PixelData = bytes.Clone(bm.PixelData)
	return &clone
}

func newTestEncoder(t testing.TB, bm *bitmap.Bitmap) *Encoder {
	encoder, err := NewEncoder(bm, defaultConfig)
	if err != nil {
		t.Fatalf("Error creating encoder: %s", err)
	}
	return encoder
}

func newTestDecoder(t testing.TB, bm *bitmap.Bitmap) *Decoder {
	decoder, err := NewDecoder(bm, defaultConfig)
	if err != nil {
		t.Fatalf("Error creating decoder: %s", err)
	}
	return decoder
}
