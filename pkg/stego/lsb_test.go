package stego

import (
	"bmpsteg/pkg/bitmap"
	"bmpsteg/pkg/config"
	"testing"
)

var defaultConfig = config.StegoConfig{}

func TestEmbedByte(t *testing.T) {
	window := []byte{0xFF, 0x00, 0xFE, 0x01, 0x80, 0x7F, 0xAA, 0x55}
	// 0b10110010
	EmbedByte(window, 0xB2)

	expected := []byte{0xFE, 0x01, 0xFE, 0x00, 0x81, 0x7F, 0xAA, 0x55}
	for i := range expected {
		if window[i] != expected[i] {
			t.Errorf("Byte %d: expected %08b, got %08b", i, expected[i], window[i])
		}
	}
}

func TestEmbedByteOnlyTouchesWindow(t *testing.T) {
	carrier := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	EmbedByte(carrier[1:9], 0xFF)
	if carrier[0] != 1 || carrier[9] != 10 {
		t.Errorf("Bytes outside the window were modified: %v", carrier)
	}
}

func TestEmbedExtractByteAllValues(t *testing.T) {
	window := make([]byte, CarrierBytesPerByte)
	for i := range window {
		window[i] = byte(i * 37)
	}
	for value := 0; value < 256; value++ {
		before := append([]byte(nil), window...)
		EmbedByte(window, byte(value))
		if extracted := ExtractByte(window); extracted != byte(value) {
			t.Fatalf("Expected to extract %d, got %d", value, extracted)
		}
		for i := range window {
			if (before[i]^window[i])&0xFE != 0 {
				t.Fatalf("Embedding %d modified more than the LSB of byte %d: %08b -> %08b", value, i, before[i], window[i])
			}
		}
	}
}

func TestRequiredPixelBytes(t *testing.T) {
	for payloadLen, expected := range map[int]int{0: 32, 1: 40, 3: 56, 9: 104} {
		if required := RequiredPixelBytes(payloadLen); required != expected {
			t.Errorf("Payload of %d bytes: expected %d pixel bytes, got %d", payloadLen, expected, required)
		}
	}
}

func TestCapacity(t *testing.T) {
	for pixelBytes, expected := range map[int]int{0: 0, 31: 0, 32: 0, 40: 1, 100: 8, 104: 9} {
		bm := &bitmap.Bitmap{PixelData: make([]byte, pixelBytes)}
		if capacity := Capacity(bm); capacity != expected {
			t.Errorf("%d pixel bytes: expected capacity %d, got %d", pixelBytes, expected, capacity)
		}
	}
}

func TestSummarize(t *testing.T) {
	bm := generateBitmap(t, 300)
	summary := Summarize(bm)
	if summary.PixelBytes != 300 || summary.PayloadCapacity != 33 {
		t.Errorf("Unexpected summary %+v", summary)
	}
	if summary.Width != 100 || summary.Height != 1 || summary.BitCount != 24 {
		t.Errorf("Summary does not reflect the info header: %+v", summary)
	}
	if summary.OffsetData != bitmap.HeadersLen || summary.FileSize != bitmap.HeadersLen+300 {
		t.Errorf("Summary does not reflect the file header: %+v", summary)
	}
}
