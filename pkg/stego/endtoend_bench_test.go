package stego

import (
	"bmpsteg/test"
	"fmt"
	"testing"
)

func BenchmarkEmbed(b *testing.B) {
	for _, pixelBytes := range []int{1 << 16, 1 << 20, 1 << 24} {
		bm := generateBitmap(b, pixelBytes)
		payload := test.GenerateRandomBytes(Capacity(bm))
		b.Run(fmt.Sprintf("pixelBytes=%d", pixelBytes), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			encoder := newTestEncoder(b, bm)
			for i := 0; i < b.N; i++ {
				if err := encoder.Embed(payload); err != nil {
					b.Fatalf("Error during embed: %s", err)
				}
			}
		})
	}
}

func BenchmarkExtract(b *testing.B) {
	for _, pixelBytes := range []int{1 << 16, 1 << 20, 1 << 24} {
		bm := generateBitmap(b, pixelBytes)
		payload := test.GenerateRandomBytes(Capacity(bm))
		if err := newTestEncoder(b, bm).Embed(payload); err != nil {
			b.Fatalf("Error embedding payload for extract benchmark: %s", err)
		}
		b.Run(fmt.Sprintf("pixelBytes=%d", pixelBytes), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				decoder := newTestDecoder(b, bm)
				b.StartTimer()
				if _, err := decoder.Extract(); err != nil {
					b.Fatalf("Error during extract: %s", err)
				}
			}
		})
	}
}
