package carrier

import (
	"bmpsteg/pkg/bitmap"
	"bmpsteg/pkg/config"
	"bmpsteg/pkg/stego"
	"bmpsteg/test"
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func generateImage(width, height int, randomizePixelOpaqueness bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alpha := uint8(255)
			if randomizePixelOpaqueness {
				alpha = uint8(rand.Intn(256))
			}
			img.Set(x, y, color.NRGBA{R: uint8(rand.Intn(256)), G: uint8(rand.Intn(256)), B: uint8(rand.Intn(256)), A: alpha})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Error encoding test PNG: %s", err)
	}
	return buf.Bytes()
}

func TestConvertProducesUncompressedCarrier(t *testing.T) {
	for _, randomizePixelOpaqueness := range []bool{false, true} {
		img := generateImage(37, 21, randomizePixelOpaqueness)

		var out bytes.Buffer
		format, err := Convert(bytes.NewReader(encodePNG(t, img)), &out)
		if err != nil {
			t.Fatalf("Error converting image: %s", err)
		}
		if format != "png" {
			t.Errorf("Expected png source format, got %s", format)
		}

		bm, err := bitmap.Decode(out.Bytes())
		if err != nil {
			t.Fatalf("Error decoding converted carrier: %s", err)
		}
		if bm.IsCompressed() || bm.InfoHeader.BitCount != 24 {
			t.Errorf("Expected a 24 bit uncompressed carrier, got %d bits with compression %d", bm.InfoHeader.BitCount, bm.InfoHeader.Compression)
		}
		if bm.InfoHeader.Width != 37 || bm.InfoHeader.Height != 21 {
			t.Errorf("Expected 37x21 carrier, got %dx%d", bm.InfoHeader.Width, bm.InfoHeader.Height)
		}
		// rows are padded to 4 bytes
		if expected := ((37*3 + 3) &^ 3) * 21; len(bm.PixelData) != expected {
			t.Errorf("Expected %d pixel bytes, got %d", expected, len(bm.PixelData))
		}
	}
}

func TestEmbedIsPerceptuallyInvariant(t *testing.T) {
	var carrierBytes bytes.Buffer
	if err := bmp.Encode(&carrierBytes, Flatten(generateImage(64, 64, false))); err != nil {
		t.Fatalf("Error encoding carrier: %s", err)
	}

	bm, err := bitmap.Decode(carrierBytes.Bytes())
	if err != nil {
		t.Fatalf("Error decoding carrier: %s", err)
	}
	encoder, err := stego.NewEncoder(bm, config.StegoConfig{RequireUncompressed: true})
	if err != nil {
		t.Fatalf("Error creating encoder: %s", err)
	}
	if err = encoder.Embed(test.GenerateRandomBytes(stego.Capacity(bm))); err != nil {
		t.Fatalf("Error embedding payload: %s", err)
	}

	original, err := bmp.Decode(bytes.NewReader(carrierBytes.Bytes()))
	if err != nil {
		t.Fatalf("Error decoding original carrier as an image: %s", err)
	}
	stegoImage, err := bmp.Decode(bytes.NewReader(bm.Encode()))
	if err != nil {
		t.Fatalf("Error decoding stego bitmap as an image: %s", err)
	}

	bounds := original.Bounds()
	if stegoImage.Bounds() != bounds {
		t.Fatalf("Stego image bounds %v differ from original %v", stegoImage.Bounds(), bounds)
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			o := color.RGBAModel.Convert(original.At(x, y)).(color.RGBA)
			s := color.RGBAModel.Convert(stegoImage.At(x, y)).(color.RGBA)
			if (o.R^s.R) > 1 || (o.G^s.G) > 1 || (o.B^s.B) > 1 || o.A != s.A {
				t.Fatalf("Pixel %d,%d changed beyond its LSBs: %v -> %v", x, y, o, s)
			}
		}
	}
}

func TestConvertRejectsUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	_, err := Convert(bytes.NewReader([]byte("definitely not an image")), &out)
	if !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("Expected %v, got %v", ErrUnsupportedImage, err)
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "photo.png")
	dstPath := filepath.Join(dir, "carrier.bmp")
	if err := os.WriteFile(srcPath, encodePNG(t, generateImage(10, 10, false)), 0600); err != nil {
		t.Fatalf("Error writing source image: %s", err)
	}

	if _, err := ConvertFile(srcPath, dstPath); err != nil {
		t.Fatalf("Error converting file: %s", err)
	}
	if _, err := bitmap.Load(dstPath); err != nil {
		t.Errorf("Converted file is not a valid bitmap: %s", err)
	}

	badPath := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(badPath, []byte("nope"), 0600); err != nil {
		t.Fatalf("Error writing bad source: %s", err)
	}
	badDst := filepath.Join(dir, "bad.bmp")
	if _, err := ConvertFile(badPath, badDst); err == nil {
		t.Errorf("Expected converting a text file to fail")
	}
	if _, err := os.Stat(badDst); !os.IsNotExist(err) {
		t.Errorf("Expected no output file after a failed conversion")
	}
}
