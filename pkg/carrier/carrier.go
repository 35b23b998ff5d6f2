// Package carrier turns ordinary images into bitmaps suitable for hiding data: 24 bit, uncompressed, fully opaque.
package carrier

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

var ErrUnsupportedImage = errors.New("source is not a PNG, JPEG, GIF or BMP image")

// Flatten copies img onto an opaque black canvas. bmp.Encode writes opaque RGBA images as 24 bit BI_RGB bitmaps,
// while translucent ones would get a 32 bit bitfields header.
func Flatten(img image.Image) *image.RGBA {
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Over)
	return rgba
}

// Convert decodes any supported image from src and writes it to dst as a carrier bitmap, returning the source format
func Convert(src io.Reader, dst io.Writer) (string, error) {
	img, format, err := image.Decode(src)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return "", ErrUnsupportedImage
		}
		return "", err
	}

	if err = bmp.Encode(dst, Flatten(img)); err != nil {
		return format, fmt.Errorf("encoding carrier bitmap: %w", err)
	}
	return format, nil
}

func ConvertFile(srcPath, dstPath string) (string, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}

	format, err := Convert(src, dst)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(dstPath)
		return "", err
	}
	return format, nil
}
