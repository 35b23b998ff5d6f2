// Package bitmap reads and writes uncompressed BMP files as a pair of headers plus an opaque pixel buffer.
package bitmap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	ErrFileOpen         = errors.New("bitmap file could not be opened")
	ErrInvalidSignature = errors.New("not a bitmap, signature is not BM")
	ErrInvalidLayout    = errors.New("bitmap header offsets are inconsistent")
	ErrTruncatedData    = errors.New("bitmap is shorter than its headers declare")
)

// Bitmap is an in memory BMP file. PixelData always holds FileSize - OffsetData bytes and is owned by the Bitmap.
type Bitmap struct {
	FileHeader FileHeader
	InfoHeader InfoHeader
	// Gap holds whatever sits between the 54 header bytes and OffsetData, such as a palette
	Gap       []byte
	PixelData []byte
}

// Decode parses a full BMP file. The returned bitmap does not alias data.
func Decode(data []byte) (*Bitmap, error) {
	if len(data) < len(Signature) || !bytes.Equal(data[:len(Signature)], Signature[:]) {
		return nil, ErrInvalidSignature
	}
	if len(data) < FileHeaderLen {
		return nil, fmt.Errorf("%w: file header needs %d bytes, got %d", ErrTruncatedData, FileHeaderLen, len(data))
	}

	bm := &Bitmap{}
	bm.FileHeader.unmarshal(data[:FileHeaderLen])

	if len(data) < HeadersLen {
		return nil, fmt.Errorf("%w: info header needs %d bytes, got %d", ErrTruncatedData, InfoHeaderLen, len(data)-FileHeaderLen)
	}
	bm.InfoHeader.unmarshal(data[FileHeaderLen:HeadersLen])

	fileSize, offset := int64(bm.FileHeader.FileSize), int64(bm.FileHeader.OffsetData)
	if offset < HeadersLen {
		return nil, fmt.Errorf("%w: pixel data offset %d overlaps the %d header bytes", ErrInvalidLayout, offset, HeadersLen)
	}
	dataSize := fileSize - offset
	if dataSize < 0 {
		return nil, fmt.Errorf("%w: pixel data offset %d is past the declared file size %d", ErrInvalidLayout, offset, fileSize)
	}
	if offset > int64(len(data)) {
		return nil, fmt.Errorf("%w: pixel data offset %d is past the end of the file (%d bytes)", ErrInvalidLayout, offset, len(data))
	}
	if available := int64(len(data)) - offset; available < dataSize {
		return nil, fmt.Errorf("%w: expected %d bytes of pixel data, found %d", ErrTruncatedData, dataSize, available)
	}

	if offset > HeadersLen {
		bm.Gap = bytes.Clone(data[HeadersLen:offset])
	}
	bm.PixelData = bytes.Clone(data[offset : offset+dataSize])
	return bm, nil
}

// Read consumes r to the end and decodes it
func Read(r io.Reader) (*Bitmap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func Load(path string) (*Bitmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileOpen, err)
	}
	return Decode(data)
}

// Encode serializes the headers, the gap and the pixel data back to back. No consistency checks are made, keeping
// the sizes in the headers in line with the buffers is up to the caller.
func (bm *Bitmap) Encode() []byte {
	out := make([]byte, HeadersLen, HeadersLen+len(bm.Gap)+len(bm.PixelData))
	bm.FileHeader.marshal(out[:FileHeaderLen])
	bm.InfoHeader.marshal(out[FileHeaderLen:HeadersLen])
	out = append(out, bm.Gap...)
	return append(out, bm.PixelData...)
}

func (bm *Bitmap) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bm.Encode())
	return int64(n), err
}

// Save writes the encoded bitmap to path. The whole file is built in memory before anything touches the disk.
func (bm *Bitmap) Save(path string) error {
	if err := os.WriteFile(path, bm.Encode(), 0664); err != nil {
		return fmt.Errorf("%w: %w", ErrFileOpen, err)
	}
	return nil
}

// IsCompressed reports whether the info header declares anything other than BI_RGB
func (bm *Bitmap) IsCompressed() bool {
	return bm.InfoHeader.Compression != CompressionRGB
}
