package stego

import (
	"bmpsteg/pkg/bitmap"
	"bmpsteg/pkg/config"
	"bmpsteg/pkg/model"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"
)

type Encoder struct {
	bitmap *bitmap.Bitmap
	stats  model.EncodeStats
}

func NewEncoder(bm *bitmap.Bitmap, sConfig config.StegoConfig) (*Encoder, error) {
	if err := checkCompression(bm, sConfig.RequireUncompressed); err != nil {
		return nil, err
	}
	return &Encoder{bitmap: bm}, nil
}

func (e *Encoder) Stats() model.EncodeStats {
	return e.stats
}

func (e *Encoder) Bitmap() *bitmap.Bitmap {
	return e.bitmap
}

// EmbedPayload checks the declared payload size against the carrier before reading any of its content, then embeds it
func (e *Encoder) EmbedPayload(payload model.InputPayload) error {
	e.stats = model.EncodeStats{}

	content, err := e.readPayload(payload)
	if err != nil {
		return err
	}
	return e.Embed(content)
}

func (e *Encoder) readPayload(payload model.InputPayload) ([]byte, error) {
	setupStart := time.Now()
	defer func() {
		e.stats.Setup = time.Since(setupStart)
	}()

	if payload.Size < 0 || payload.Size > math.MaxUint32 {
		return nil, ErrPayloadTooLarge
	}
	if err := e.checkCapacity(int(payload.Size)); err != nil {
		return nil, err
	}

	content := make([]byte, payload.Size)
	if _, err := io.ReadFull(payload.Content, content); err != nil {
		return nil, fmt.Errorf("reading payload %s: %w", payload.Name, err)
	}
	return content, nil
}

// Embed writes the length prefix and payload into the pixel data. On error the bitmap is left untouched.
func (e *Encoder) Embed(payload []byte) error {
	encodeStart := time.Now()
	defer func() {
		e.stats.DataEncoding = time.Since(encodeStart)
	}()

	if uint64(len(payload)) > math.MaxUint32 {
		return ErrPayloadTooLarge
	}
	if err := e.checkCapacity(len(payload)); err != nil {
		return err
	}

	var lengthPrefix [LengthPrefixBytes]byte
	binary.LittleEndian.PutUint32(lengthPrefix[:], uint32(len(payload)))

	pix := e.bitmap.PixelData
	cursor := 0
	for _, b := range lengthPrefix {
		EmbedByte(pix[cursor:cursor+CarrierBytesPerByte], b)
		cursor += CarrierBytesPerByte
	}
	for _, b := range payload {
		EmbedByte(pix[cursor:cursor+CarrierBytesPerByte], b)
		cursor += CarrierBytesPerByte
	}
	return nil
}

func (e *Encoder) WriteEncodedBitmap(output io.Writer) error {
	writeStart := time.Now()
	defer func() {
		e.stats.OutputBitmapWriting = time.Since(writeStart)
	}()

	_, err := e.bitmap.WriteTo(output)
	return err
}

// SaveEncodedBitmap writes the encoded bitmap to path, wrapping write failures in bitmap.ErrFileOpen
func (e *Encoder) SaveEncodedBitmap(path string) error {
	writeStart := time.Now()
	defer func() {
		e.stats.OutputBitmapWriting = time.Since(writeStart)
	}()

	return e.bitmap.Save(path)
}

func (e *Encoder) checkCapacity(payloadLen int) error {
	required, available := RequiredPixelBytes(payloadLen), len(e.bitmap.PixelData)
	if required > available {
		return fmt.Errorf("%w: %d pixel bytes required, %d available", ErrInsufficientCapacity, required, available)
	}
	return nil
}
