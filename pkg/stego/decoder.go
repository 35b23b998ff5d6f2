package stego

import (
	"bmpsteg/pkg/bitmap"
	"bmpsteg/pkg/config"
	"bmpsteg/pkg/model"
	"encoding/binary"
	"time"
)

type Decoder struct {
	bitmap *bitmap.Bitmap
	stats  model.DecodeStats
}

func NewDecoder(bm *bitmap.Bitmap, sConfig config.StegoConfig) (*Decoder, error) {
	setupStart := time.Now()
	if err := checkCompression(bm, sConfig.RequireUncompressed); err != nil {
		return nil, err
	}
	return &Decoder{
		bitmap: bm,
		stats:  model.DecodeStats{Setup: time.Since(setupStart)},
	}, nil
}

func (d *Decoder) Stats() model.DecodeStats {
	return d.stats
}

// Extract reads back a payload hidden by Encoder.Embed. A zero length, or a length that would run past the end of
// the pixel data, is reported as ErrPayloadNotFound.
func (d *Decoder) Extract() ([]byte, error) {
	decodeStart := time.Now()
	defer func() {
		d.stats.DataDecoding = time.Since(decodeStart)
	}()

	pix := d.bitmap.PixelData
	if len(pix) < lengthPrefixCarrierBytes {
		return nil, ErrPayloadNotFound
	}

	var lengthPrefix [LengthPrefixBytes]byte
	cursor := 0
	for i := range lengthPrefix {
		lengthPrefix[i] = ExtractByte(pix[cursor : cursor+CarrierBytesPerByte])
		cursor += CarrierBytesPerByte
	}

	payloadLen := binary.LittleEndian.Uint32(lengthPrefix[:])
	if payloadLen == 0 || uint64(cursor)+uint64(payloadLen)*CarrierBytesPerByte > uint64(len(pix)) {
		return nil, ErrPayloadNotFound
	}

	payload := make([]byte, payloadLen)
	for i := range payload {
		payload[i] = ExtractByte(pix[cursor : cursor+CarrierBytesPerByte])
		cursor += CarrierBytesPerByte
	}
	return payload, nil
}
