package model

import "io"

// InputPayload is the data to hide, either the message given on the command line or the content of a file
type InputPayload struct {
	Name    string
	Content io.Reader
	Size    int64
}

// BitmapSummary describes a carrier and how much it can hold
type BitmapSummary struct {
	FileSize        uint32 `json:"file_size"`
	OffsetData      uint32 `json:"offset_data"`
	Width           int32  `json:"width"`
	Height          int32  `json:"height"`
	BitCount        uint16 `json:"bit_count"`
	Compression     uint32 `json:"compression"`
	PixelBytes      int    `json:"pixel_bytes"`
	PayloadCapacity int    `json:"payload_capacity"`
}
