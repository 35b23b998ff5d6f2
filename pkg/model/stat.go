package model

import (
	"time"
)

type EncodeStats struct {
	Setup               time.Duration `json:"setup"`
	DataEncoding        time.Duration `json:"data_encoding"`
	OutputBitmapWriting time.Duration `json:"output_bitmap_writing"`
}

type DecodeStats struct {
	Setup        time.Duration `json:"setup"`
	DataDecoding time.Duration `json:"data_decoding"`
}
