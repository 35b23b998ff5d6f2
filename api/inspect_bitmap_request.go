package api

import "bmpsteg/pkg/model"

type InspectBitmapRequest struct {
	Bitmap []byte `json:"bitmap" binding:"required"`
}

type InspectBitmapResponse struct {
	model.BitmapSummary
	PixelBytesHuman      string `json:"pixel_bytes_human"`
	PayloadCapacityHuman string `json:"payload_capacity_human"`
}
