package api

type EncodeBitmapRequest struct {
	Carrier []byte `json:"carrier" binding:"required"`
	Payload []byte `json:"payload"`
}

type EncodeBitmapResponse struct {
	EncodedBitmap   []byte `json:"encoded_bitmap"`
	PayloadCapacity int    `json:"payload_capacity"`
}
