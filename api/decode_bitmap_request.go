package api

type DecodeBitmapRequest struct {
	StegoBitmap []byte `json:"stego_bitmap" binding:"required"`
}

type DecodeBitmapResponse struct {
	Payload []byte `json:"payload"`
}
