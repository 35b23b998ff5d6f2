package server

import (
	"bmpsteg/api"
	"bmpsteg/pkg/stego"
	"errors"
	"net/http"
)

var (
	errRequestBodyDecode      = api.Error{Code: "invalid_request", Error: "Error reading request body"}
	errInvalidBitmap          = api.Error{Code: "invalid_bitmap", Error: "Invalid bitmap supplied in request body"}
	errInsufficientCapacity   = api.Error{Code: "insufficient_capacity", Error: "Bitmap is not big enough to hold the supplied payload"}
	errPayloadTooLarge        = api.Error{Code: "payload_too_large", Error: "Payload is larger than the 4 GiB the length prefix can describe"}
	errPayloadNotFound        = api.Error{Code: "payload_not_found", Error: "No payload found in the supplied bitmap"}
	errUnsupportedCompression = api.Error{Code: "unsupported_compression", Error: "Bitmap is compressed, only uncompressed bitmaps are supported"}
	errEncode                 = api.Error{Code: "encode_error", Error: "An error occurred while encoding the bitmap"}
	errDecode                 = api.Error{Code: "decode_error", Error: "An error occurred while decoding the bitmap"}
)

// stegoErrorResponse maps errors from the stego package to a status code and body, falling back to fallback
func stegoErrorResponse(err error, fallback api.Error) (int, api.Error) {
	switch {
	case errors.Is(err, stego.ErrInsufficientCapacity):
		return http.StatusUnprocessableEntity, errInsufficientCapacity
	case errors.Is(err, stego.ErrPayloadTooLarge):
		return http.StatusUnprocessableEntity, errPayloadTooLarge
	case errors.Is(err, stego.ErrUnsupportedCompression):
		return http.StatusUnprocessableEntity, errUnsupportedCompression
	case errors.Is(err, stego.ErrPayloadNotFound):
		return http.StatusNotFound, errPayloadNotFound
	default:
		return http.StatusInternalServerError, fallback
	}
}
