package server

import (
	"bmpsteg/api"
	"bmpsteg/api/bmpsteg/EncodeBitmap"
	"bmpsteg/internal/logging"
	"bmpsteg/pkg/bitmap"
	"bmpsteg/pkg/config"
	"bmpsteg/pkg/stego"
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
)

var errMalformedFlatbuffer = errors.New("malformed flatbuffers encode request")

type encodeRequest struct {
	carrier, payload    []byte
	requireUncompressed bool
}

// EncodeBitmapHandler godoc
//
// @Summary Encode a payload into a bitmap
// @Description This endpoint will hide the supplied payload in the bitmap, and return the stego bitmap. With an application/octet-stream body the request and response are flatbuffers, but all errors are returned as JSON
// @Tags bitmap
// @Accept json,octet-stream
// @Produce json,octet-stream
// @Param requestBody body api.EncodeBitmapRequest true "Body with the carrier bitmap and the payload to hide in it"
// @Success 200 {object} api.EncodeBitmapResponse
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /encode/bmp [post]
func EncodeBitmapHandler(sConfig config.StegoConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.ContentType() == binaryContentType {
			encodeFlatbuffersRequest(ctx, sConfig)
		} else {
			encodeJSONRequest(ctx, sConfig)
		}
	}
}

func encodeJSONRequest(ctx *gin.Context, sConfig config.StegoConfig) {
	var requestBody api.EncodeBitmapRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing bitmap encode request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	encodedBitmap, capacity, ok := encodeBitmap(ctx, logger, encodeRequest{
		carrier: requestBody.Carrier,
		payload: requestBody.Payload,
	}, sConfig)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, api.EncodeBitmapResponse{EncodedBitmap: encodedBitmap, PayloadCapacity: capacity})
}

func encodeFlatbuffersRequest(ctx *gin.Context, sConfig config.StegoConfig) {
	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing flatbuffers bitmap encode request")

	rawRequest, err := ctx.GetRawData()
	if err != nil {
		logger.WithError(err).Error("Error reading request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	request, err := parseEncodeRequest(rawRequest)
	if err != nil {
		logger.WithError(err).Error("Error decoding flatbuffers request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	encodedBitmap, _, ok := encodeBitmap(ctx, logger, request, sConfig)
	if !ok {
		return
	}

	fbResponseBuilder := flatbuffers.NewBuilder(len(encodedBitmap) + 64)
	encodedBitmapOffset := fbResponseBuilder.CreateByteVector(encodedBitmap)
	EncodeBitmap.BitmapEncodeResponseStart(fbResponseBuilder)
	EncodeBitmap.BitmapEncodeResponseAddEncodedBitmap(fbResponseBuilder, encodedBitmapOffset)
	EncodeBitmap.FinishBitmapEncodeResponseBuffer(fbResponseBuilder, EncodeBitmap.BitmapEncodeResponseEnd(fbResponseBuilder))

	ctx.Data(http.StatusOK, binaryContentType, fbResponseBuilder.FinishedBytes())
}

// parseEncodeRequest copies the fields out of a flatbuffers request. Offsets in the buffer are not trusted, so
// out of range accesses are turned into errors.
func parseEncodeRequest(rawRequest []byte) (request encodeRequest, err error) {
	if len(rawRequest) < flatbuffers.SizeUOffsetT {
		return request, errMalformedFlatbuffer
	}

	defer func() {
		if r := recover(); r != nil {
			request, err = encodeRequest{}, fmt.Errorf("%w: %v", errMalformedFlatbuffer, r)
		}
	}()

	fbRequest := EncodeBitmap.GetRootAsBitmapEncodeRequest(rawRequest, 0)
	return encodeRequest{
		carrier:             fbRequest.CarrierBytes(),
		payload:             fbRequest.PayloadBytes(),
		requireUncompressed: fbRequest.RequireUncompressed(),
	}, nil
}

// encodeBitmap runs the full pipeline for one request and writes the error response itself when it fails
func encodeBitmap(ctx *gin.Context, logger *logging.Logger, request encodeRequest, sConfig config.StegoConfig) (encodedBitmap []byte, capacity int, ok bool) {
	bm, err := bitmap.Decode(request.carrier)
	if err != nil {
		logger.WithError(err).Error("Error decoding carrier bitmap")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidBitmap)
		return nil, 0, false
	}

	sConfig.RequireUncompressed = sConfig.RequireUncompressed || request.requireUncompressed
	bitmapEncoder, err := stego.NewEncoder(bm, sConfig)
	if err != nil {
		handleEncodeError(ctx, logger, err)
		return nil, 0, false
	}

	if err = bitmapEncoder.Embed(request.payload); err != nil {
		handleEncodeError(ctx, logger, err)
		return nil, 0, false
	}

	encodedBitmapBuffer := bytes.NewBuffer(make([]byte, 0, len(request.carrier)))
	if err = bitmapEncoder.WriteEncodedBitmap(encodedBitmapBuffer); err != nil {
		handleEncodeError(ctx, logger, err)
		return nil, 0, false
	}

	logger.With(encodeStatsAttr(bitmapEncoder.Stats(), len(request.payload))).Info("Bitmap encoding was successful")
	return encodedBitmapBuffer.Bytes(), stego.Capacity(bm), true
}

func handleEncodeError(ctx *gin.Context, logger *logging.Logger, err error) {
	logger.WithError(err).Error("Error encoding payload into bitmap")
	ctx.AbortWithStatusJSON(stegoErrorResponse(err, errEncode))
}
