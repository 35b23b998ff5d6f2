package server

import (
	"bmpsteg/api"
	"bmpsteg/internal/logging"
	"bmpsteg/pkg/bitmap"
	"bmpsteg/pkg/config"
	"bmpsteg/pkg/stego"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DecodeBitmapHandler godoc
//
// @Summary Decode a payload from a bitmap
// @Description Extracts the payload hidden in the least significant bits of the supplied bitmap
// @Tags bitmap
// @Accept json
// @Produce json
// @Param requestBody body api.DecodeBitmapRequest true "Body with the stego bitmap to decode"
// @Success 200 {object} api.DecodeBitmapResponse
// @Failure 400 {object} api.Error
// @Failure 404 {object} api.Error
// @Failure 422 {object} api.Error
// @Router /decode/bmp [post]
func DecodeBitmapHandler(sConfig config.StegoConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var requestBody api.DecodeBitmapRequest

		logger := logging.BuildLoggerFromCtx(ctx)
		logger.Debug("Processing bitmap decode request")

		if err := ctx.ShouldBindJSON(&requestBody); err != nil {
			logger.WithError(err).Error("Error decoding request body")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
			return
		}

		bm, err := bitmap.Decode(requestBody.StegoBitmap)
		if err != nil {
			logger.WithError(err).Error("Error decoding request bitmap")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidBitmap)
			return
		}

		bitmapDecoder, err := stego.NewDecoder(bm, sConfig)
		if err != nil {
			handleDecodeError(ctx, logger, err)
			return
		}

		payload, err := bitmapDecoder.Extract()
		if err != nil {
			handleDecodeError(ctx, logger, err)
			return
		}

		logger.With(decodeStatsAttr(bitmapDecoder.Stats(), len(payload))).Info("Bitmap decoding was successful")

		ctx.JSON(http.StatusOK, api.DecodeBitmapResponse{Payload: payload})
	}
}

func handleDecodeError(ctx *gin.Context, logger *logging.Logger, err error) {
	logger.WithError(err).Warn("Error decoding payload from bitmap")
	ctx.AbortWithStatusJSON(stegoErrorResponse(err, errDecode))
}
