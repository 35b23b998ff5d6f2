package server

import (
	"bmpsteg/api"
	"bmpsteg/internal/logging"
	"bmpsteg/pkg/bitmap"
	"bmpsteg/pkg/stego"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

// InspectBitmapHandler godoc
//
// @Summary Inspect a carrier bitmap
// @Description Returns the header fields of the supplied bitmap and the largest payload it can hold
// @Tags bitmap
// @Accept json
// @Produce json
// @Param requestBody body api.InspectBitmapRequest true "Body with the bitmap to inspect"
// @Success 200 {object} api.InspectBitmapResponse
// @Failure 400 {object} api.Error
// @Router /inspect/bmp [post]
func InspectBitmapHandler(ctx *gin.Context) {
	var requestBody api.InspectBitmapRequest

	logger := logging.BuildLoggerFromCtx(ctx)

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	bm, err := bitmap.Decode(requestBody.Bitmap)
	if err != nil {
		logger.WithError(err).Error("Error decoding request bitmap")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidBitmap)
		return
	}

	summary := stego.Summarize(bm)
	ctx.JSON(http.StatusOK, api.InspectBitmapResponse{
		BitmapSummary:        summary,
		PixelBytesHuman:      humanize.Bytes(uint64(summary.PixelBytes)),
		PayloadCapacityHuman: humanize.Bytes(uint64(summary.PayloadCapacity)),
	})
}
