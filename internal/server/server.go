package server

import (
	"bmpsteg/internal/logging"
	"bmpsteg/pkg/config"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "bmpsteg/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"

	binaryContentType = "application/octet-stream"
)

// StartServer godoc
// @title bmpSteg API
// @version 1.0
// @description An API to hide data in uncompressed bitmaps using LSB steganography
// @BasePath /api/v1
func StartServer(sConfig config.ServerConfig) error {
	logging.SetLevel(sConfig.SlogLevel())
	logging.BuildLogger().Info("Starting server", "port", sConfig.Port, "max_request_size", humanize.Bytes(uint64(sConfig.MaxRequestBytes)))

	return NewRouter(sConfig).Run(fmt.Sprintf(":%s", sConfig.Port))
}

func NewRouter(sConfig config.ServerConfig) *gin.Engine {
	sConfig.PopulateUnsetConfigVars()
	stegoConfig := sConfig.StegoConfig()

	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery(), limitRequestBody(sConfig.MaxRequestBytes))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/encode/bmp", EncodeBitmapHandler(stegoConfig))
	v1.POST("/decode/bmp", DecodeBitmapHandler(stegoConfig))
	v1.POST("/inspect/bmp", InspectBitmapHandler)

	return r
}

func limitRequestBody(maxBytes int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes)
		ctx.Next()
	}
}

type requestLogLine struct {
	Timestamp       string `json:"timestamp"`
	StatusCode      int    `json:"status_code"`
	Latency         string `json:"latency"`
	LatencyRaw      int64  `json:"latency_raw"`
	ResponseSize    string `json:"response_size"`
	ResponseSizeRaw int    `json:"response_size_raw"`
	ClientIP        string `json:"client_ip"`
	Method          string `json:"method"`
	Path            string `json:"path"`
	Error           string `json:"error"`
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	bodySize := param.BodySize
	if bodySize < 0 {
		bodySize = 0
	}

	line, err := json.Marshal(requestLogLine{
		Timestamp:       param.TimeStamp.Format(RFC3339Millis),
		StatusCode:      param.StatusCode,
		Latency:         param.Latency.String(),
		LatencyRaw:      int64(param.Latency),
		ResponseSize:    humanize.Bytes(uint64(bodySize)),
		ResponseSizeRaw: param.BodySize,
		ClientIP:        param.ClientIP,
		Method:          param.Method,
		Path:            param.Path,
		Error:           param.ErrorMessage,
	})
	if err != nil {
		return fmt.Sprintf("{\"error\": %q}\n", err.Error())
	}
	return string(line) + "\n"
}
