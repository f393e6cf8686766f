package server

import (
	"fmt"
	"textsteg/pkg/config"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "textsteg/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"
)

// StartServer godoc
// @title textsteg API
// @version 1.0
// @description An API to hide text in images and reveal it again
// @BasePath /api/v1
func StartServer(port string, defaults config.ImageEncodeConfig) error {
	return NewRouter(defaults).Run(fmt.Sprintf(":%s", port))
}

// NewRouter wires every route. defaults supplies the output format and terminator mode for requests that do not set
// them
func NewRouter(defaults config.ImageEncodeConfig) *gin.Engine {
	defaults.PopulateUnsetConfigVars()

	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/embed/image", EmbedImageHandler(defaults))
	v1.POST("/decode/image", DecodeImageHandler(defaults))
	v1.POST("/capacity/image", CapacityImageHandler)

	fb := r.Group("/fb")
	fb.POST("/embed/image", FlatbuffersEmbedImageHandler(defaults))
	fb.POST("/decode/image", FlatbuffersDecodeImageHandler(defaults))

	return r
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	return fmt.Sprintf("{\"timestamp\":%q, \"status_code\": %d, \"latency\": %q, \"latency_raw\": %d, \"request_size\": %q, \"request_size_raw\": %d, \"client_ip\":%q, \"method\": %q, \"path\": %q, \"error\": %q}\n",
		param.TimeStamp.Format(RFC3339Millis),
		param.StatusCode,
		param.Latency.String(),
		param.Latency.Nanoseconds(),
		humanize.Bytes(uint64(max(param.BodySize, 0))),
		param.BodySize,
		param.ClientIP,
		param.Method,
		param.Path,
		param.ErrorMessage,
	)
}
