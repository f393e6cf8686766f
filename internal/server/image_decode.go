package server

import (
	"net/http"
	"textsteg/api"
	"textsteg/internal/logging"
	"textsteg/pkg/config"

	"github.com/gin-gonic/gin"
)

// DecodeImageHandler godoc
//
// @Summary Reveal the text hidden in an image
// @Description This endpoint will return the text previously hidden in the supplied image. When the image holds no message, found is false and text contains whatever was read
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.DecodeImageRequest true "Body with the image to decode"
// @Success 200 {object} api.DecodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /decode/image [post]
func DecodeImageHandler(defaults config.ImageEncodeConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var requestBody api.DecodeImageRequest

		logger := logging.BuildLoggerFromCtx(ctx)
		logger.Debug("Processing image decode request")

		if err := ctx.ShouldBindJSON(&requestBody); err != nil {
			logger.WithError(err).Error("Error decoding request body")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
			return
		}

		decodeConfig, err := requestDecodeConfig(defaults, requestBody.Terminator)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidConfig)
			return
		}

		message, stats, err := decodeText(requestBody.ImageToDecode, decodeConfig)
		if err != nil {
			handleCodecError(ctx, logger, err)
			return
		}

		logger.With("stats", toHumanizedDecodeStats(stats), "found", message.Found()).Info("Image decoding was successful")

		ctx.JSON(http.StatusOK, api.DecodeImageResponse{Message: message})
	}
}
