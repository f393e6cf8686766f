package server

import (
	"net/http"
	"textsteg/api"
	"textsteg/internal/logging"
	"textsteg/pkg/config"

	"github.com/gin-gonic/gin"
)

// EmbedImageHandler godoc
//
// @Summary Hide text in the supplied image
// @Description This endpoint will hide the supplied text in the image, and return the encoded image in a lossless format. The text may only contain characters in the U+0000-U+00FF range
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.EmbedImageRequest true "Body with the image to hide the text in, the text, and optionally the terminator mode and output format"
// @Success 200 {object} api.EmbedImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /embed/image [post]
func EmbedImageHandler(defaults config.ImageEncodeConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var requestBody api.EmbedImageRequest

		logger := logging.BuildLoggerFromCtx(ctx)
		logger.Debug("Processing image embed request")

		if err := ctx.ShouldBindJSON(&requestBody); err != nil {
			logger.WithError(err).Error("Error decoding request body")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
			return
		}

		if len(requestBody.ImageToEncode) == 0 || requestBody.Text == "" {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errMissingData)
			return
		}

		encodeConfig, err := requestEncodeConfig(defaults, requestBody.Terminator, requestBody.OutputFormat)
		if err != nil {
			logger.WithError(err).Error("Invalid encode config in request")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidConfig)
			return
		}

		encodedImage, stats, err := embedText(requestBody.ImageToEncode, requestBody.Text, encodeConfig)
		if err != nil {
			handleCodecError(ctx, logger, err)
			return
		}

		logger.With("stats", toHumanizedEncodeStats(stats)).Info("Image embedding was successful")

		ctx.JSON(http.StatusOK, api.EmbedImageResponse{
			EncodedImage: encodedImage,
			OutputFormat: string(encodeConfig.OutputFormat),
		})
	}
}

func handleCodecError(ctx *gin.Context, logger *logging.Logger, err error) {
	status, body := errorResponseFor(err)
	logger.WithError(err).Error("Error processing image")
	ctx.AbortWithStatusJSON(status, body)
}
