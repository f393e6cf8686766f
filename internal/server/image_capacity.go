package server

import (
	"net/http"
	"textsteg/api"
	"textsteg/internal/logging"
	"textsteg/pkg/config"
	stegImage "textsteg/pkg/image"

	"github.com/gin-gonic/gin"
)

// CapacityImageHandler godoc
//
// @Summary Report how much text fits in an image
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.CapacityImageRequest true "Body with the image to measure"
// @Success 200 {object} api.CapacityImageResponse
// @Failure 400 {object} api.Error
// @Router /capacity/image [post]
func CapacityImageHandler(ctx *gin.Context) {
	var requestBody api.CapacityImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	img, _, err := stegImage.LoadImageBytes(requestBody.Image)
	if err != nil {
		handleCodecError(ctx, logger, err)
		return
	}

	imageEncoder, err := stegImage.NewImageEncoder(img, config.ImageEncodeConfig{})
	if err != nil {
		handleCodecError(ctx, logger, err)
		return
	}

	ctx.JSON(http.StatusOK, api.CapacityImageResponse{Capacity: imageEncoder.Capacity()})
}
