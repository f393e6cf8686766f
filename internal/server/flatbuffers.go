package server

import (
	"io"
	"net/http"
	"textsteg/api/textsteg/DecodeImage"
	"textsteg/api/textsteg/EmbedImage"
	"textsteg/internal/logging"
	"textsteg/pkg/config"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
)

const flatbuffersContentType = "application/octet-stream"

// FlatbuffersEmbedImageHandler is the binary version of EmbedImageHandler. The request body is an ImageEmbedRequest
// flatbuffer, and the response an ImageEmbedResponse. Errors are still returned as JSON
func FlatbuffersEmbedImageHandler(defaults config.ImageEncodeConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		logger := logging.BuildLoggerFromCtx(ctx)

		requestBody, err := readFlatbuffer(ctx)
		if err != nil {
			logger.WithError(err).Error("Error reading request body")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
			return
		}

		embedImageRequest := EmbedImage.GetRootAsImageEmbedRequest(requestBody, 0)
		imageToEncode := embedImageRequest.ImageToEncodeBytes()
		text := string(embedImageRequest.Text())
		if len(imageToEncode) == 0 || text == "" {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errMissingData)
			return
		}

		encodeConfig, err := requestEncodeConfig(defaults, string(embedImageRequest.Terminator()), "")
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidConfig)
			return
		}

		encodedImage, stats, err := embedText(imageToEncode, text, encodeConfig)
		if err != nil {
			handleCodecError(ctx, logger, err)
			return
		}
		logger.With("stats", toHumanizedEncodeStats(stats)).Info("Image embedding was successful")

		fbResponseBuilder := flatbuffers.NewBuilder(len(encodedImage) + 64)
		encodedImageOffset := fbResponseBuilder.CreateByteVector(encodedImage)
		EmbedImage.ImageEmbedResponseStart(fbResponseBuilder)
		EmbedImage.ImageEmbedResponseAddEncodedImage(fbResponseBuilder, encodedImageOffset)
		fbResponseBuilder.Finish(EmbedImage.ImageEmbedResponseEnd(fbResponseBuilder))

		ctx.Data(http.StatusOK, flatbuffersContentType, fbResponseBuilder.FinishedBytes())
	}
}

// FlatbuffersDecodeImageHandler is the binary version of DecodeImageHandler
func FlatbuffersDecodeImageHandler(defaults config.ImageEncodeConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		logger := logging.BuildLoggerFromCtx(ctx)

		requestBody, err := readFlatbuffer(ctx)
		if err != nil {
			logger.WithError(err).Error("Error reading request body")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
			return
		}

		decodeImageRequest := DecodeImage.GetRootAsImageDecodeRequest(requestBody, 0)
		decodeConfig, err := requestDecodeConfig(defaults, string(decodeImageRequest.Terminator()))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidConfig)
			return
		}

		message, stats, err := decodeText(decodeImageRequest.ImageToDecodeBytes(), decodeConfig)
		if err != nil {
			handleCodecError(ctx, logger, err)
			return
		}
		logger.With("stats", toHumanizedDecodeStats(stats), "found", message.Found()).Info("Image decoding was successful")

		fbResponseBuilder := flatbuffers.NewBuilder(len(message.Text) + 64)
		textOffset := fbResponseBuilder.CreateString(message.Text)
		DecodeImage.ImageDecodeResponseStart(fbResponseBuilder)
		DecodeImage.ImageDecodeResponseAddText(fbResponseBuilder, textOffset)
		DecodeImage.ImageDecodeResponseAddFound(fbResponseBuilder, message.Found())
		fbResponseBuilder.Finish(DecodeImage.ImageDecodeResponseEnd(fbResponseBuilder))

		ctx.Data(http.StatusOK, flatbuffersContentType, fbResponseBuilder.FinishedBytes())
	}
}

// readFlatbuffer reads the whole body, rejecting anything too short to hold a root table offset
func readFlatbuffer(ctx *gin.Context) ([]byte, error) {
	requestBody, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return nil, err
	}
	if len(requestBody) < flatbuffers.SizeUOffsetT {
		return nil, io.ErrUnexpectedEOF
	}
	return requestBody, nil
}
