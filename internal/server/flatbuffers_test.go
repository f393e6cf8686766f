package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"textsteg/api/textsteg/DecodeImage"
	"textsteg/api/textsteg/EmbedImage"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildEmbedRequest(imageToEncode []byte, text string) []byte {
	builder := flatbuffers.NewBuilder(len(imageToEncode) + len(text) + 64)
	imageOffset := builder.CreateByteVector(imageToEncode)
	textOffset := builder.CreateString(text)
	EmbedImage.ImageEmbedRequestStart(builder)
	EmbedImage.ImageEmbedRequestAddImageToEncode(builder, imageOffset)
	EmbedImage.ImageEmbedRequestAddText(builder, textOffset)
	builder.Finish(EmbedImage.ImageEmbedRequestEnd(builder))
	return builder.FinishedBytes()
}

func buildDecodeRequest(imageToDecode []byte) []byte {
	builder := flatbuffers.NewBuilder(len(imageToDecode) + 64)
	imageOffset := builder.CreateByteVector(imageToDecode)
	DecodeImage.ImageDecodeRequestStart(builder)
	DecodeImage.ImageDecodeRequestAddImageToDecode(builder, imageOffset)
	builder.Finish(DecodeImage.ImageDecodeRequestEnd(builder))
	return builder.FinishedBytes()
}

func postFlatbuffer(router http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", flatbuffersContentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestFlatbuffersEmbedThenDecode(t *testing.T) {
	router := newTestRouter()
	text := "binary transport"

	embedRec := postFlatbuffer(router, "/fb/embed/image", buildEmbedRequest(pngImageBytes(t, 32, 32), text))
	require.Equal(t, http.StatusOK, embedRec.Code, embedRec.Body.String())
	assert.Equal(t, flatbuffersContentType, embedRec.Header().Get("Content-Type"))

	embedResponse := EmbedImage.GetRootAsImageEmbedResponse(embedRec.Body.Bytes(), 0)
	encodedImage := embedResponse.EncodedImageBytes()
	require.NotEmpty(t, encodedImage)

	decodeRec := postFlatbuffer(router, "/fb/decode/image", buildDecodeRequest(encodedImage))
	require.Equal(t, http.StatusOK, decodeRec.Code, decodeRec.Body.String())

	decodeResponse := DecodeImage.GetRootAsImageDecodeResponse(decodeRec.Body.Bytes(), 0)
	assert.True(t, decodeResponse.Found())
	assert.Equal(t, text, string(decodeResponse.Text()))
}

func TestFlatbuffersEmbedErrors(t *testing.T) {
	router := newTestRouter()

	rec := postFlatbuffer(router, "/fb/embed/image", []byte{1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postFlatbuffer(router, "/fb/embed/image", buildEmbedRequest(pngImageBytes(t, 4, 4), ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postFlatbuffer(router, "/fb/embed/image", buildEmbedRequest(pngImageBytes(t, 4, 4), "much too long"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), errImageNotBigEnough.Code)
}
