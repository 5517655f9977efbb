package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"doctriage/internal/port"
	"doctriage/internal/service"
)

// UploadHandler handles media upload analysis endpoints.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadImage handles POST /api/v1/upload/image
// @Summary Analyze an uploaded image
// @Description Recognize text in an image (PNG, JPG, WEBP, GIF), then classify it and extract fields
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image to analyze"
// @Success 200 {object} Response{data=UploadData} "Recognized text with analysis"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 422 {object} ErrorResponseBody "No readable text in file"
// @Router /upload/image [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	input, ok := readUpload(c)
	if !ok {
		return
	}

	result, err := h.uploadService.AnalyzeImage(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// UploadAudio handles POST /api/v1/upload/audio
// @Summary Analyze an uploaded recording
// @Description Transcribe an audio recording (MP3, MP4, M4A, WAV, WEBM), then classify it and extract fields
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Recording to analyze"
// @Success 200 {object} Response{data=UploadData} "Transcript with analysis"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 422 {object} ErrorResponseBody "No speech in recording"
// @Router /upload/audio [post]
func (h *UploadHandler) UploadAudio(c *gin.Context) {
	input, ok := readUpload(c)
	if !ok {
		return
	}

	result, err := h.uploadService.AnalyzeAudio(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// readUpload pulls the uploaded file out of the multipart form. Returns false
// if the file is missing or unreadable (error response already written).
func readUpload(c *gin.Context) (port.MediaInput, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return port.MediaInput{}, false
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return port.MediaInput{}, false
	}

	return port.MediaInput{
		Data:        data,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}, true
}
