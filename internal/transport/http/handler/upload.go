package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/app"
	"resume-analyzer/internal/transport/http/middleware"
	"resume-analyzer/internal/transport/http/response"
)

type UploadHandler struct {
	uploadService *app.UploadService
}

func NewUploadHandler(uploadService *app.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload accepts a multipart form with one or more files under "files".
// Per-document failures come back in errors[]; the batch itself succeeds as
// long as the request was well-formed.
func (h *UploadHandler) Upload(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	form, err := c.MultipartForm()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid multipart form")
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		response.Fail(c, http.StatusBadRequest, app.ErrNoFiles.Error())
		return
	}

	files := make([]app.UploadFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			response.Fail(c, http.StatusBadRequest, fmt.Sprintf("read file %s failed", header.Filename))
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			response.Fail(c, http.StatusBadRequest, fmt.Sprintf("read file %s failed", header.Filename))
			return
		}
		files = append(files, app.UploadFile{
			Filename: header.Filename,
			Size:     header.Size,
			Data:     data,
		})
	}

	result, err := h.uploadService.Upload(c.Request.Context(), app.UploadInput{
		SessionID: sessionID,
		Files:     files,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrNoFiles), errors.Is(err, app.ErrTooManyFiles), errors.Is(err, app.ErrInvalidInput):
			response.Fail(c, http.StatusBadRequest, err.Error())
		default:
			response.Fail(c, http.StatusInternalServerError, "upload failed")
		}
		return
	}

	message := fmt.Sprintf("Processed %d resume(s)", result.ResumesLoaded)
	if result.ResumesLoaded == 0 {
		message = "No resumes could be processed"
	}

	body := gin.H{
		"message":        message,
		"resumes_loaded": result.ResumesLoaded,
		"errors":         emptyIfNil(result.Errors),
	}
	if len(result.Warnings) > 0 {
		body["warnings"] = result.Warnings
	}
	response.OK(c, body)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
