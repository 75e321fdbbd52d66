package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/app"
	"resume-analyzer/internal/session"
	"resume-analyzer/internal/transport/http/middleware"
	"resume-analyzer/internal/transport/http/response"
)

type SessionHandler struct {
	store         session.Store
	uploadService *app.UploadService
}

func NewSessionHandler(store session.Store, uploadService *app.UploadService) *SessionHandler {
	return &SessionHandler{store: store, uploadService: uploadService}
}

func (h *SessionHandler) Status(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	sess, err := h.store.Get(c.Request.Context(), sessionID)
	if errors.Is(err, session.ErrNotFound) || (err == nil && !sess.Ready()) {
		response.OK(c, gin.H{
			"session_active": false,
			"resumes_loaded": 0,
		})
		return
	}
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "status lookup failed")
		return
	}

	response.OK(c, gin.H{
		"session_active": true,
		"session_id":     sess.ID,
		"resumes_loaded": len(sess.Documents),
		"summary":        app.Summarize(sess),
	})
}

func (h *SessionHandler) Clear(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	if err := h.uploadService.Clear(c.Request.Context(), sessionID); err != nil {
		response.Fail(c, http.StatusInternalServerError, "clear session failed")
		return
	}
	response.OK(c, gin.H{"message": "session cleared"})
}
