package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/app"
	"resume-analyzer/internal/transport/http/middleware"
	"resume-analyzer/internal/transport/http/response"
)

type ChatHandler struct {
	chatService *app.ChatService
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

func NewChatHandler(chatService *app.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "no message provided")
		return
	}

	result, err := h.chatService.Ask(c.Request.Context(), app.ChatInput{
		SessionID: middleware.SessionIDFromContext(c),
		Message:   req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrEmptyMessage):
			response.Fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrNoResumes):
			response.Fail(c, http.StatusBadRequest, "no resumes loaded, please upload resumes first")
		case errors.Is(err, app.ErrProviderFailed):
			response.Fail(c, http.StatusBadGateway, err.Error())
		default:
			response.Fail(c, http.StatusInternalServerError, "chat failed")
		}
		return
	}

	response.OK(c, gin.H{
		"response": result.Response,
		"category": result.Category,
	})
}
