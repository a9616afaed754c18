package handlers

import (
	"errors"
	"net/http"

	"soulsync/models"
	"soulsync/services/chat"
	"soulsync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler serves the companion chat.
type ChatHandler struct {
	Service chat.ChatService
}

func NewChatHandler(s chat.ChatService) *ChatHandler {
	return &ChatHandler{Service: s}
}

// CreateSession mints a session id and returns it with the welcome message.
func (h *ChatHandler) CreateSession(c *gin.Context) {
	sessionID := h.Service.NewSessionID()
	history, err := h.Service.History(c.Request.Context(), sessionID)
	if err != nil {
		getLogger(c).Error("Failed to load new session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to start chat session", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"sessionId": sessionID, "messages": history})
}

func (h *ChatHandler) GetMessages(c *gin.Context) {
	sessionID := c.Param("sessionID")
	msgs, err := h.Service.History(c.Request.Context(), sessionID)
	if errors.Is(err, chat.ErrMissingSession) {
		utils.JSONError(c, http.StatusBadRequest, "Session id is required", "")
		return
	}
	if err != nil {
		getLogger(c).Error("Failed to load chat history", zap.String("sessionID", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load messages", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// SendMessage runs one chat turn. Storage and generation problems never fail the request.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	turn, err := h.Service.SendMessage(c.Request.Context(), c.Param("sessionID"), req.Text)
	switch {
	case errors.Is(err, chat.ErrEmptyMessage), errors.Is(err, chat.ErrMissingSession):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	case err != nil:
		getLogger(c).Error("Chat turn failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send message", "")
		return
	}
	c.JSON(http.StatusOK, turn)
}

func (h *ChatHandler) QuickReplies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quickReplies": h.Service.QuickReplies()})
}

// Suggestions returns the suggestion card for a mood; moods without one get null.
func (h *ChatHandler) Suggestions(c *gin.Context) {
	m := models.MoodLabel(c.Param("mood"))
	c.JSON(http.StatusOK, gin.H{"mood": m, "suggestions": h.Service.Suggestions(m)})
}
