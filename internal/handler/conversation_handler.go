package handler

import (
	"net/http"

	"equiedge/internal/middleware"
	"equiedge/internal/repository"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	conversationRepo *repository.ConversationRepository
}

func NewConversationHandler(conversationRepo *repository.ConversationRepository) *ConversationHandler {
	return &ConversationHandler{conversationRepo: conversationRepo}
}

// List returns the caller's conversations, newest first. Message content
// lives with the chat provider; these rows only anchor threads to bookings.
func (h *ConversationHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	conversations, err := h.conversationRepo.ListByProfileID(middleware.GetProfileID(c), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list conversations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}
