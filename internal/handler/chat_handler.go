package handler

import (
	"errors"
	"net/http"

	"equiedge/internal/chat"
	"equiedge/internal/middleware"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	gate    *chat.Gate
	session *chat.Session
}

func NewChatHandler(gate *chat.Gate, session *chat.Session) *ChatHandler {
	return &ChatHandler{gate: gate, session: session}
}

// ResolveSession runs the access gate for the caller and reports whether
// the chat surface should render the live UI or the welcome placeholder.
func (h *ChatHandler) ResolveSession(c *gin.Context) {
	result, err := h.gate.ResolveChatAccess(c.Request.Context(), middleware.GetProfileID(c))
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrProfileUnresolved):
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		case errors.Is(err, chat.ErrHistoryCheckFailed):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not check booking history, try again"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "chat is unavailable, try again"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": result.String()})
}

type SendMessageRequest struct {
	ToProfileID string `json:"to_profile_id" binding:"required,uuid"`
	Text        string `json:"text" binding:"required,max=4096"`
}

// SendMessage relays a direct message through the provider as the current
// session user. The caller must have passed the gate first, and must be the
// profile the shared session is logged in as; anyone else gets the
// not-active response rather than sending under another user's identity.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if uid, ok := h.session.CurrentUID(); !ok || uid != middleware.GetProfileID(c) {
		c.JSON(http.StatusConflict, gin.H{"error": "chat session not active, resolve access first"})
		return
	}
	err := h.session.SendDirectMessage(c.Request.Context(), req.ToProfileID, req.Text)
	if err != nil {
		if errors.Is(err, chat.ErrNotLoggedIn) {
			c.JSON(http.StatusConflict, gin.H{"error": "chat session not active, resolve access first"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "message delivery failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

// Logout ends the provider session. Safe to call when nobody is logged in;
// only the logged-in profile may end its own session.
func (h *ChatHandler) Logout(c *gin.Context) {
	uid, ok := h.session.CurrentUID()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
		return
	}
	if uid != middleware.GetProfileID(c) {
		c.JSON(http.StatusConflict, gin.H{"error": "chat session belongs to another user"})
		return
	}
	if err := h.session.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}
