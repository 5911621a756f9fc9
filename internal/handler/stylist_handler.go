package handler

import (
	"errors"
	"net/http"

	"storefront-service/internal/stylist"
	"storefront-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ConversationResponse is a transcript and whether a reply is pending
type ConversationResponse struct {
	ID         string            `json:"id"`
	Transcript []stylist.Message `json:"transcript"`
	Busy       bool              `json:"busy"`
}

// SendMessageRequest is the body of POST .../messages
type SendMessageRequest struct {
	Text string `json:"text"`
}

// SendMessageResponse is the reply plus the transcript after it
type SendMessageResponse struct {
	Reply stylist.Message `json:"reply"`
	ConversationResponse
}

func conversationResponse(id string, conv *stylist.Conversation) ConversationResponse {
	return ConversationResponse{ID: id, Transcript: conv.Transcript(), Busy: conv.Busy()}
}

// StartConversation handles POST /api/stylist/conversations
func (h *Handler) StartConversation(c echo.Context) error {
	id, conv := h.Stylist.Start()
	logger.FromEcho(c).Info("Stylist conversation started", zap.String("conversation_id", id))
	return c.JSON(http.StatusCreated, conversationResponse(id, conv))
}

// GetConversation handles GET /api/stylist/conversations/:id
func (h *Handler) GetConversation(c echo.Context) error {
	id := c.Param("id")
	conv, err := h.Stylist.Get(id)
	if err != nil {
		return errorJSON(c, http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, conversationResponse(id, conv))
}

// SendMessage handles POST /api/stylist/conversations/:id/messages. The
// model call runs inside the request; failures come back as a fallback
// reply, not as an error status.
func (h *Handler) SendMessage(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	conv, err := h.Stylist.Get(id)
	if err != nil {
		return errorJSON(c, http.StatusNotFound, err.Error())
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid stylist message", zap.Error(err))
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	reply, err := conv.Send(requestContext(c), req.Text)
	switch {
	case errors.Is(err, stylist.ErrEmptyMessage):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, stylist.ErrBusy):
		return errorJSON(c, http.StatusConflict, err.Error())
	case err != nil:
		log.Error("Stylist send failed", zap.Error(err))
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, SendMessageResponse{Reply: reply, ConversationResponse: conversationResponse(id, conv)})
}
