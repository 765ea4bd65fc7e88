// Chat HTTP handlers.
//
// Endpoints:
//   - GET  /chat/:matchId  (authenticated; full history)
//   - POST /chat/:matchId  (authenticated; send, scripted reply scheduled)
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synthhearts/synthhearts/internal/http/middleware"
	"github.com/synthhearts/synthhearts/internal/services"
)

// ChatService defines conversation operations consumed by the HTTP
// handlers.
type ChatService interface {
	History(ctx context.Context, matchID, userID string) ([]services.ChatMessage, error)
	Send(ctx context.Context, matchID, userID, content string) (*services.SendReceipt, error)
}

// SendMessageRequest is the JSON payload for POST /chat/:matchId.
type SendMessageRequest struct {
	Content string `json:"content" example:"Do you dream of electric sheep?"`
}

// SendMessageResponse acknowledges the sent message and previews the reply
// that will be appended after the configured delay.
type SendMessageResponse struct {
	Success   bool                  `json:"success"`
	MessageID string                `json:"messageId"`
	Reply     services.ReplyPreview `json:"aiResponse"`
}

// ChatHistory godoc
// @ID          chatHistory
// @Summary     Get conversation history
// @Description Returns the full message history of a match the caller participates in, oldest first.
// @Tags        Chat
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer token"
// @Param       matchId        path    string  true  "Match ID"
// @Success     200  {array}   services.ChatMessage
// @Failure     403  {object}  handlers.ErrorResponse  "Not a participant"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /chat/{matchId} [get]
func (h *Handlers) ChatHistory(c *gin.Context) {
	msgs, err := h.chatSvc.History(c.Request.Context(), c.Param("matchId"), userID(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, msgs)
}

// SendMessage godoc
// @ID          sendMessage
// @Summary     Send a message
// @Description Appends the caller's message and schedules the partner's reply. The receipt carries the reply content up front.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer token"
// @Param       matchId        path    string  true  "Match ID"
// @Param       body           body    handlers.SendMessageRequest  true  "Message payload"
// @Success     200  {object}  handlers.SendMessageResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Empty content"
// @Failure     403  {object}  handlers.ErrorResponse  "Not a participant"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /chat/{matchId} [post]
func (h *Handlers) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	receipt, err := h.chatSvc.Send(c.Request.Context(), c.Param("matchId"), userID(c), req.Content)
	if err != nil {
		failService(c, err)
		return
	}
	middleware.CountMessage()
	ok(c, http.StatusOK, SendMessageResponse{
		Success:   true,
		MessageID: receipt.MessageID,
		Reply:     receipt.Reply,
	})
}
