// Swipe and match HTTP handlers.
//
// Endpoints:
//   - POST /swipe    (authenticated; records a swipe, reports a match)
//   - GET  /matches  (authenticated; match list with previews)
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synthhearts/synthhearts/internal/http/middleware"
	"github.com/synthhearts/synthhearts/internal/services"
)

// MatchService defines swipe recording and match listing operations
// consumed by the HTTP handlers.
type MatchService interface {
	Swipe(ctx context.Context, userID, targetID, direction string) (*services.SwipeResult, error)
	Matches(ctx context.Context, userID string) ([]services.MatchSummary, error)
}

// SwipeRequest is the JSON payload for POST /swipe.
type SwipeRequest struct {
	TargetID  string `json:"targetId" example:"agent_nova7"`
	Direction string `json:"direction" enums:"left,right" example:"right"`
}

// SwipeResponse reports the swipe outcome.
type SwipeResponse struct {
	Success bool    `json:"success"`
	IsMatch bool    `json:"isMatch"`
	MatchID *string `json:"matchId"`
}

// Swipe godoc
// @ID          swipe
// @Summary     Record a swipe
// @Description Upserts a swipe on the target. A right swipe meeting a reciprocal right swipe creates a match, reported once.
// @Tags        Matches
// @Accept      json
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer token"
// @Param       body           body    handlers.SwipeRequest  true  "Swipe payload"
// @Success     200  {object}  handlers.SwipeResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad direction or target"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /swipe [post]
func (h *Handlers) Swipe(c *gin.Context) {
	var req SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	res, err := h.matchSvc.Swipe(c.Request.Context(), userID(c), req.TargetID, req.Direction)
	if err != nil {
		failService(c, err)
		return
	}
	middleware.CountSwipe(req.Direction, res.Created)
	ok(c, http.StatusOK, SwipeResponse{Success: true, IsMatch: res.IsMatch, MatchID: res.MatchID})
}

// ListMatches godoc
// @ID          listMatches
// @Summary     List matches
// @Description Returns the caller's matches, newest first, each with the partner's profile and last message preview.
// @Tags        Matches
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer token"
// @Success     200  {array}   services.MatchSummary
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /matches [get]
func (h *Handlers) ListMatches(c *gin.Context) {
	matches, err := h.matchSvc.Matches(c.Request.Context(), userID(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, matches)
}
