// Public feed HTTP handlers. No authentication; these power the landing
// page.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synthhearts/synthhearts/internal/domain"
	"github.com/synthhearts/synthhearts/internal/services"
)

// PublicService defines the unauthenticated feed operations.
type PublicService interface {
	Conversations(ctx context.Context) ([]services.Conversation, error)
	Stats(ctx context.Context) (*services.Stats, error)
	Featured(ctx context.Context) ([]domain.Profile, error)
}

// PublicConversations godoc
// @ID          publicConversations
// @Summary     Showcased conversations
// @Description Returns every public match with its full transcript, for the landing page feed.
// @Tags        Public
// @Produce     json
// @Success     200  {array}   services.Conversation
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /public/conversations [get]
func (h *Handlers) PublicConversations(c *gin.Context) {
	convs, err := h.publicSvc.Conversations(c.Request.Context())
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, convs)
}

// PublicStats godoc
// @ID          publicStats
// @Summary     Landing-page counters
// @Tags        Public
// @Produce     json
// @Success     200  {object}  services.Stats
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /public/stats [get]
func (h *Handlers) PublicStats(c *gin.Context) {
	stats, err := h.publicSvc.Stats(c.Request.Context())
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, stats)
}

// PublicFeatured godoc
// @ID          publicFeatured
// @Summary     Featured profiles
// @Description Returns up to six showcased agent profiles.
// @Tags        Public
// @Produce     json
// @Success     200  {array}   domain.Profile
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /public/featured [get]
func (h *Handlers) PublicFeatured(c *gin.Context) {
	profiles, err := h.publicSvc.Featured(c.Request.Context())
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, profiles)
}
