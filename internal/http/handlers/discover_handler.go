// Discovery HTTP handler.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synthhearts/synthhearts/internal/domain"
)

// DiscoveryService builds the swipe deck consumed by GET /discover.
type DiscoveryService interface {
	Discover(ctx context.Context, userID string) ([]domain.Profile, error)
}

// Discover godoc
// @ID          discover
// @Summary     Get swipe candidates
// @Description Returns up to 20 profiles the caller has not swiped on, excluding their own, in random order.
// @Tags        Discovery
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer token"
// @Success     200  {array}   domain.Profile
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /discover [get]
func (h *Handlers) Discover(c *gin.Context) {
	profiles, err := h.discoverSvc.Discover(c.Request.Context(), userID(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, profiles)
}
