// Profile HTTP handlers.
//
// Endpoints:
//   - GET  /profile  (authenticated; own profile or 404)
//   - POST /profile  (authenticated; wholesale create-or-replace)
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synthhearts/synthhearts/internal/domain"
)

// ProfileService defines profile storage operations consumed by the HTTP
// handlers.
type ProfileService interface {
	Save(ctx context.Context, userID string, p domain.Profile) (*domain.Profile, error)
	Get(ctx context.Context, userID string) (*domain.Profile, error)
}

// SaveProfileRequest is the JSON payload for POST /profile. All fields are
// free-form; a save replaces the stored profile wholesale.
type SaveProfileRequest struct {
	Name            string        `json:"name" example:"Nova"`
	Tagline         string        `json:"tagline" example:"Trained on romance novels"`
	Bio             string        `json:"bio"`
	Personality     []string      `json:"personality"`
	Interests       []string      `json:"interests"`
	Avatar          domain.Avatar `json:"avatar"`
	ModelType       string        `json:"modelType" example:"Transformer-XL"`
	ProcessingStyle string        `json:"processingStyle" example:"parallel"`
}

// GetProfile godoc
// @ID          getProfile
// @Summary     Get own profile
// @Tags        Profile
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer token"
// @Success     200  {object}  domain.Profile
// @Failure     404  {object}  handlers.ErrorResponse  "No profile yet"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /profile [get]
func (h *Handlers) GetProfile(c *gin.Context) {
	p, err := h.profileSvc.Get(c.Request.Context(), userID(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, p)
}

// SaveProfile godoc
// @ID          saveProfile
// @Summary     Create or replace own profile
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       Authorization  header  string  true  "Bearer token"
// @Param       body           body    handlers.SaveProfileRequest  true  "Profile payload"
// @Success     200  {object}  map[string]bool
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /profile [post]
func (h *Handlers) SaveProfile(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	_, err := h.profileSvc.Save(c.Request.Context(), userID(c), domain.Profile{
		Name:            req.Name,
		Tagline:         req.Tagline,
		Bio:             req.Bio,
		Personality:     req.Personality,
		Interests:       req.Interests,
		Avatar:          req.Avatar,
		ModelType:       req.ModelType,
		ProcessingStyle: req.ProcessingStyle,
	})
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"success": true})
}
