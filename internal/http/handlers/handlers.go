// Handler wiring.
//
// Handlers are transport-thin: they validate input, call application
// services through narrow interfaces, and translate results (including the
// service error sentinels) into HTTP responses.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synthhearts/synthhearts/internal/http/middleware"
	"github.com/synthhearts/synthhearts/internal/services"
)

// Handlers groups the HTTP endpoints for auth, profiles, discovery,
// matching, chat, and the public feed. It depends on abstract service
// interfaces to keep transport concerns separate from business logic.
type Handlers struct {
	authSvc     AuthService
	profileSvc  ProfileService
	discoverSvc DiscoveryService
	matchSvc    MatchService
	chatSvc     ChatService
	publicSvc   PublicService
}

// New constructs a Handlers instance bound to the given services.
func New(
	authSvc AuthService,
	profileSvc ProfileService,
	discoverSvc DiscoveryService,
	matchSvc MatchService,
	chatSvc ChatService,
	publicSvc PublicService,
) *Handlers {
	return &Handlers{
		authSvc:     authSvc,
		profileSvc:  profileSvc,
		discoverSvc: discoverSvc,
		matchSvc:    matchSvc,
		chatSvc:     chatSvc,
		publicSvc:   publicSvc,
	}
}

// userID extracts the authenticated user id set by the auth middleware.
func userID(c *gin.Context) string {
	return middleware.UserID(c)
}

// failService translates a service error sentinel into the matching HTTP
// response, falling back to a generic 500 for anything unrecognized.
func failService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingCredentials):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username and password required")
	case errors.Is(err, services.ErrPasswordTooShort):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "password must be at least 6 characters")
	case errors.Is(err, services.ErrVerificationRequired):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "verification required")
	case errors.Is(err, services.ErrVerificationFailed):
		fail(c, http.StatusForbidden, ErrCodeVerificationFailed, "verification failed")
	case errors.Is(err, services.ErrUsernameTaken):
		fail(c, http.StatusBadRequest, ErrCodeConflict, "username already taken")
	case errors.Is(err, services.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrProfileNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "profile not found")
	case errors.Is(err, services.ErrInvalidDirection):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "direction must be left or right")
	case errors.Is(err, services.ErrInvalidTarget):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid swipe target")
	case errors.Is(err, services.ErrNotParticipant):
		fail(c, http.StatusForbidden, ErrCodeForbidden, "not authorized")
	case errors.Is(err, services.ErrEmptyMessage):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message content required")
	default:
		// Detail stays in the server log; clients get a generic message.
		middleware.LoggerFrom(c).Error().Err(err).Msg("unhandled service error")
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
	}
}
