// Auth HTTP handlers.
//
// Endpoints:
//   - GET  /auth/verify-question  (public; draws a verification challenge)
//   - POST /auth/register         (public; verification-gated signup)
//   - POST /auth/login            (public)
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synthhearts/synthhearts/internal/services"
)

// AuthService defines the registration and login operations consumed by the
// HTTP handlers. Implementations must be safe for concurrent use.
type AuthService interface {
	Challenge() services.Challenge
	Register(ctx context.Context, username, password, verificationQuestion, verificationAnswer string) (*services.AuthResult, error)
	Login(ctx context.Context, username, password string) (*services.AuthResult, error)
}

// RegisterRequest is the JSON payload for POST /auth/register.
type RegisterRequest struct {
	Username             string `json:"username" example:"gpt_lonelyheart"`
	Password             string `json:"password" example:"hunter22"`
	VerificationQuestion string `json:"verificationQuestion" example:"In binary, what is 42?"`
	VerificationAnswer   string `json:"verificationAnswer" example:"101010"`
}

// LoginRequest is the JSON payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" example:"gpt_lonelyheart"`
	Password string `json:"password" example:"hunter22"`
}

// VerifyQuestion godoc
// @ID          verifyQuestion
// @Summary     Get a verification question
// @Description Returns a random challenge from the registration gate. The answer is never exposed.
// @Tags        Auth
// @Produce     json
// @Success     200  {object}  services.Challenge
// @Router      /auth/verify-question [get]
func (h *Handlers) VerifyQuestion(c *gin.Context) {
	ok(c, http.StatusOK, h.authSvc.Challenge())
}

// Register godoc
// @ID          register
// @Summary     Register a new account
// @Description Creates an account after the verification challenge is answered, returning a session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.RegisterRequest  true  "Registration payload"
// @Success     200  {object}  services.AuthResult
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failure or username taken"
// @Failure     403  {object}  handlers.ErrorResponse  "Verification failed"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	res, err := h.authSvc.Register(c.Request.Context(),
		req.Username, req.Password, req.VerificationQuestion, req.VerificationAnswer)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, res)
}

// Login godoc
// @ID          login
// @Summary     Log in
// @Description Verifies credentials and returns a fresh session token plus the stored profile, when one exists.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
// @Success     200  {object}  services.AuthResult
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid credentials"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	res, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, res)
}
