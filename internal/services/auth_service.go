// Package services – AuthService
//
// AuthService owns registration and login. Registration validates input,
// enforces the verification gate, checks username availability, stores a
// bcrypt password hash, and issues a signed session token. Login verifies
// credentials uniformly (no user enumeration) and reports whether a profile
// exists.
//
// Observability: public methods are OpenTelemetry-instrumented.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/synthhearts/synthhearts/internal/auth"
	"github.com/synthhearts/synthhearts/internal/domain"
	"github.com/synthhearts/synthhearts/internal/repo"
)

const minPasswordLen = 6

// AuthService coordinates identity storage and session token issuance.
type AuthService struct {
	DB     *gorm.DB
	Tokens *auth.Manager
	Rand   *Rand

	// HashCost overrides the bcrypt cost when > 0; tests lower it.
	HashCost int
}

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	Token      string          `json:"token"`
	UserID     string          `json:"userId"`
	Username   string          `json:"username"`
	HasProfile bool            `json:"hasProfile"`
	Profile    *domain.Profile `json:"profile,omitempty"`
}

// Challenge returns a random verification question for the registration gate.
func (s *AuthService) Challenge() Challenge {
	return randomChallenge(s.Rand)
}

// Register creates a credential record and issues a session token.
//
// Failure modes, in validation order: ErrMissingCredentials,
// ErrPasswordTooShort, ErrVerificationRequired, ErrVerificationFailed,
// ErrUsernameTaken. No user record is created on any failure.
func (s *AuthService) Register(ctx context.Context, username, password, verificationQuestion, verificationAnswer string) (*AuthResult, error) {
	tr := otel.Tracer("services/AuthService")
	ctx, span := tr.Start(ctx, "Register")
	defer span.End()

	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if len(password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}
	if verificationQuestion == "" || verificationAnswer == "" {
		return nil, ErrVerificationRequired
	}
	if !verifyAnswer(verificationQuestion, verificationAnswer) {
		return nil, ErrVerificationFailed
	}

	lower := strings.ToLower(username)
	taken, err := repo.UsernameExists(ctx, s.DB, lower)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost())
	if err != nil {
		return nil, err
	}

	u, err := repo.CreateUser(ctx, s.DB, uuid.NewString(), lower, string(hash))
	if err != nil {
		// The unique index catches a registration racing the availability
		// check above; present it as the same conflict.
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	span.SetAttributes(attribute.String("user.id", u.ID))

	token, err := s.Tokens.Issue(u.ID, u.Username)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token:      token,
		UserID:     u.ID,
		Username:   u.Username,
		HasProfile: false,
	}, nil
}

// Login verifies credentials and issues a fresh session token. Unknown
// usernames and wrong passwords both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	tr := otel.Tracer("services/AuthService")
	ctx, span := tr.Start(ctx, "Login",
		trace.WithAttributes(attribute.String("user.name", strings.ToLower(username))),
	)
	defer span.End()

	u, err := repo.GetUserByUsername(ctx, s.DB, strings.ToLower(username))
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(u.ID, u.Username)
	if err != nil {
		return nil, err
	}

	res := &AuthResult{Token: token, UserID: u.ID, Username: u.Username}
	if p, err := repo.GetProfile(ctx, s.DB, u.ID); err == nil {
		res.HasProfile = true
		res.Profile = p
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	return res, nil
}

func (s *AuthService) hashCost() int {
	if s.HashCost > 0 {
		return s.HashCost
	}
	return bcrypt.DefaultCost
}

// isUniqueViolation reports whether a DB error came from a UNIQUE constraint.
// The pure-Go sqlite driver surfaces these as plain errors, so this is a
// string match by necessity.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}
