// Package services defines the business logic for identity, profiles,
// swiping, matching, chat, and the public feed. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into HTTP status codes is performed at the handler layer.
package services

import "errors"

// Identity errors.
var (
	// ErrMissingCredentials is returned when a registration request omits the
	// username or password.
	ErrMissingCredentials = errors.New("username and password required")

	// ErrPasswordTooShort is returned when a registration password is under
	// the six character minimum.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// ErrVerificationRequired is returned when the registration verification
	// question/answer pair is absent.
	ErrVerificationRequired = errors.New("verification required")

	// ErrVerificationFailed is returned when the supplied answer does not
	// match the expected answer (or any accepted alternate) for the question.
	ErrVerificationFailed = errors.New("verification failed")

	// ErrUsernameTaken is returned when the lowercase username already has a
	// credential record.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned uniformly for unknown usernames and
	// password mismatches so login cannot be used to enumerate users.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Profile errors.
var (
	// ErrProfileNotFound indicates the user has not created a profile yet.
	ErrProfileNotFound = errors.New("profile not found")
)

// Swipe / match errors.
var (
	// ErrInvalidDirection is returned when a swipe direction is neither
	// "left" nor "right".
	ErrInvalidDirection = errors.New("direction must be left or right")

	// ErrInvalidTarget is returned when a swipe names no target.
	ErrInvalidTarget = errors.New("target id required")
)

// Chat errors.
var (
	// ErrNotParticipant is returned when the caller is not one of a match's
	// two participants, or the match does not exist. Both cases present the
	// same way to the caller.
	ErrNotParticipant = errors.New("not a participant of this match")

	// ErrEmptyMessage is returned when a chat message has no content.
	ErrEmptyMessage = errors.New("message content required")
)
