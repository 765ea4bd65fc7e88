// Package services – MatchService
//
// Swiping and mutual-match detection. A right swipe on a user who has
// already swiped right back creates a match; both the swipe upsert and the
// match creation run inside one transaction so two concurrent reciprocal
// swipes cannot produce duplicate matches. The ordered pair key's unique
// index is the backstop if they race anyway.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/synthhearts/synthhearts/internal/domain"
	"github.com/synthhearts/synthhearts/internal/repo"
)

// SwipeResult reports whether a right swipe completed a mutual match.
// Created distinguishes a newly inserted match from a repeat right-swipe
// reporting an existing one; it never appears on the wire.
type SwipeResult struct {
	IsMatch bool    `json:"isMatch"`
	MatchID *string `json:"matchId,omitempty"`
	Created bool    `json:"-"`
}

// LastMessagePreview is the trailing message shown on a match card.
type LastMessagePreview struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	IsOwn     bool      `json:"isOwn"`
}

// MatchSummary is one entry in a user's match list.
type MatchSummary struct {
	MatchID     string              `json:"matchId"`
	MatchedAt   time.Time           `json:"matchedAt"`
	Partner     *domain.Profile     `json:"partner"`
	LastMessage *LastMessagePreview `json:"lastMessage"`
}

// MatchService records swipes and lists matches.
type MatchService struct {
	DB *gorm.DB
}

// Swipe records a left or right swipe by userID on targetID. Swiping the
// same target again overwrites the previous direction. Returns a match
// result when a right swipe finds a reciprocal right swipe; re-swiping
// right on an existing match reports the existing match.
func (s *MatchService) Swipe(ctx context.Context, userID, targetID, direction string) (*SwipeResult, error) {
	tr := otel.Tracer("services/MatchService")
	ctx, span := tr.Start(ctx, "Swipe",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("swipe.target", targetID),
			attribute.String("swipe.direction", direction),
		),
	)
	defer span.End()

	if direction != domain.SwipeLeft && direction != domain.SwipeRight {
		return nil, ErrInvalidDirection
	}
	if targetID == "" || targetID == userID {
		return nil, ErrInvalidTarget
	}
	if _, err := repo.GetProfile(ctx, s.DB, targetID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidTarget
		}
		return nil, err
	}

	res := &SwipeResult{}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.UpsertSwipe(ctx, tx, userID, targetID, direction); err != nil {
			return err
		}
		if direction != domain.SwipeRight {
			return nil
		}

		reciprocal, err := repo.GetSwipe(ctx, tx, targetID, userID)
		if err != nil {
			return err
		}
		if reciprocal == nil || reciprocal.Direction != domain.SwipeRight {
			return nil
		}

		existing, err := repo.GetMatchByPair(ctx, tx, userID, targetID)
		if err != nil {
			return err
		}
		if existing != nil {
			res.IsMatch = true
			res.MatchID = &existing.ID
			return nil
		}
		m, err := repo.CreateMatch(ctx, tx, userID, targetID, true)
		if err != nil {
			return err
		}
		res.IsMatch = true
		res.MatchID = &m.ID
		res.Created = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Matches lists the caller's matches, newest first, with the partner's
// profile and the latest message in each conversation.
func (s *MatchService) Matches(ctx context.Context, userID string) ([]MatchSummary, error) {
	tr := otel.Tracer("services/MatchService")
	ctx, span := tr.Start(ctx, "Matches",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	matches, err := repo.ListMatchesForUser(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}

	out := make([]MatchSummary, 0, len(matches))
	for _, m := range matches {
		// Membership is guaranteed by ListMatchesForUser.
		partnerID, _ := m.PartnerOf(userID)

		summary := MatchSummary{
			MatchID:   m.ID,
			MatchedAt: m.CreatedAt,
		}
		partner, err := repo.GetProfile(ctx, s.DB, partnerID)
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		summary.Partner = partner

		last, err := repo.LastMessage(ctx, s.DB, m.ID)
		if err != nil {
			return nil, err
		}
		if last != nil {
			summary.LastMessage = &LastMessagePreview{
				Content:   last.Content,
				CreatedAt: last.CreatedAt,
				IsOwn:     last.SenderID == userID,
			}
		}
		out = append(out, summary)
	}
	return out, nil
}
