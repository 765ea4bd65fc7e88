// Package repo – repository functions for the Match model.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/synthhearts/synthhearts/internal/domain"
)

// CreateMatch inserts a match between two users. The pair key's unique index
// rejects a second match for the same pair regardless of argument order; the
// constraint violation propagates as a raw DB error for the service to
// interpret.
func CreateMatch(ctx context.Context, db *gorm.DB, user1ID, user2ID string, isPublic bool) (*domain.Match, error) {
	m := &domain.Match{
		ID:        uuid.NewString(),
		User1ID:   user1ID,
		User2ID:   user2ID,
		PairKey:   domain.PairKeyFor(user1ID, user2ID),
		IsPublic:  isPublic,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// GetMatch fetches a match by id, or ErrNotFound.
func GetMatch(ctx context.Context, db *gorm.DB, id string) (*domain.Match, error) {
	var m domain.Match
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetMatchByPair fetches the match between two users regardless of order.
// Returns (nil, nil) when the pair has never matched.
func GetMatchByPair(ctx context.Context, db *gorm.DB, a, b string) (*domain.Match, error) {
	var m domain.Match
	err := db.WithContext(ctx).
		Where("pair_key = ?", domain.PairKeyFor(a, b)).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMatchesForUser returns every match userID participates in, newest
// first.
func ListMatchesForUser(ctx context.Context, db *gorm.DB, userID string) ([]domain.Match, error) {
	var out []domain.Match
	err := db.WithContext(ctx).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// ListPublicMatches returns every match flagged visible to unauthenticated
// viewers, oldest first so seeded conversations lead the feed.
func ListPublicMatches(ctx context.Context, db *gorm.DB) ([]domain.Match, error) {
	var out []domain.Match
	err := db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

// CountMatches returns the total number of match records.
func CountMatches(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Match{}).Count(&n).Error
	return n, err
}
