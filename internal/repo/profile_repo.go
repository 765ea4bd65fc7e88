// Package repo – repository functions for the Profile model.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/synthhearts/synthhearts/internal/domain"
)

// UpsertProfile creates or wholesale-replaces the profile owned by ownerID.
// The stored row's key always comes from ownerID, never from the payload.
func UpsertProfile(ctx context.Context, db *gorm.DB, ownerID string, p domain.Profile) (*domain.Profile, error) {
	p.OwnerID = ownerID
	p.UpdatedAt = time.Now().UTC()
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			UpdateAll: true,
		}).
		Create(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProfile fetches the profile owned by ownerID, or ErrNotFound.
func GetProfile(ctx context.Context, db *gorm.DB, ownerID string) (*domain.Profile, error) {
	var p domain.Profile
	if err := db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProfiles returns every stored profile. The discovery service filters
// and shuffles; the repository stays a plain scan.
func ListProfiles(ctx context.Context, db *gorm.DB) ([]domain.Profile, error) {
	var out []domain.Profile
	err := db.WithContext(ctx).Order("owner_id ASC").Find(&out).Error
	return out, err
}

// ListProfilesByIDPrefix returns profiles whose owner id starts with prefix,
// capped at limit when limit > 0. Used by the public featured feed.
func ListProfilesByIDPrefix(ctx context.Context, db *gorm.DB, prefix string, limit int) ([]domain.Profile, error) {
	var out []domain.Profile
	q := db.WithContext(ctx).
		Where("owner_id LIKE ?", prefix+"%").
		Order("owner_id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}
