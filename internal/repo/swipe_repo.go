// Package repo – repository functions for the Swipe ledger.
package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/synthhearts/synthhearts/internal/domain"
)

// UpsertSwipe records a swipe decision, overwriting any prior decision for
// the same (swiper, target) pair. A repeat swipe is an overwrite, never an
// append.
func UpsertSwipe(ctx context.Context, db *gorm.DB, swiperID, swipedID, direction string) error {
	s := domain.Swipe{
		SwiperID:  swiperID,
		SwipedID:  swipedID,
		Direction: direction,
		UpdatedAt: time.Now().UTC(),
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "swiper_id"}, {Name: "swiped_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"direction", "updated_at"}),
		}).
		Create(&s).Error
}

// GetSwipe fetches the decision swiperID made about swipedID. Returns
// (nil, nil) when no decision exists; a missing reverse swipe is an ordinary
// outcome for the match engine, not an error.
func GetSwipe(ctx context.Context, db *gorm.DB, swiperID, swipedID string) (*domain.Swipe, error) {
	var s domain.Swipe
	err := db.WithContext(ctx).
		Where("swiper_id = ? AND swiped_id = ?", swiperID, swipedID).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSwipedIDs returns every target id swiperID has decided on, in either
// direction. Used by discovery to exclude already-seen candidates.
func ListSwipedIDs(ctx context.Context, db *gorm.DB, swiperID string) ([]string, error) {
	var ids []string
	err := db.WithContext(ctx).
		Model(&domain.Swipe{}).
		Where("swiper_id = ?", swiperID).
		Pluck("swiped_id", &ids).Error
	return ids, err
}
