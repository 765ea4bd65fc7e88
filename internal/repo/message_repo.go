// Package repo – repository functions for the Message model.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/synthhearts/synthhearts/internal/domain"
)

// AppendMessage inserts a message at the end of a match's history. When id is
// empty a fresh UUID is generated; the auto-reply scheduler passes a
// pre-allocated id so the preview returned at send time names the row that
// later appears.
func AppendMessage(ctx context.Context, db *gorm.DB, id, matchID, senderID, content string) (*domain.Message, error) {
	if id == "" {
		id = uuid.NewString()
	}
	m := &domain.Message{
		ID:        id,
		MatchID:   matchID,
		SenderID:  senderID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// ListMessages returns the full history of a match ordered deterministically
// (CreatedAt ASC, ID ASC).
func ListMessages(ctx context.Context, db *gorm.DB, matchID string) ([]domain.Message, error) {
	var out []domain.Message
	err := db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// LastMessage returns the most recent message of a match, or (nil, nil) when
// the history is empty.
func LastMessage(ctx context.Context, db *gorm.DB, matchID string) (*domain.Message, error) {
	var m domain.Message
	err := db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at DESC, id DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CountMessages uses a raw COUNT across all matches; the public stats
// endpoint reports the global total.
func CountMessages(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Raw("SELECT COUNT(*) FROM messages").Scan(&total).Error
	return total, err
}
