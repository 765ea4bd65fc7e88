// Package services – ProfileService
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/synthhearts/synthhearts/internal/domain"
	"github.com/synthhearts/synthhearts/internal/repo"
)

// ProfileService owns the one-profile-per-user store. Writes are wholesale
// replacements; there is no partial patch and no field-level validation.
type ProfileService struct {
	DB *gorm.DB
}

// Save creates or replaces the caller's profile.
func (s *ProfileService) Save(ctx context.Context, userID string, p domain.Profile) (*domain.Profile, error) {
	tr := otel.Tracer("services/ProfileService")
	ctx, span := tr.Start(ctx, "Save",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	return repo.UpsertProfile(ctx, s.DB, userID, p)
}

// Get returns the profile owned by userID, or ErrProfileNotFound.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	tr := otel.Tracer("services/ProfileService")
	ctx, span := tr.Start(ctx, "Get",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	p, err := repo.GetProfile(ctx, s.DB, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	return p, err
}
