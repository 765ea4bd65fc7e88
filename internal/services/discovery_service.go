package services

import (
	"context"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/synthhearts/synthhearts/internal/domain"
	"github.com/synthhearts/synthhearts/internal/repo"
)

const defaultDiscoverLimit = 20

// DiscoveryService builds the shuffled candidate deck for swiping.
type DiscoveryService struct {
	DB    *gorm.DB
	Rand  *Rand
	Limit int
}

// Discover returns up to Limit profiles the caller has not swiped on,
// excluding their own, in random order.
func (s *DiscoveryService) Discover(ctx context.Context, userID string) ([]domain.Profile, error) {
	tr := otel.Tracer("services/DiscoveryService")
	ctx, span := tr.Start(ctx, "Discover",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	swiped, err := repo.ListSwipedIDs(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(swiped)+1)
	seen[userID] = struct{}{}
	for _, id := range swiped {
		seen[id] = struct{}{}
	}

	all, err := repo.ListProfiles(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	candidates := make([]domain.Profile, 0, len(all))
	for _, p := range all {
		if _, ok := seen[p.OwnerID]; ok {
			continue
		}
		candidates = append(candidates, p)
	}

	s.Rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	limit := s.Limit
	if limit <= 0 {
		limit = defaultDiscoverLimit
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	span.SetAttributes(attribute.Int("discover.count", len(candidates)))
	return candidates, nil
}
