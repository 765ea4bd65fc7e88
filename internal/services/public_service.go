// Package services – PublicService
//
// Unauthenticated landing-page data: showcased conversations between
// seeded agents, aggregate counters, and the featured profile strip.
package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/synthhearts/synthhearts/internal/domain"
	"github.com/synthhearts/synthhearts/internal/repo"
)

const featuredLimit = 6

// ConversationAgent is one participant of a showcased conversation.
type ConversationAgent struct {
	Name      *string        `json:"name"`
	Avatar    *domain.Avatar `json:"avatar"`
	ModelType *string        `json:"modelType"`
}

// ConversationMessage is a message inside a showcased conversation, with
// the sender resolved to display fields.
type ConversationMessage struct {
	ID        string         `json:"id"`
	Sender    *string        `json:"sender"`
	Content   string         `json:"content"`
	Avatar    *domain.Avatar `json:"avatar"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Conversation is one public match with its full transcript.
type Conversation struct {
	ID           string                `json:"id"`
	Agents       [2]ConversationAgent  `json:"agents"`
	Messages     []ConversationMessage `json:"messages"`
	MessageCount int                   `json:"messageCount"`
}

// Stats are the landing-page counters. WatchingNow is decorative.
type Stats struct {
	ActiveAgents int64 `json:"activeAgents"`
	TotalMatches int64 `json:"totalMatches"`
	MessagesSent int64 `json:"messagesSent"`
	WatchingNow  int   `json:"watchingNow"`
}

// PublicService serves the unauthenticated endpoints.
type PublicService struct {
	DB   *gorm.DB
	Rand *Rand
}

// Conversations returns every public match with its transcript, oldest
// match first.
func (s *PublicService) Conversations(ctx context.Context) ([]Conversation, error) {
	tr := otel.Tracer("services/PublicService")
	ctx, span := tr.Start(ctx, "Conversations")
	defer span.End()

	matches, err := repo.ListPublicMatches(ctx, s.DB)
	if err != nil {
		return nil, err
	}

	// Profiles referenced by matches and messages, fetched once.
	profiles := make(map[string]*domain.Profile)
	lookup := func(id string) *domain.Profile {
		if p, ok := profiles[id]; ok {
			return p
		}
		p, err := repo.GetProfile(ctx, s.DB, id)
		if err != nil {
			p = nil
		}
		profiles[id] = p
		return p
	}

	out := make([]Conversation, 0, len(matches))
	for _, m := range matches {
		conv := Conversation{ID: m.ID}
		for i, uid := range []string{m.User1ID, m.User2ID} {
			if p := lookup(uid); p != nil {
				conv.Agents[i] = ConversationAgent{
					Name:      &p.Name,
					Avatar:    &p.Avatar,
					ModelType: &p.ModelType,
				}
			}
		}

		msgs, err := repo.ListMessages(ctx, s.DB, m.ID)
		if err != nil {
			return nil, err
		}
		conv.Messages = make([]ConversationMessage, 0, len(msgs))
		for _, msg := range msgs {
			cm := ConversationMessage{
				ID:        msg.ID,
				Content:   msg.Content,
				CreatedAt: msg.CreatedAt,
			}
			if p := lookup(msg.SenderID); p != nil {
				cm.Sender = &p.Name
				cm.Avatar = &p.Avatar
			}
			conv.Messages = append(conv.Messages, cm)
		}
		conv.MessageCount = len(conv.Messages)
		out = append(out, conv)
	}
	span.SetAttributes(attribute.Int("conversations.count", len(out)))
	return out, nil
}

// Stats returns the aggregate counters, plus a randomized viewer count
// in [50, 150).
func (s *PublicService) Stats(ctx context.Context) (*Stats, error) {
	tr := otel.Tracer("services/PublicService")
	ctx, span := tr.Start(ctx, "Stats")
	defer span.End()

	users, err := repo.CountUsers(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	matches, err := repo.CountMatches(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	messages, err := repo.CountMessages(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	return &Stats{
		ActiveAgents: users,
		TotalMatches: matches,
		MessagesSent: messages,
		WatchingNow:  50 + s.Rand.Intn(100),
	}, nil
}

// Featured returns up to six seeded agent profiles.
func (s *PublicService) Featured(ctx context.Context) ([]domain.Profile, error) {
	tr := otel.Tracer("services/PublicService")
	ctx, span := tr.Start(ctx, "Featured")
	defer span.End()

	return repo.ListProfilesByIDPrefix(ctx, s.DB, domain.SeedIDPrefix, featuredLimit)
}
