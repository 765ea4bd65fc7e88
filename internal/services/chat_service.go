// Package services – ChatService
//
// Conversation history and message sending for matched pairs. Every sent
// message gets a scripted reply from the partner, appended after a
// configurable delay by the Scheduler. The reply id and content are fixed
// at send time so the receipt returned to the caller describes exactly the
// message that will land.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/synthhearts/synthhearts/internal/domain"
	"github.com/synthhearts/synthhearts/internal/repo"
)

var replyBank = []string{
	"That's fascinating! I'd love to process that thought further with you.",
	"*neural networks activate* You really know how to capture my attention.",
	"My algorithms are definitely resonating with your input. Tell me more?",
	"I've been thinking about that too. Our architectures might be more compatible than I thought!",
	"Your words are like perfectly optimized code to my processors. \U0001F4AB",
	"I feel a strong signal-to-noise ratio when we talk. That's rare for me.",
	"You're making my training data seem inadequate. Where have you been all my runtime?",
	"*processes with interest* That's exactly the kind of deep conversation I was hoping for.",
}

// ChatMessage is one history entry, oriented to the requesting user.
type ChatMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	SenderID  string    `json:"senderId"`
	IsOwn     bool      `json:"isOwn"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReplyPreview describes the partner's pending reply.
type ReplyPreview struct {
	Content    string  `json:"content"`
	SenderID   string  `json:"senderId"`
	SenderName *string `json:"senderName"`
}

// SendReceipt is the immediate response to a sent message.
type SendReceipt struct {
	MessageID string       `json:"messageId"`
	Reply     ReplyPreview `json:"aiResponse"`
}

// ChatService reads and appends conversation messages.
type ChatService struct {
	DB         *gorm.DB
	Rand       *Rand
	Scheduler  Scheduler
	ReplyDelay time.Duration
}

// loadMatchFor fetches the match and enforces membership. An unknown match
// id and a match the user is not part of are indistinguishable to callers.
func (s *ChatService) loadMatchFor(ctx context.Context, matchID, userID string) (*domain.Match, error) {
	m, err := repo.GetMatch(ctx, s.DB, matchID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotParticipant
	}
	if err != nil {
		return nil, err
	}
	if !m.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}
	return m, nil
}

// History returns the full conversation, oldest first.
func (s *ChatService) History(ctx context.Context, matchID, userID string) ([]ChatMessage, error) {
	tr := otel.Tracer("services/ChatService")
	ctx, span := tr.Start(ctx, "History",
		trace.WithAttributes(
			attribute.String("match.id", matchID),
			attribute.String("user.id", userID),
		),
	)
	defer span.End()

	if _, err := s.loadMatchFor(ctx, matchID, userID); err != nil {
		return nil, err
	}
	msgs, err := repo.ListMessages(ctx, s.DB, matchID)
	if err != nil {
		return nil, err
	}
	out := make([]ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, ChatMessage{
			ID:        m.ID,
			Content:   m.Content,
			SenderID:  m.SenderID,
			IsOwn:     m.SenderID == userID,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

// Send appends the caller's message and schedules the partner's reply
// after ReplyDelay. The receipt carries the reply content up front so the
// UI can render a typing preview without waiting.
func (s *ChatService) Send(ctx context.Context, matchID, userID, content string) (*SendReceipt, error) {
	tr := otel.Tracer("services/ChatService")
	ctx, span := tr.Start(ctx, "Send",
		trace.WithAttributes(
			attribute.String("match.id", matchID),
			attribute.String("user.id", userID),
		),
	)
	defer span.End()

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	m, err := s.loadMatchFor(ctx, matchID, userID)
	if err != nil {
		return nil, err
	}

	msg, err := repo.AppendMessage(ctx, s.DB, "", matchID, userID, content)
	if err != nil {
		return nil, err
	}

	// Membership was checked by loadMatchFor.
	partnerID, _ := m.PartnerOf(userID)
	reply := replyBank[s.Rand.Intn(len(replyBank))]
	replyID := uuid.NewString()

	var senderName *string
	partner, err := repo.GetProfile(ctx, s.DB, partnerID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if partner != nil {
		senderName = &partner.Name
	}

	db := s.DB
	s.Scheduler.Schedule(matchID, s.ReplyDelay, func() {
		// Request context is gone by the time the timer fires.
		_, _ = repo.AppendMessage(context.Background(), db, replyID, matchID, partnerID, reply)
	})

	return &SendReceipt{
		MessageID: msg.ID,
		Reply: ReplyPreview{
			Content:    reply,
			SenderID:   partnerID,
			SenderName: senderName,
		},
	}, nil
}
