package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthhearts/synthhearts/internal/domain"
)

// newChatFixture matches two registered users and returns the chat service
// with its captive scheduler.
func newChatFixture(t *testing.T) (svc *ChatService, sched *fakeScheduler, matchID string, a, b *AuthResult) {
	t.Helper()
	db := newTestDB(t)
	auth := newAuthService(db)
	match := &MatchService{DB: db}
	ctx := context.Background()

	a = mustRegister(t, auth, "alice")
	b = mustRegister(t, auth, "bob")
	_, err := match.Swipe(ctx, a.UserID, b.UserID, domain.SwipeRight)
	require.NoError(t, err)
	res, err := match.Swipe(ctx, b.UserID, a.UserID, domain.SwipeRight)
	require.NoError(t, err)
	require.NotNil(t, res.MatchID)

	sched = newFakeScheduler()
	svc = &ChatService{
		DB:         db,
		Rand:       NewRand(3),
		Scheduler:  sched,
		ReplyDelay: time.Second,
	}
	return svc, sched, *res.MatchID, a, b
}

func TestChatService_SendRepliesAfterDelay(t *testing.T) {
	svc, sched, matchID, a, b := newChatFixture(t)
	ctx := context.Background()

	receipt, err := svc.Send(ctx, matchID, a.UserID, "hello there")
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.MessageID)
	assert.Equal(t, b.UserID, receipt.Reply.SenderID)
	require.NotNil(t, receipt.Reply.SenderName)
	assert.Equal(t, "bob", *receipt.Reply.SenderName)
	assert.Contains(t, replyBank, receipt.Reply.Content)

	// Before the timer fires only the caller's message exists.
	history, err := svc.History(ctx, matchID, a.UserID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "hello there", history[0].Content)
	assert.True(t, history[0].IsOwn)

	assert.Equal(t, time.Second, sched.delays[matchID])
	sched.fire(t, matchID)

	// The reply lands with the exact content promised in the receipt.
	history, err = svc.History(ctx, matchID, a.UserID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, receipt.Reply.Content, history[1].Content)
	assert.Equal(t, b.UserID, history[1].SenderID)
	assert.False(t, history[1].IsOwn)

	// The partner sees mirrored ownership.
	history, err = svc.History(ctx, matchID, b.UserID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.False(t, history[0].IsOwn)
	assert.True(t, history[1].IsOwn)
}

func TestChatService_SendRejectsEmptyContent(t *testing.T) {
	svc, _, matchID, a, _ := newChatFixture(t)
	ctx := context.Background()

	_, err := svc.Send(ctx, matchID, a.UserID, "")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	_, err = svc.Send(ctx, matchID, a.UserID, "   \t\n")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	history, err := svc.History(ctx, matchID, a.UserID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestChatService_OutsidersAndUnknownMatchesRejected(t *testing.T) {
	svc, _, matchID, _, _ := newChatFixture(t)
	ctx := context.Background()

	// A user outside the match cannot read or write. An unknown match id
	// fails the same way, so ids cannot be probed.
	_, err := svc.History(ctx, matchID, "outsider")
	assert.ErrorIs(t, err, ErrNotParticipant)
	_, err = svc.Send(ctx, matchID, "outsider", "let me in")
	assert.ErrorIs(t, err, ErrNotParticipant)
	_, err = svc.History(ctx, "no-such-match", "outsider")
	assert.ErrorIs(t, err, ErrNotParticipant)
	_, err = svc.Send(ctx, "no-such-match", "outsider", "hello?")
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestChatService_RapidSendsKeepLatestScheduledReply(t *testing.T) {
	svc, sched, matchID, a, _ := newChatFixture(t)
	ctx := context.Background()

	first, err := svc.Send(ctx, matchID, a.UserID, "one")
	require.NoError(t, err)
	second, err := svc.Send(ctx, matchID, a.UserID, "two")
	require.NoError(t, err)
	_ = first

	// One pending task per match; firing it appends a single reply.
	sched.fire(t, matchID)
	history, err := svc.History(ctx, matchID, a.UserID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, second.Reply.Content, history[2].Content)
}
