package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthhearts/synthhearts/internal/domain"
)

func TestDiscoveryService_ExcludesSelfAndSwiped(t *testing.T) {
	db := newTestDB(t)
	auth := newAuthService(db)
	match := &MatchService{DB: db}
	svc := &DiscoveryService{DB: db, Rand: NewRand(7)}
	ctx := context.Background()

	me := mustRegister(t, auth, "me")
	liked := mustRegister(t, auth, "liked")
	passed := mustRegister(t, auth, "passed")
	fresh := mustRegister(t, auth, "fresh")

	_, err := match.Swipe(ctx, me.UserID, liked.UserID, domain.SwipeRight)
	require.NoError(t, err)
	_, err = match.Swipe(ctx, me.UserID, passed.UserID, domain.SwipeLeft)
	require.NoError(t, err)

	got, err := svc.Discover(ctx, me.UserID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, fresh.UserID, got[0].OwnerID)
}

func TestDiscoveryService_IncomingSwipesDoNotHideCandidates(t *testing.T) {
	db := newTestDB(t)
	auth := newAuthService(db)
	match := &MatchService{DB: db}
	svc := &DiscoveryService{DB: db, Rand: NewRand(7)}
	ctx := context.Background()

	me := mustRegister(t, auth, "me")
	admirer := mustRegister(t, auth, "admirer")

	// They swiped on me; I have not swiped on them.
	_, err := match.Swipe(ctx, admirer.UserID, me.UserID, domain.SwipeRight)
	require.NoError(t, err)

	got, err := svc.Discover(ctx, me.UserID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, admirer.UserID, got[0].OwnerID)
}

func TestDiscoveryService_CapsResults(t *testing.T) {
	db := newTestDB(t)
	auth := newAuthService(db)
	svc := &DiscoveryService{DB: db, Rand: NewRand(7), Limit: 3}
	ctx := context.Background()

	me := mustRegister(t, auth, "me")
	for i := 0; i < 5; i++ {
		mustRegister(t, auth, fmt.Sprintf("candidate%d", i))
	}

	got, err := svc.Discover(ctx, me.UserID)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestDiscoveryService_ShuffleIsSeedDeterministic(t *testing.T) {
	db := newTestDB(t)
	auth := newAuthService(db)
	ctx := context.Background()

	me := mustRegister(t, auth, "me")
	for i := 0; i < 8; i++ {
		mustRegister(t, auth, fmt.Sprintf("candidate%d", i))
	}

	order := func(seed int64) []string {
		svc := &DiscoveryService{DB: db, Rand: NewRand(seed)}
		got, err := svc.Discover(ctx, me.UserID)
		require.NoError(t, err)
		ids := make([]string, len(got))
		for i, p := range got {
			ids[i] = p.OwnerID
		}
		return ids
	}

	assert.Equal(t, order(1), order(1), "same seed, same order")
	assert.ElementsMatch(t, order(1), order(2), "seed changes order, not membership")
}
