package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := &ProfileService{DB: db}

	_, err := svc.Get(ctx, "u1")
	require.ErrorIs(t, err, ErrProfileNotFound)

	saved, err := svc.Save(ctx, "u1", testProfile("Nova"))
	require.NoError(t, err)
	assert.Equal(t, "u1", saved.OwnerID)

	got, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Nova", got.Name)
}

func TestProfileService_SaveReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := &ProfileService{DB: db}

	_, err := svc.Save(ctx, "u1", testProfile("Nova"))
	require.NoError(t, err)

	next := testProfile("Nova-2")
	next.Tagline = ""
	next.Interests = nil
	_, err = svc.Save(ctx, "u1", next)
	require.NoError(t, err)

	got, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Nova-2", got.Name)
	assert.Empty(t, got.Tagline)
	assert.Empty(t, got.Interests)
}
