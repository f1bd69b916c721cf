package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LylesZhang/Protothon-2026/internal/repo"
	"github.com/LylesZhang/Protothon-2026/internal/service"
)

func TestFollowService_Toggle(t *testing.T) {
	trips := repo.NewTripRepo()
	messages := newMessageService(t, nil)
	svc := service.NewFollowService(trips, messages, []string{"Oscar Tang"}, zap.NewNop())
	ctx := context.Background()

	assert.True(t, svc.IsFollowing("Oscar Tang"))
	assert.False(t, svc.IsFollowing("Sarah Chen"))

	on, err := svc.ToggleFollow(ctx, "Sarah Chen")
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, []string{"Oscar Tang", "Sarah Chen"}, svc.Following())

	// Following opens the chat thread right away.
	preview, err := messages.LastMessage(ctx, "Sarah Chen")
	require.NoError(t, err)
	assert.Equal(t, service.NoMessagesPreview, preview)

	off, err := svc.ToggleFollow(ctx, "Sarah Chen")
	require.NoError(t, err)
	assert.False(t, off)
	assert.Equal(t, []string{"Oscar Tang"}, svc.Following())
}

func TestFollowService_FollowingTrips(t *testing.T) {
	trips := repo.NewTripRepo()
	messages := newMessageService(t, nil)
	svc := service.NewFollowService(trips, messages, []string{"Oscar Tang"}, zap.NewNop())
	ctx := context.Background()

	followed := validTrip()
	followed.Author = "Oscar Tang"
	_, err := trips.Create(ctx, followed)
	require.NoError(t, err)

	stranger := validTrip()
	stranger.Author = "Carlos Ruiz"
	_, err = trips.Create(ctx, stranger)
	require.NoError(t, err)

	got, err := svc.FollowingTrips(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Oscar Tang", got[0].Author)

	// Unfollow empties the feed.
	_, err = svc.ToggleFollow(ctx, "Oscar Tang")
	require.NoError(t, err)
	got, err = svc.FollowingTrips(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSavedTripsService(t *testing.T) {
	trips := repo.NewTripRepo()
	svc := service.NewSavedTripsService(trips)
	ctx := context.Background()

	first, err := trips.Create(ctx, validTrip())
	require.NoError(t, err)
	second, err := trips.Create(ctx, validTrip())
	require.NoError(t, err)

	assert.False(t, svc.IsSaved(first.ID))
	assert.True(t, svc.ToggleSave(first.ID))
	assert.True(t, svc.ToggleSave(second.ID))
	assert.True(t, svc.IsSaved(first.ID))

	saved, err := svc.SavedTrips(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, first.ID, saved[0].ID)

	// Toggling off removes the bookmark.
	assert.False(t, svc.ToggleSave(first.ID))
	saved, err = svc.SavedTrips(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, second.ID, saved[0].ID)

	// A deleted trip disappears from the saved list without error.
	require.NoError(t, trips.Delete(ctx, second.ID))
	saved, err = svc.SavedTrips(ctx)
	require.NoError(t, err)
	assert.Empty(t, saved)
}
