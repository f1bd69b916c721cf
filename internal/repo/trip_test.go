package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LylesZhang/Protothon-2026/internal/domain"
	"github.com/LylesZhang/Protothon-2026/internal/repo"
)

func newTrip(title, author string) domain.Trip {
	return domain.Trip{
		Title:               title,
		Origin:              "Haverford College",
		Destination:         "New York City, NY",
		Author:              author,
		Capacity:            3,
		CurrentParticipants: 1,
		CostType:            domain.CostSplit,
	}
}

func TestTripRepo_CreateAndGet(t *testing.T) {
	r := repo.NewTripRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, newTrip("NYC Run", "Lyles Zhang"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewTripRepo()

	_, err := r.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_List_InsertionOrder(t *testing.T) {
	r := repo.NewTripRepo()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := r.Create(ctx, newTrip(title, "a"))
		require.NoError(t, err)
	}

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Title)
	assert.Equal(t, "third", all[2].Title)
}

func TestTripRepo_ListByAuthor(t *testing.T) {
	r := repo.NewTripRepo()
	ctx := context.Background()

	_, err := r.Create(ctx, newTrip("mine", "me"))
	require.NoError(t, err)
	_, err = r.Create(ctx, newTrip("theirs", "someone else"))
	require.NoError(t, err)

	mine, err := r.ListByAuthor(ctx, "me")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "mine", mine[0].Title)
}

func TestTripRepo_Update(t *testing.T) {
	r := repo.NewTripRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, newTrip("before", "me"))
	require.NoError(t, err)

	created.Title = "after"
	created.Tags = []string{"Pet Allow"}
	updated, err := r.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, []string{"Pet Allow"}, updated.Tags)

	_, err = r.Update(ctx, newTrip("ghost", "me"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete(t *testing.T) {
	r := repo.NewTripRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, newTrip("doomed", "me"))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, r.Delete(ctx, created.ID), domain.ErrNotFound)

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTripRepo_IncrementParticipants(t *testing.T) {
	r := repo.NewTripRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, newTrip("filling up", "me"))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = r.IncrementParticipants(ctx, created.ID)
		require.NoError(t, err)
	}

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CurrentParticipants)

	_, err = r.IncrementParticipants(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
