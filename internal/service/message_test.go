package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LylesZhang/Protothon-2026/internal/domain"
	"github.com/LylesZhang/Protothon-2026/internal/ids"
	"github.com/LylesZhang/Protothon-2026/internal/repo"
	"github.com/LylesZhang/Protothon-2026/internal/service"
)

func newMessageService(t *testing.T, contacts []string) *service.MessageService {
	t.Helper()
	gen, err := ids.NewGenerator(1)
	require.NoError(t, err)
	return service.NewMessageService(repo.NewConversationRepo(), gen, contacts, zap.NewNop())
}

func TestMessageService_Send_OrderAndIDs(t *testing.T) {
	svc := newMessageService(t, nil)
	ctx := context.Background()

	first, err := svc.SendText(ctx, "Sarah Chen", "You", "Hey!")
	require.NoError(t, err)
	second, err := svc.SendText(ctx, "Sarah Chen", "Sarah Chen", "Hi there")
	require.NoError(t, err)

	assert.Less(t, first.ID, second.ID, "snowflake IDs should be monotonic")

	msgs, err := svc.Messages(ctx, "Sarah Chen")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Hey!", msgs[0].Content)
	assert.Equal(t, "Hi there", msgs[1].Content)
	assert.Equal(t, domain.KindText, msgs[0].Payload.Kind())
}

func TestMessageService_Send_EmptyConversationRejected(t *testing.T) {
	svc := newMessageService(t, nil)

	_, err := svc.SendText(context.Background(), "  ", "You", "hello")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMessageService_LastMessage(t *testing.T) {
	svc := newMessageService(t, nil)
	ctx := context.Background()

	// Absent conversation reads as empty.
	got, err := svc.LastMessage(ctx, "Nobody")
	require.NoError(t, err)
	assert.Equal(t, "No messages yet", got)

	require.NoError(t, svc.CreateConversationIfNeeded(ctx, "Sarah Chen"))
	got, err = svc.LastMessage(ctx, "Sarah Chen")
	require.NoError(t, err)
	assert.Equal(t, "No messages yet", got)

	_, err = svc.SendText(ctx, "Sarah Chen", "You", "short one")
	require.NoError(t, err)
	got, err = svc.LastMessage(ctx, "Sarah Chen")
	require.NoError(t, err)
	assert.Equal(t, "short one", got)
}

func TestMessageService_LastMessage_Truncation(t *testing.T) {
	svc := newMessageService(t, nil)
	ctx := context.Background()

	long := strings.Repeat("a", 51)
	_, err := svc.SendText(ctx, "Sarah Chen", "You", long)
	require.NoError(t, err)

	got, err := svc.LastMessage(ctx, "Sarah Chen")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 50)+"...", got)

	// Exactly at the limit nothing is cut.
	exact := strings.Repeat("b", 50)
	_, err = svc.SendText(ctx, "Sarah Chen", "You", exact)
	require.NoError(t, err)
	got, err = svc.LastMessage(ctx, "Sarah Chen")
	require.NoError(t, err)
	assert.Equal(t, exact, got)
}

func TestMessageService_LastMessage_TruncatesRunesNotBytes(t *testing.T) {
	svc := newMessageService(t, nil)
	ctx := context.Background()

	long := strings.Repeat("好", 60)
	_, err := svc.SendText(ctx, "Sarah Chen", "You", long)
	require.NoError(t, err)

	got, err := svc.LastMessage(ctx, "Sarah Chen")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("好", 50)+"...", got)
}

func TestMessageService_Previews_AllowlistOrder(t *testing.T) {
	svc := newMessageService(t, []string{"Sarah Chen", "Oscar Tang", "Mike Johnson"})
	ctx := context.Background()

	// Create out of allowlist order; Mike has no conversation at all.
	_, err := svc.SendText(ctx, "Oscar Tang", "Oscar Tang", "See you Friday")
	require.NoError(t, err)
	require.NoError(t, svc.CreateConversationIfNeeded(ctx, "Sarah Chen"))

	// A conversation outside the allowlist stores fine but is invisible.
	_, err = svc.SendText(ctx, "Stranger", "Stranger", "hello?")
	require.NoError(t, err)

	previews, err := svc.Previews(ctx)
	require.NoError(t, err)
	require.Len(t, previews, 2)
	assert.Equal(t, "Sarah Chen", previews[0].Name)
	assert.Equal(t, "No messages yet", previews[0].LastMessage)
	assert.Equal(t, "Oscar Tang", previews[1].Name)
	assert.Equal(t, "See you Friday", previews[1].LastMessage)
}

func TestMessageService_ShareTripLink(t *testing.T) {
	svc := newMessageService(t, nil)
	ctx := context.Background()

	tripID := uuid.MustParse("0b7aa0a9-5d3e-4b7e-9b59-1f7e6f3d20aa")
	msg, err := svc.ShareTripLink(ctx, "Sarah Chen", "You", "carpal", tripID)
	require.NoError(t, err)

	link, ok := msg.Payload.(domain.LinkPayload)
	require.True(t, ok)
	assert.Equal(t, "carpal://trip/0b7aa0a9-5d3e-4b7e-9b59-1f7e6f3d20aa", link.URL)
	assert.Equal(t, link.URL, msg.Content)

	// The shared link must parse back to the same trip.
	parsed, err := domain.ParseTripLink(link.URL)
	require.NoError(t, err)
	assert.Equal(t, tripID, parsed)
}
