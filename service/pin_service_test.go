package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPinService_HandleReaction_AddPinsUnpinnedMessage(t *testing.T) {
	ctx := context.Background()
	mockClient := new(MockMessageClient)
	service := NewPinService(mockClient)

	mockClient.On("Message", ctx, "10", "20").Return(&MessageSnapshot{
		Pinned: false, PinReactions: 1,
	}, nil)
	mockClient.On("Pin", ctx, "10", "20").Return(nil)

	err := service.HandleReaction(ctx, ReactionEvent{
		Action: ReactionAdded, ChannelID: "10", MessageID: "20", Emoji: PinEmoji,
	})

	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestPinService_HandleReaction_AddIsIdempotentWhenAlreadyPinned(t *testing.T) {
	ctx := context.Background()
	mockClient := new(MockMessageClient)
	service := NewPinService(mockClient)

	mockClient.On("Message", ctx, "10", "20").Return(&MessageSnapshot{
		Pinned: true, PinReactions: 2,
	}, nil)

	err := service.HandleReaction(ctx, ReactionEvent{
		Action: ReactionAdded, ChannelID: "10", MessageID: "20", Emoji: PinEmoji,
	})

	assert.NoError(t, err)
	mockClient.AssertNotCalled(t, "Pin", mock.Anything, mock.Anything, mock.Anything)
}

func TestPinService_HandleReaction_RemoveKeepsPinWhileReactionsRemain(t *testing.T) {
	ctx := context.Background()
	mockClient := new(MockMessageClient)
	service := NewPinService(mockClient)

	// Another user's pin reaction is still outstanding
	mockClient.On("Message", ctx, "10", "20").Return(&MessageSnapshot{
		Pinned: true, PinReactions: 1,
	}, nil)

	err := service.HandleReaction(ctx, ReactionEvent{
		Action: ReactionRemoved, ChannelID: "10", MessageID: "20", Emoji: PinEmoji,
	})

	assert.NoError(t, err)
	mockClient.AssertNotCalled(t, "Unpin", mock.Anything, mock.Anything, mock.Anything)
}

func TestPinService_HandleReaction_RemoveUnpinsWhenLastReactionGone(t *testing.T) {
	ctx := context.Background()
	mockClient := new(MockMessageClient)
	service := NewPinService(mockClient)

	mockClient.On("Message", ctx, "10", "20").Return(&MessageSnapshot{
		Pinned: true, PinReactions: 0,
	}, nil)
	mockClient.On("Unpin", ctx, "10", "20").Return(nil)

	err := service.HandleReaction(ctx, ReactionEvent{
		Action: ReactionRemoved, ChannelID: "10", MessageID: "20", Emoji: PinEmoji,
	})

	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestPinService_HandleReaction_IgnoresOtherEmoji(t *testing.T) {
	ctx := context.Background()
	mockClient := new(MockMessageClient)
	service := NewPinService(mockClient)

	err := service.HandleReaction(ctx, ReactionEvent{
		Action: ReactionAdded, ChannelID: "10", MessageID: "20", Emoji: "👍",
	})

	assert.NoError(t, err)
	mockClient.AssertNotCalled(t, "Message", mock.Anything, mock.Anything, mock.Anything)
}

func TestPinService_HandleReaction_GoneMessageIsAbandonedSilently(t *testing.T) {
	ctx := context.Background()
	mockClient := new(MockMessageClient)
	service := NewPinService(mockClient)

	mockClient.On("Message", ctx, "10", "20").Return(nil, ErrNotFound)

	err := service.HandleReaction(ctx, ReactionEvent{
		Action: ReactionAdded, ChannelID: "10", MessageID: "20", Emoji: PinEmoji,
	})

	assert.NoError(t, err)
	mockClient.AssertNotCalled(t, "Pin", mock.Anything, mock.Anything, mock.Anything)
}

func TestPinService_HandleReaction_FetchErrorPropagates(t *testing.T) {
	ctx := context.Background()
	mockClient := new(MockMessageClient)
	service := NewPinService(mockClient)

	fetchErr := errors.New("gateway timeout")
	mockClient.On("Message", ctx, "10", "20").Return(nil, fetchErr)

	err := service.HandleReaction(ctx, ReactionEvent{
		Action: ReactionAdded, ChannelID: "10", MessageID: "20", Emoji: PinEmoji,
	})

	assert.ErrorIs(t, err, fetchErr)
}

func TestPinService_PinMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("pins unpinned message", func(t *testing.T) {
		mockClient := new(MockMessageClient)
		service := NewPinService(mockClient)

		mockClient.On("Message", ctx, "10", "20").Return(&MessageSnapshot{Pinned: false}, nil)
		mockClient.On("Pin", ctx, "10", "20").Return(nil)

		assert.NoError(t, service.PinMessage(ctx, "10", "20"))
		mockClient.AssertExpectations(t)
	})

	t.Run("already pinned", func(t *testing.T) {
		mockClient := new(MockMessageClient)
		service := NewPinService(mockClient)

		mockClient.On("Message", ctx, "10", "20").Return(&MessageSnapshot{Pinned: true}, nil)

		assert.ErrorIs(t, service.PinMessage(ctx, "10", "20"), ErrAlreadyPinned)
	})

	t.Run("message gone", func(t *testing.T) {
		mockClient := new(MockMessageClient)
		service := NewPinService(mockClient)

		mockClient.On("Message", ctx, "10", "20").Return(nil, ErrNotFound)

		assert.ErrorIs(t, service.PinMessage(ctx, "10", "20"), ErrNotFound)
	})
}

func TestPinService_UnpinMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("unpins pinned message", func(t *testing.T) {
		mockClient := new(MockMessageClient)
		service := NewPinService(mockClient)

		mockClient.On("Message", ctx, "10", "20").Return(&MessageSnapshot{Pinned: true}, nil)
		mockClient.On("Unpin", ctx, "10", "20").Return(nil)

		assert.NoError(t, service.UnpinMessage(ctx, "10", "20"))
		mockClient.AssertExpectations(t)
	})

	t.Run("not pinned", func(t *testing.T) {
		mockClient := new(MockMessageClient)
		service := NewPinService(mockClient)

		mockClient.On("Message", ctx, "10", "20").Return(&MessageSnapshot{Pinned: false}, nil)

		assert.ErrorIs(t, service.UnpinMessage(ctx, "10", "20"), ErrNotPinned)
	})
}
