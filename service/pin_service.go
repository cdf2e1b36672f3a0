package service

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// PinEmoji is the designated reaction that drives pin synchronization
const PinEmoji = "\U0001F4CC" // 📌

// pinService implements the PinService interface
type pinService struct {
	client MessageClient
}

// NewPinService creates a new pin service
func NewPinService(client MessageClient) PinService {
	return &pinService{client: client}
}

// HandleReaction reconciles a message's pinned state with the presence of
// the designated pin emoji. The pinned state is derived from "at least one
// outstanding pin reaction from any user", so a removal re-fetches the
// live reaction set instead of trusting the event payload. A message or
// channel that no longer exists abandons the operation silently.
func (s *pinService) HandleReaction(ctx context.Context, event ReactionEvent) error {
	if event.Emoji != PinEmoji {
		return nil
	}

	msg, err := s.client.Message(ctx, event.ChannelID, event.MessageID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Debugf("Message %s in channel %s is gone, skipping pin sync", event.MessageID, event.ChannelID)
			return nil
		}
		return fmt.Errorf("failed to fetch message %s: %w", event.MessageID, err)
	}

	switch event.Action {
	case ReactionAdded:
		if msg.Pinned {
			return nil
		}
		if err := s.client.Pin(ctx, event.ChannelID, event.MessageID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			return fmt.Errorf("failed to pin message %s: %w", event.MessageID, err)
		}

	case ReactionRemoved:
		// Another user's reaction still holds the pin
		if msg.PinReactions > 0 || !msg.Pinned {
			return nil
		}
		if err := s.client.Unpin(ctx, event.ChannelID, event.MessageID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			return fmt.Errorf("failed to unpin message %s: %w", event.MessageID, err)
		}
	}

	return nil
}

// PinMessage pins a message on behalf of a command invocation
func (s *pinService) PinMessage(ctx context.Context, channelID, messageID string) error {
	msg, err := s.client.Message(ctx, channelID, messageID)
	if err != nil {
		return err
	}
	if msg.Pinned {
		return ErrAlreadyPinned
	}
	if err := s.client.Pin(ctx, channelID, messageID); err != nil {
		return fmt.Errorf("failed to pin message %s: %w", messageID, err)
	}
	return nil
}

// UnpinMessage unpins a message on behalf of a command invocation
func (s *pinService) UnpinMessage(ctx context.Context, channelID, messageID string) error {
	msg, err := s.client.Message(ctx, channelID, messageID)
	if err != nil {
		return err
	}
	if !msg.Pinned {
		return ErrNotPinned
	}
	if err := s.client.Unpin(ctx, channelID, messageID); err != nil {
		return fmt.Errorf("failed to unpin message %s: %w", messageID, err)
	}
	return nil
}
