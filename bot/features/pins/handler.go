package pins

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"roomwizard/bot/common"
	"roomwizard/service"
)

// handlePin handles the "Pin Message" context menu command
func (f *Feature) handlePin(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	messageID := i.ApplicationCommandData().TargetID

	err := f.pinService.PinMessage(ctx, i.ChannelID, messageID)
	switch {
	case err == nil:
		common.RespondWithText(s, i, "Message pinned!", true)
	case errors.Is(err, service.ErrAlreadyPinned):
		common.RespondWithText(s, i, "This message is already pinned.", true)
	case errors.Is(err, service.ErrNotFound):
		common.RespondWithText(s, i, "This message doesn't exist anymore.", true)
	default:
		log.Errorf("Failed to pin message %s: %v", messageID, err)
		f.audit.LogError(ctx, "Pin Message", fmt.Sprintf("message_id=%s", messageID), err)
		common.RespondWithText(s, i, common.GenericErrorReply, true)
	}
}

// handleUnpin handles the "Unpin Message" context menu command
func (f *Feature) handleUnpin(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	messageID := i.ApplicationCommandData().TargetID

	err := f.pinService.UnpinMessage(ctx, i.ChannelID, messageID)
	switch {
	case err == nil:
		common.RespondWithText(s, i, "Message unpinned!", true)
	case errors.Is(err, service.ErrNotPinned):
		common.RespondWithText(s, i, "This message is not pinned.", true)
	case errors.Is(err, service.ErrNotFound):
		common.RespondWithText(s, i, "This message doesn't exist anymore.", true)
	default:
		log.Errorf("Failed to unpin message %s: %v", messageID, err)
		f.audit.LogError(ctx, "Unpin Message", fmt.Sprintf("message_id=%s", messageID), err)
		common.RespondWithText(s, i, common.GenericErrorReply, true)
	}
}

// HandleReaction reconciles pins with 📌 reaction changes
func (f *Feature) HandleReaction(event service.ReactionEvent) {
	ctx := context.Background()

	if err := f.pinService.HandleReaction(ctx, event); err != nil {
		log.Errorf("Failed to sync pin for message %s: %v", event.MessageID, err)
		f.audit.LogError(ctx, "reaction sync",
			fmt.Sprintf("channel_id=%s message_id=%s", event.ChannelID, event.MessageID), err)
	}
}

// LegacyPin handles the text command "pin <message_id>"
func (f *Feature) LegacyPin(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	messageID, ok := parseMessageID(s, m, args)
	if !ok {
		return
	}

	ctx := context.Background()
	err := f.pinService.PinMessage(ctx, m.ChannelID, messageID)
	switch {
	case err == nil:
		common.SendText(s, m.ChannelID, "Message pinned!")
	case errors.Is(err, service.ErrAlreadyPinned):
		common.SendText(s, m.ChannelID, "This message is already pinned.")
	case errors.Is(err, service.ErrNotFound):
		common.SendText(s, m.ChannelID, "I couldn't find that message in this channel.")
	default:
		log.Errorf("Failed to pin message %s: %v", messageID, err)
		f.audit.LogError(ctx, "pin", fmt.Sprintf("message_id=%s", messageID), err)
		common.SendText(s, m.ChannelID, common.GenericErrorReply)
	}
}

// LegacyUnpin handles the text command "unpin <message_id>"
func (f *Feature) LegacyUnpin(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	messageID, ok := parseMessageID(s, m, args)
	if !ok {
		return
	}

	ctx := context.Background()
	err := f.pinService.UnpinMessage(ctx, m.ChannelID, messageID)
	switch {
	case err == nil:
		common.SendText(s, m.ChannelID, "Message unpinned!")
	case errors.Is(err, service.ErrNotPinned):
		common.SendText(s, m.ChannelID, "This message is not pinned.")
	case errors.Is(err, service.ErrNotFound):
		common.SendText(s, m.ChannelID, "I couldn't find that message in this channel.")
	default:
		log.Errorf("Failed to unpin message %s: %v", messageID, err)
		f.audit.LogError(ctx, "unpin", fmt.Sprintf("message_id=%s", messageID), err)
		common.SendText(s, m.ChannelID, common.GenericErrorReply)
	}
}

// parseMessageID validates the single numeric message id argument of the
// legacy pin/unpin commands
func parseMessageID(s *discordgo.Session, m *discordgo.MessageCreate, args []string) (string, bool) {
	if len(args) != 1 {
		common.SendText(s, m.ChannelID, "Please give me exactly one message id, like `pin 123456789`.")
		return "", false
	}
	if _, err := strconv.ParseUint(args[0], 10, 64); err != nil {
		common.SendText(s, m.ChannelID, "That doesn't look like a message id. It has to be a number.")
		return "", false
	}
	return args[0], true
}
