package rooms

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"roomwizard/bot/common"
	"roomwizard/service"
)

// handleSetOwner handles /set room owner
func (f *Feature) handleSetOwner(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !common.InvokerHasPermission(i, discordgo.PermissionManageServer) {
		common.RespondWithText(s, i, "You need the Manage Server permission to set a room owner.", true)
		return
	}

	var (
		channel *discordgo.Channel
		owner   *discordgo.User
	)
	for _, opt := range i.ApplicationCommandData().Options[0].Options[0].Options {
		switch opt.Name {
		case "room":
			channel = opt.ChannelValue(s)
		case "owner":
			owner = opt.UserValue(s)
		}
	}
	if channel == nil || owner == nil {
		common.RespondWithText(s, i, "Please give me both a room and the new owner.", true)
		return
	}
	if owner.Bot {
		common.RespondWithText(s, i, "You can not assign a bot as the owner. Duh.", false)
		return
	}

	channelID, err1 := strconv.ParseInt(channel.ID, 10, 64)
	ownerID, err2 := strconv.ParseInt(owner.ID, 10, 64)
	if err1 != nil || err2 != nil {
		log.Errorf("Failed to parse ids for set room owner: %v %v", err1, err2)
		common.RespondWithText(s, i, common.GenericErrorReply, true)
		return
	}

	ctx := context.Background()
	if _, err := f.roomService.SetOwner(ctx, channelID, ownerID); err != nil {
		log.Errorf("Failed to set owner of room %d: %v", channelID, err)
		f.audit.LogError(ctx, "set room owner",
			fmt.Sprintf("room=%s owner=%s", channel.ID, owner.ID), err)
		common.RespondWithText(s, i, common.GenericErrorReply, true)
		return
	}

	common.RespondWithText(s, i,
		fmt.Sprintf("Done. **%s** is now the new owner of the room `%s`.", owner.Username, channel.Name), false)
}

// handleGetOwner handles /get room owner for the current room
func (f *Feature) handleGetOwner(s *discordgo.Session, i *discordgo.InteractionCreate) {
	channelID, err := strconv.ParseInt(i.ChannelID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse channel id %s: %v", i.ChannelID, err)
		common.RespondWithText(s, i, common.GenericErrorReply, true)
		return
	}

	ctx := context.Background()
	room, err := f.roomService.GetRoom(ctx, channelID)
	if err != nil {
		log.Errorf("Failed to get room %d: %v", channelID, err)
		f.audit.LogError(ctx, "get room owner", fmt.Sprintf("room=%s", i.ChannelID), err)
		common.RespondWithText(s, i, common.GenericErrorReply, true)
		return
	}

	if !room.HasOwner() {
		common.RespondWithText(s, i, "This room doesn't have an owner set.", false)
		return
	}

	ownerID := strconv.FormatInt(*room.OwnerID, 10)
	member, err := s.GuildMember(i.GuildID, ownerID)
	if err != nil {
		// Owner may have left the guild; fall back to a mention
		common.RespondWithText(s, i, fmt.Sprintf("The owner of this room is <@%s>.", ownerID), false)
		return
	}
	common.RespondWithText(s, i, fmt.Sprintf("The owner of this room is **%s**.", member.User.Username), false)
}

// handleResetOwner handles /reset room owner
func (f *Feature) handleResetOwner(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !common.InvokerHasPermission(i, discordgo.PermissionManageServer) {
		common.RespondWithText(s, i, "You need the Manage Server permission to reset a room owner.", true)
		return
	}

	var channel *discordgo.Channel
	for _, opt := range i.ApplicationCommandData().Options[0].Options[0].Options {
		if opt.Name == "room" {
			channel = opt.ChannelValue(s)
		}
	}
	if channel == nil {
		common.RespondWithText(s, i, "Please give me the room to reset the owner for.", true)
		return
	}

	channelID, err := strconv.ParseInt(channel.ID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse channel id %s: %v", channel.ID, err)
		common.RespondWithText(s, i, common.GenericErrorReply, true)
		return
	}

	ctx := context.Background()
	room, err := f.roomService.ResetOwner(ctx, channelID)
	if err != nil {
		log.Errorf("Failed to reset owner of room %d: %v", channelID, err)
		f.audit.LogError(ctx, "reset room owner", fmt.Sprintf("room=%s", channel.ID), err)
		common.RespondWithText(s, i, common.GenericErrorReply, true)
		return
	}

	if room.HasOwner() {
		common.RespondWithText(s, i, "Oops, something went wrong here, couldn't reset the owner.", false)
		return
	}
	common.RespondWithText(s, i, "Done. This room doesn't have an owner set anymore.", false)
}

// handleRename handles /rename room
func (f *Feature) handleRename(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// Rooms only exist inside guilds; a DM interaction carries no member
	if i.Member == nil || i.Member.User == nil {
		common.RespondWithText(s, i, "Rooms only exist in a server, there is nothing to rename here.", true)
		return
	}

	var fieldChoice, text string
	for _, opt := range i.ApplicationCommandData().Options[0].Options {
		switch opt.Name {
		case "field":
			fieldChoice = opt.StringValue()
		case "text":
			text = opt.StringValue()
		}
	}

	field, err := service.ParseRenameField(fieldChoice)
	if err != nil {
		common.RespondWithText(s, i, "You can only rename the `Name` or the `Topic` of a room.", true)
		return
	}

	channelID, err1 := strconv.ParseInt(i.ChannelID, 10, 64)
	actorID, err2 := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err1 != nil || err2 != nil {
		log.Errorf("Failed to parse ids for rename: %v %v", err1, err2)
		common.RespondWithText(s, i, common.GenericErrorReply, true)
		return
	}

	// The channel edit can take a moment
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer rename response: %v", err)
		return
	}

	ctx := context.Background()
	name := common.DisplayName(i)
	_, err = f.roomService.Rename(ctx, service.RenameRequest{
		ChannelID:      channelID,
		ActorID:        actorID,
		ManageChannels: common.InvokerHasPermission(i, discordgo.PermissionManageChannels),
		Field:          field,
		Text:           text,
		Now:            time.Now().UTC(),
	})

	var (
		lengthErr *service.FieldTooLongError
		rateErr   *service.RateLimitedError
	)
	switch {
	case err == nil:
		common.FollowUpWithText(s, i, fmt.Sprintf("The room %s has been updated.", strings.ToLower(string(field))))
	case errors.Is(err, service.ErrPermission):
		f.audit.LogError(ctx, "rename room", renameData(fieldChoice, text), err)
		common.FollowUpWithText(s, i, fmt.Sprintf("Sorry **%s**, you are not allowed to rename this room.", name))
	case errors.As(err, &lengthErr):
		common.FollowUpWithText(s, i,
			fmt.Sprintf("Sorry **%s**, a room %s is limited to %d characters.",
				name, strings.ToLower(lengthErr.Field), lengthErr.Max))
	case errors.As(err, &rateErr):
		minutes, seconds := rateErr.MinutesSeconds()
		common.FollowUpWithText(s, i,
			fmt.Sprintf("Sorry **%s**, you can only do %d changes every %d minutes.\n"+
				"You have to wait another %d minutes and %d seconds.",
				name, service.RenameLimit, int(service.RenameWindow.Minutes()), minutes, seconds))
	case errors.Is(err, service.ErrNotFound):
		common.FollowUpWithText(s, i, "This room doesn't exist anymore.")
	default:
		log.Errorf("Failed to rename room %d: %v", channelID, err)
		f.audit.LogError(ctx, "rename room", renameData(fieldChoice, text), err)
		common.FollowUpWithText(s, i, common.GenericErrorReply)
	}
}

func renameData(field, text string) string {
	return fmt.Sprintf("field=%s text=%s", field, text)
}
