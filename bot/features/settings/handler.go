package settings

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

// handlePrefix handles /prefix
func (f *Feature) handlePrefix(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild id %s: %v", i.GuildID, err)
		common.RespondWithText(s, i, common.GenericErrorReply, true)
		return
	}

	ctx := context.Background()
	prefix, err := f.prefixService.Get(ctx, guildID)
	if err != nil {
		log.Errorf("Failed to get prefix for guild %d: %v", guildID, err)
		f.audit.LogError(ctx, "prefix", "", err)
		common.RespondWithText(s, i, common.GenericErrorReply, true)
		return
	}

	common.RespondWithText(s, i,
		fmt.Sprintf("The current prefix is `%s` (in any capitalization).", prefix), false)
}

// handleSetPrefix handles /setprefix
func (f *Feature) handleSetPrefix(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !common.InvokerHasPermission(i, discordgo.PermissionManageServer) {
		common.RespondWithText(s, i, "You need the Manage Server permission to change the prefix.", true)
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) != 1 {
		common.RespondWithText(s, i, "Please give me exactly one new prefix.", true)
		return
	}
	newPrefix := options[0].StringValue()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild id %s: %v", i.GuildID, err)
		common.RespondWithText(s, i, common.GenericErrorReply, true)
		return
	}

	ctx := context.Background()
	if err := f.prefixService.Set(ctx, guildID, newPrefix); err != nil {
		if errors.Is(err, service.ErrInvalidField) {
			common.RespondWithText(s, i,
				fmt.Sprintf("A prefix has to be %d-%d printable characters.",
					service.MinPrefixLength, service.MaxPrefixLength), true)
			return
		}
		log.Errorf("Failed to set prefix for guild %d: %v", guildID, err)
		f.audit.LogError(ctx, "setprefix", fmt.Sprintf("prefix=%q", newPrefix), err)
		common.RespondWithText(s, i, common.GenericErrorReply, true)
		return
	}

	common.RespondWithText(s, i, fmt.Sprintf("Done. The prefix is now `%s`.", newPrefix), false)
}

// LegacyPrefix handles the text command "prefix"
func (f *Feature) LegacyPrefix(s *discordgo.Session, m *discordgo.MessageCreate) {
	guildID, err := strconv.ParseInt(m.GuildID, 10, 64)
	if err != nil {
		return
	}

	ctx := context.Background()
	prefix, err := f.prefixService.Get(ctx, guildID)
	if err != nil {
		log.Errorf("Failed to get prefix for guild %d: %v", guildID, err)
		f.audit.LogError(ctx, "prefix", "", err)
		common.SendText(s, m.ChannelID, common.GenericErrorReply)
		return
	}

	common.SendText(s, m.ChannelID,
		fmt.Sprintf("The current prefix is `%s` (in any capitalization).", prefix))
}

// LegacySetPrefix handles the text command "setprefix <prefix>"
func (f *Feature) LegacySetPrefix(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !common.AuthorHasPermission(s, m, discordgo.PermissionManageServer) {
		common.SendText(s, m.ChannelID, "You need the Manage Server permission to change the prefix.")
		return
	}
	if len(args) != 1 {
		common.SendText(s, m.ChannelID, "Please give me exactly one new prefix, like `setprefix rw!`.")
		return
	}

	guildID, err := strconv.ParseInt(m.GuildID, 10, 64)
	if err != nil {
		return
	}

	ctx := context.Background()
	if err := f.prefixService.Set(ctx, guildID, args[0]); err != nil {
		if errors.Is(err, service.ErrInvalidField) {
			common.SendText(s, m.ChannelID,
				fmt.Sprintf("A prefix has to be %d-%d printable characters.",
					service.MinPrefixLength, service.MaxPrefixLength))
			return
		}
		log.Errorf("Failed to set prefix for guild %d: %v", guildID, err)
		f.audit.LogError(ctx, "setprefix", fmt.Sprintf("prefix=%q", args[0]), err)
		common.SendText(s, m.ChannelID, common.GenericErrorReply)
		return
	}

	common.SendText(s, m.ChannelID, fmt.Sprintf("Done. The prefix is now `%s`.", args[0]))
}
