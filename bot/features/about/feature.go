package about

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"roomwizard/bot/common"
)

// Feature handles the help and about commands
type Feature struct{}

// NewFeature creates a new about feature instance
func NewFeature() *Feature {
	return &Feature{}
}

// HandleCommand routes the help and about slash commands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "help":
		common.RespondWithEmbed(s, i, HelpEmbed(), false)
	case "about":
		common.RespondWithEmbed(s, i, f.aboutEmbed(s), false)
	}
}

// LegacyHelp handles the text command "help"
func (f *Feature) LegacyHelp(s *discordgo.Session, m *discordgo.MessageCreate) {
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, HelpEmbed()); err != nil {
		common.SendText(s, m.ChannelID, common.GenericErrorReply)
	}
}

// LegacyAbout handles the text command "about"
func (f *Feature) LegacyAbout(s *discordgo.Session, m *discordgo.MessageCreate) {
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, f.aboutEmbed(s)); err != nil {
		common.SendText(s, m.ChannelID, common.GenericErrorReply)
	}
}

// HelpEmbed builds the command overview embed. It is also used for the
// welcome message when the bot joins a guild.
func HelpEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Hi, I'm here to help you with your pins!",
		Description: "React to any message with a \U0001F4CC emoji and I will pin it for you.\n" +
			"You can also right-click a message and pin it from the Apps menu.",
		Color: common.EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "HOW TO PIN A MESSAGE",
				Value: "React with \U0001F4CC, use **Apps > Pin Message**, " +
					"or type `pin <message id>`.",
			},
			{
				Name: "HOW TO UNPIN A MESSAGE",
				Value: "Remove the last \U0001F4CC reaction, use **Apps > Unpin Message**, " +
					"or type `unpin <message id>`.",
			},
			{
				Name: "ROOM SETTINGS",
				Value: "Room owners can change their room with `/rename room`.\n" +
					"Moderators can manage owners with `/set room owner`, `/get room owner` " +
					"and `/reset room owner`.",
			},
			{
				Name: "PREFIX",
				Value: "Text commands work with the guild prefix in any capitalization.\n" +
					"See it with `/prefix`, change it with `/setprefix`.",
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: common.EmbedFooter},
	}
}

// aboutEmbed builds the bot status embed
func (f *Feature) aboutEmbed(s *discordgo.Session) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "About me",
		Description: "I keep your pins and rooms tidy.",
		Color:       common.EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Guilds",
				Value:  fmt.Sprintf("%d", len(s.State.Guilds)),
				Inline: true,
			},
			{
				Name:   "Latency",
				Value:  fmt.Sprintf("%d ms", s.HeartbeatLatency().Milliseconds()),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: common.EmbedFooter},
	}
}
