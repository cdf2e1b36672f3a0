package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"roomwizard/service"
)

func (b *Bot) registerCommands() error {
	manageServer := int64(discordgo.PermissionManageServer)
	dmPermission := false

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "help",
			Description: "Show what I can do for you",
		},
		{
			Name:        "about",
			Description: "Show bot status information",
		},
		{
			Name:         "prefix",
			Description:  "Show the text command prefix of this guild",
			DMPermission: &dmPermission,
		},
		{
			Name:                     "setprefix",
			Description:              "Change the text command prefix of this guild",
			DefaultMemberPermissions: &manageServer,
			DMPermission:             &dmPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "prefix",
					Description: fmt.Sprintf("The new prefix (%d-%d characters)", service.MinPrefixLength, service.MaxPrefixLength),
					Required:    true,
				},
			},
		},
		{
			Name:         "set",
			Description:  "Change a setting",
			DMPermission: &dmPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "room",
					Description: "Change a room setting",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "owner",
							Description: "Set the owner of a room",
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionChannel,
									Name:        "room",
									Description: "The room to set the owner for",
									Required:    true,
								},
								{
									Type:        discordgo.ApplicationCommandOptionUser,
									Name:        "owner",
									Description: "The new owner of the room",
									Required:    true,
								},
							},
						},
					},
				},
			},
		},
		{
			Name:         "get",
			Description:  "Show a setting",
			DMPermission: &dmPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "room",
					Description: "Show a room setting",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "owner",
							Description: "Show the owner of this room",
						},
					},
				},
			},
		},
		{
			Name:         "reset",
			Description:  "Reset a setting",
			DMPermission: &dmPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "room",
					Description: "Reset a room setting",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "owner",
							Description: "Remove the owner of a room",
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionChannel,
									Name:        "room",
									Description: "The room to remove the owner from",
									Required:    true,
								},
							},
						},
					},
				},
			},
		},
		{
			Name:         "rename",
			Description:  "Rename something",
			DMPermission: &dmPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "room",
					Description: "Change the name or topic of this room",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "field",
							Description: "What to change",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Name", Value: string(service.RenameFieldName)},
								{Name: "Topic", Value: string(service.RenameFieldTopic)},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "text",
							Description: "The new text",
							Required:    true,
						},
					},
				},
			},
		},
		{
			Name: "Pin Message",
			Type: discordgo.MessageApplicationCommand,
		},
		{
			Name: "Unpin Message",
			Type: discordgo.MessageApplicationCommand,
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "help", "about":
		b.about.HandleCommand(s, i)
	case "prefix", "setprefix":
		b.settings.HandleCommand(s, i)
	case "set", "get", "reset", "rename":
		b.rooms.HandleCommand(s, i)
	case "Pin Message", "Unpin Message":
		b.pins.HandleMessageCommand(s, i)
	}
}
