package rooms

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

func TestFeature_HandleCommand_RenameOutsideGuildGetsReply(t *testing.T) {
	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	feature := NewFeature(nil, nil)

	// A DM interaction carries User instead of Member
	interaction := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionApplicationCommand,
			ChannelID: "99",
			User:      &discordgo.User{ID: "42", Username: "someone"},
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "rename",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name: "room",
						Type: discordgo.ApplicationCommandOptionSubCommand,
						Options: []*discordgo.ApplicationCommandInteractionDataOption{
							{Name: "field", Type: discordgo.ApplicationCommandOptionString, Value: "Name"},
							{Name: "text", Type: discordgo.ApplicationCommandOptionString, Value: "new-name"},
						},
					},
				},
			},
		},
	}

	// The handler must bail out with a reply before touching the room
	// service (nil here, so any service call would panic too)
	require.NotPanics(t, func() {
		feature.HandleCommand(session, interaction)
	})
}
