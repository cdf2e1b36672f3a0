package rooms

import (
	"github.com/bwmarrin/discordgo"

	"roomwizard/service"
)

// Feature handles room ownership and rename commands
type Feature struct {
	roomService service.RoomService
	audit       service.AuditLogger
}

// NewFeature creates a new rooms feature instance
func NewFeature(roomService service.RoomService, audit service.AuditLogger) *Feature {
	return &Feature{
		roomService: roomService,
		audit:       audit,
	}
}

// HandleCommand routes the room setting command groups
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	switch data.Name {
	case "set":
		if isRoomOwnerSubcommand(data) {
			f.handleSetOwner(s, i)
		}
	case "get":
		if isRoomOwnerSubcommand(data) {
			f.handleGetOwner(s, i)
		}
	case "reset":
		if isRoomOwnerSubcommand(data) {
			f.handleResetOwner(s, i)
		}
	case "rename":
		if len(data.Options) > 0 && data.Options[0].Name == "room" {
			f.handleRename(s, i)
		}
	}
}

// isRoomOwnerSubcommand checks for the "<group> room owner" shape
func isRoomOwnerSubcommand(data discordgo.ApplicationCommandInteractionData) bool {
	return len(data.Options) > 0 &&
		data.Options[0].Name == "room" &&
		len(data.Options[0].Options) > 0 &&
		data.Options[0].Options[0].Name == "owner"
}
