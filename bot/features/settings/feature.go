package settings

import (
	"github.com/bwmarrin/discordgo"

	"roomwizard/service"
)

// Feature handles the guild prefix commands on both transports
type Feature struct {
	prefixService service.PrefixService
	audit         service.AuditLogger
}

// NewFeature creates a new settings feature instance
func NewFeature(prefixService service.PrefixService, audit service.AuditLogger) *Feature {
	return &Feature{
		prefixService: prefixService,
		audit:         audit,
	}
}

// HandleCommand routes the prefix slash commands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "prefix":
		f.handlePrefix(s, i)
	case "setprefix":
		f.handleSetPrefix(s, i)
	}
}
