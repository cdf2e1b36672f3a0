package pins

import (
	"github.com/bwmarrin/discordgo"

	"roomwizard/service"
)

// Feature handles pin and unpin commands plus the 📌 reaction events
type Feature struct {
	pinService service.PinService
	audit      service.AuditLogger
}

// NewFeature creates a new pins feature instance
func NewFeature(pinService service.PinService, audit service.AuditLogger) *Feature {
	return &Feature{
		pinService: pinService,
		audit:      audit,
	}
}

// HandleMessageCommand routes the "Pin Message" / "Unpin Message" context
// menu commands
func (f *Feature) HandleMessageCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "Pin Message":
		f.handlePin(s, i)
	case "Unpin Message":
		f.handleUnpin(s, i)
	}
}
