package bot

import (
	"context"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleMessageCreate dispatches legacy text commands. A message is a
// command when it starts with any case-permutation of the guild's prefix.
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	guildID, err := strconv.ParseInt(m.GuildID, 10, 64)
	if err != nil {
		return
	}

	prefixes, err := b.prefixService.Resolve(context.Background(), guildID)
	if err != nil {
		log.Errorf("Failed to resolve prefix for guild %d: %v", guildID, err)
		return
	}

	var rest string
	matched := false
	for _, prefix := range prefixes {
		if strings.HasPrefix(m.Content, prefix) {
			rest = m.Content[len(prefix):]
			matched = true
			break
		}
	}
	if !matched {
		return
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return
	}
	command, args := strings.ToLower(fields[0]), fields[1:]

	switch command {
	case "pin":
		b.pins.LegacyPin(s, m, args)
	case "unpin":
		b.pins.LegacyUnpin(s, m, args)
	case "prefix":
		b.settings.LegacyPrefix(s, m)
	case "setprefix":
		b.settings.LegacySetPrefix(s, m, args)
	case "help":
		b.about.LegacyHelp(s, m)
	case "about":
		b.about.LegacyAbout(s, m)
	}
}
