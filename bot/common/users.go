package common

import (
	"github.com/bwmarrin/discordgo"
)

// DisplayName returns the invoker's nickname, falling back to the username
func DisplayName(i *discordgo.InteractionCreate) string {
	if i.Member == nil || i.Member.User == nil {
		return "there"
	}
	if i.Member.Nick != "" {
		return i.Member.Nick
	}
	return i.Member.User.Username
}

// InvokerHasPermission reports whether the interaction invoker holds the
// given permission in the channel the interaction came from
func InvokerHasPermission(i *discordgo.InteractionCreate, permission int64) bool {
	if i.Member == nil {
		return false
	}
	if i.Member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	return i.Member.Permissions&permission != 0
}

// AuthorHasPermission reports whether a message author holds the given
// permission in the message's channel (legacy command path)
func AuthorHasPermission(s *discordgo.Session, m *discordgo.MessageCreate, permission int64) bool {
	perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		return false
	}
	if perms&discordgo.PermissionAdministrator != 0 {
		return true
	}
	return perms&permission != 0
}
