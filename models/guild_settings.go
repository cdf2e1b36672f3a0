package models

// GuildSettings represents per-guild configuration settings
type GuildSettings struct {
	GuildID int64  `db:"guild_id"`
	Prefix  string `db:"prefix"`
}
