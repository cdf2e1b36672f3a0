package repository

import (
	"context"
	"fmt"

	"roomwizard/database"
	"roomwizard/service"
)

// GuildSettingsRepository implements the service.GuildSettingsRepository interface
type GuildSettingsRepository struct {
	q queryable
}

// NewGuildSettingsRepository creates a new guild settings repository
func NewGuildSettingsRepository(db *database.DB) *GuildSettingsRepository {
	return &GuildSettingsRepository{q: db.Pool}
}

// GetOrCreatePrefix returns the stored prefix for a guild, persisting
// defaultPrefix on first reference. The lazy create is a single
// idempotent statement, so exactly one row exists per guild even under
// concurrent first lookups.
func (r *GuildSettingsRepository) GetOrCreatePrefix(ctx context.Context, guildID int64, defaultPrefix string) (string, error) {
	insertQuery := `
		INSERT INTO guild_settings (guild_id, prefix)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO NOTHING
	`

	if _, err := r.q.Exec(ctx, insertQuery, guildID, defaultPrefix); err != nil {
		return "", service.NewStorageError("guild_settings.get_or_create",
			fmt.Errorf("failed to insert settings for guild %d: %w", guildID, err))
	}

	var prefix string
	query := `SELECT prefix FROM guild_settings WHERE guild_id = $1`
	if err := r.q.QueryRow(ctx, query, guildID).Scan(&prefix); err != nil {
		return "", service.NewStorageError("guild_settings.get",
			fmt.Errorf("failed to get prefix for guild %d: %w", guildID, err))
	}

	return prefix, nil
}

// SetPrefix upserts the prefix for a guild
func (r *GuildSettingsRepository) SetPrefix(ctx context.Context, guildID int64, prefix string) error {
	query := `
		INSERT INTO guild_settings (guild_id, prefix)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO UPDATE SET prefix = EXCLUDED.prefix
	`

	if _, err := r.q.Exec(ctx, query, guildID, prefix); err != nil {
		return service.NewStorageError("guild_settings.set_prefix",
			fmt.Errorf("failed to set prefix for guild %d: %w", guildID, err))
	}

	return nil
}
