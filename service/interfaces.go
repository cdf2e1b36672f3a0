package service

import (
	"context"

	"roomwizard/models"
)

// RoomRepository defines the interface for room settings data access
type RoomRepository interface {
	// GetOrCreate retrieves a room record, lazily inserting a default row
	// (edit_count=0, no owner, last_edit_at=now) on first reference.
	// Must be idempotent under concurrent calls for the same channel.
	GetOrCreate(ctx context.Context, channelID int64) (*models.Room, error)

	// Update applies a partial update and returns the refreshed record.
	// Returns ErrNoFields when the update is empty; ensures the row
	// exists first.
	Update(ctx context.Context, channelID int64, update models.RoomUpdate) (*models.Room, error)
}

// GuildSettingsRepository defines the interface for guild settings data access
type GuildSettingsRepository interface {
	// GetOrCreatePrefix returns the stored prefix for a guild, persisting
	// defaultPrefix on first reference.
	GetOrCreatePrefix(ctx context.Context, guildID int64, defaultPrefix string) (string, error)

	// SetPrefix upserts the prefix for a guild
	SetPrefix(ctx context.Context, guildID int64, prefix string) error
}

// ErrorLogRepository defines the interface for the append-only audit log
type ErrorLogRepository interface {
	// Record appends an entry to the audit log
	Record(ctx context.Context, entry *models.ErrorEntry) error
}

// ReactionAction tags the direction of a reaction event
type ReactionAction int

const (
	ReactionAdded ReactionAction = iota
	ReactionRemoved
)

// ReactionEvent is a transport-independent reaction change notification
type ReactionEvent struct {
	Action    ReactionAction
	ChannelID string
	MessageID string
	Emoji     string
}

// MessageSnapshot is the subset of a fetched message the pin logic needs
type MessageSnapshot struct {
	Pinned       bool
	PinReactions int // outstanding reactions with the designated pin emoji
}

// MessageClient abstracts the platform calls needed to synchronize pins.
// Implementations return ErrNotFound when the message or channel is gone.
type MessageClient interface {
	Message(ctx context.Context, channelID, messageID string) (*MessageSnapshot, error)
	Pin(ctx context.Context, channelID, messageID string) error
	Unpin(ctx context.Context, channelID, messageID string) error
}

// ChannelEditor abstracts the platform call that renames a channel field
type ChannelEditor interface {
	EditName(ctx context.Context, channelID int64, name string) error
	EditTopic(ctx context.Context, channelID int64, topic string) error
}

// PinService defines the interface for pin/unpin operations
type PinService interface {
	// HandleReaction reconciles a message's pinned state with the
	// presence of the designated pin emoji
	HandleReaction(ctx context.Context, event ReactionEvent) error

	// PinMessage pins a message; ErrAlreadyPinned if it already is
	PinMessage(ctx context.Context, channelID, messageID string) error

	// UnpinMessage unpins a message; ErrNotPinned if it isn't pinned
	UnpinMessage(ctx context.Context, channelID, messageID string) error
}

// RoomService defines the interface for room ownership and rename operations
type RoomService interface {
	// GetRoom retrieves (lazily creating) the room record
	GetRoom(ctx context.Context, channelID int64) (*models.Room, error)

	// SetOwner records a member as the room owner
	SetOwner(ctx context.Context, channelID, ownerID int64) (*models.Room, error)

	// ResetOwner clears the recorded owner
	ResetOwner(ctx context.Context, channelID int64) (*models.Room, error)

	// Rename updates the room name or topic, enforcing authorization,
	// length limits and the rename rate window, in that order.
	Rename(ctx context.Context, req RenameRequest) (*models.Room, error)
}

// PrefixService defines the interface for guild prefix operations
type PrefixService interface {
	// Get returns the effective prefix for a guild
	Get(ctx context.Context, guildID int64) (string, error)

	// Set validates and stores a new prefix for a guild
	Set(ctx context.Context, guildID int64, prefix string) error

	// Resolve returns every case-permutation of the guild's prefix so
	// command matching is case-insensitive
	Resolve(ctx context.Context, guildID int64) ([]string, error)
}

// AuditLogger defines the interface for best-effort error auditing
type AuditLogger interface {
	// LogError appends an error to the audit log; failures degrade to a
	// local log line and are never propagated
	LogError(ctx context.Context, commandName, commandData string, cmdErr error)
}
