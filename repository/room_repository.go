package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"roomwizard/database"
	"roomwizard/models"
	"roomwizard/service"
)

// RoomRepository implements the service.RoomRepository interface
type RoomRepository struct {
	q queryable
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *database.DB) *RoomRepository {
	return &RoomRepository{q: db.Pool}
}

// GetOrCreate retrieves a room record, inserting a default row on first
// reference. The insert uses ON CONFLICT DO NOTHING so concurrent calls
// for the same channel can never create a duplicate; whichever statement
// loses the race simply reads the winner's row.
func (r *RoomRepository) GetOrCreate(ctx context.Context, channelID int64) (*models.Room, error) {
	insertQuery := `
		INSERT INTO rooms (channel_id, last_edit_at)
		VALUES ($1, $2)
		ON CONFLICT (channel_id) DO NOTHING
	`

	now := time.Now().UTC().Truncate(time.Second)
	if _, err := r.q.Exec(ctx, insertQuery, channelID, now); err != nil {
		return nil, service.NewStorageError("rooms.get_or_create",
			fmt.Errorf("failed to insert room %d: %w", channelID, err))
	}

	return r.get(ctx, channelID)
}

// Update applies a partial update to a room and returns the refreshed
// record. The row is created first if it doesn't exist yet.
func (r *RoomRepository) Update(ctx context.Context, channelID int64, update models.RoomUpdate) (*models.Room, error) {
	if update.IsEmpty() {
		return nil, service.ErrNoFields
	}

	// Makes sure the record exists
	if _, err := r.GetOrCreate(ctx, channelID); err != nil {
		return nil, err
	}

	var (
		set  []string
		args = []any{channelID}
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if update.OwnerID != nil {
		set = append(set, "owner_id = "+next(*update.OwnerID))
	} else if update.ClearOwner {
		set = append(set, "owner_id = NULL")
	}
	if update.EditCount != nil {
		set = append(set, "edit_count = "+next(*update.EditCount))
	}
	if update.LastEditAt != nil {
		set = append(set, "last_edit_at = "+next(update.LastEditAt.Truncate(time.Second)))
	}

	query := fmt.Sprintf(`
		UPDATE rooms
		SET %s
		WHERE channel_id = $1
		RETURNING channel_id, owner_id, edit_count, last_edit_at
	`, strings.Join(set, ", "))

	var room models.Room
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&room.ChannelID,
		&room.OwnerID,
		&room.EditCount,
		&room.LastEditAt,
	)
	if err != nil {
		return nil, service.NewStorageError("rooms.update",
			fmt.Errorf("failed to update room %d: %w", channelID, err))
	}

	return &room, nil
}

func (r *RoomRepository) get(ctx context.Context, channelID int64) (*models.Room, error) {
	query := `
		SELECT channel_id, owner_id, edit_count, last_edit_at
		FROM rooms
		WHERE channel_id = $1
	`

	var room models.Room
	err := r.q.QueryRow(ctx, query, channelID).Scan(
		&room.ChannelID,
		&room.OwnerID,
		&room.EditCount,
		&room.LastEditAt,
	)
	if err != nil {
		return nil, service.NewStorageError("rooms.get",
			fmt.Errorf("failed to get room %d: %w", channelID, err))
	}

	return &room, nil
}
