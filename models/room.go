package models

import "time"

// Room represents a record of the rooms table: a text channel with a
// configurable owner and rename-rate state. Instances are disposable
// snapshots; the stored row is the source of truth and callers re-read
// after every write.
type Room struct {
	ChannelID  int64     `db:"channel_id"`
	OwnerID    *int64    `db:"owner_id"` // Nullable - non-bot member owning the room
	EditCount  int       `db:"edit_count"`
	LastEditAt time.Time `db:"last_edit_at"`
}

// HasOwner checks if an owner is recorded for the room
func (r *Room) HasOwner() bool {
	return r.OwnerID != nil && *r.OwnerID > 0
}

// IsOwnedBy checks if the given member is the recorded owner
func (r *Room) IsOwnedBy(memberID int64) bool {
	return r.OwnerID != nil && *r.OwnerID == memberID
}

// RoomUpdate describes a partial update of a room record. Only fields that
// are set are written; at least one must be set.
type RoomUpdate struct {
	OwnerID    *int64     // new owner; mutually exclusive with ClearOwner
	ClearOwner bool       // reset owner_id to NULL
	EditCount  *int       // new edit counter value
	LastEditAt *time.Time // new last edit timestamp, second precision
}

// IsEmpty reports whether the update carries no fields at all
func (u RoomUpdate) IsEmpty() bool {
	return u.OwnerID == nil && !u.ClearOwner && u.EditCount == nil && u.LastEditAt == nil
}
