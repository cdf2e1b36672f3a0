package service

import (
	"time"

	"roomwizard/models"
)

const (
	// MaxRoomNameLength is the channel name limit enforced before the
	// rate check
	MaxRoomNameLength = 100

	// MaxRoomTopicLength is the channel topic limit enforced before the
	// rate check
	MaxRoomTopicLength = 1024

	// RenameWindow is the rolling throttle window applied after
	// RenameLimit edits
	RenameWindow = 10 * time.Minute

	// RenameLimit is the number of edits allowed inside the window
	RenameLimit = 2
)

// RenameField identifies which channel field a rename targets
type RenameField string

const (
	RenameFieldName  RenameField = "Name"
	RenameFieldTopic RenameField = "Topic"
)

// ParseRenameField validates a user-supplied field choice
func ParseRenameField(s string) (RenameField, error) {
	switch RenameField(s) {
	case RenameFieldName:
		return RenameFieldName, nil
	case RenameFieldTopic:
		return RenameFieldTopic, nil
	}
	return "", ErrInvalidField
}

// MaxLength returns the character limit for the field
func (f RenameField) MaxLength() int {
	if f == RenameFieldTopic {
		return MaxRoomTopicLength
	}
	return MaxRoomNameLength
}

// CanRename decides whether a room may be renamed at the given time.
// A room is blocked once EditCount has reached RenameLimit and the last
// edit is still inside the window; retryAfter then holds the remaining
// wait, truncated to whole seconds.
func CanRename(room *models.Room, now time.Time) (allowed bool, retryAfter time.Duration) {
	if room.EditCount < RenameLimit {
		return true, 0
	}
	elapsed := now.Truncate(time.Second).Sub(room.LastEditAt)
	if elapsed >= RenameWindow {
		return true, 0
	}
	return false, (RenameWindow - elapsed).Truncate(time.Second)
}

// NextEditCount returns the counter value after a successful rename. Once
// the counter has reached the limit it cycles back to 1, not 0: the edit
// that trips out of the throttle window counts as the first of the next
// pair. Preserved as observed behavior.
func NextEditCount(current int) int {
	if current >= RenameLimit {
		return 1
	}
	return current + 1
}
