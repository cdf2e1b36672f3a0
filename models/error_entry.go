package models

import "time"

// ErrorEntry represents a record of the append-only errors table. It is
// never read back by the running bot and only exists for offline
// diagnostics.
type ErrorEntry struct {
	LoggedAt    time.Time `db:"logged_at"`
	CommandName string    `db:"command_name"`
	CommandData string    `db:"command_data"`
	Error       string    `db:"error"`
}
