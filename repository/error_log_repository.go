package repository

import (
	"context"
	"fmt"

	"roomwizard/database"
	"roomwizard/models"
	"roomwizard/service"
)

// ErrorLogRepository implements the service.ErrorLogRepository interface.
// The errors table is append-only; nothing in the running bot reads it.
type ErrorLogRepository struct {
	q queryable
}

// NewErrorLogRepository creates a new error log repository
func NewErrorLogRepository(db *database.DB) *ErrorLogRepository {
	return &ErrorLogRepository{q: db.Pool}
}

// Record appends an entry to the audit log
func (r *ErrorLogRepository) Record(ctx context.Context, entry *models.ErrorEntry) error {
	query := `
		INSERT INTO errors (logged_at, command_name, command_data, error)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.q.Exec(ctx, query, entry.LoggedAt, entry.CommandName, entry.CommandData, entry.Error)
	if err != nil {
		return service.NewStorageError("errors.record",
			fmt.Errorf("failed to record error entry: %w", err))
	}

	return nil
}
