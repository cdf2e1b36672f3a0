package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"roomwizard/models"
)

// auditLogger implements the AuditLogger interface
type auditLogger struct {
	errorLogRepo ErrorLogRepository
}

// NewAuditLogger creates a new audit logger
func NewAuditLogger(errorLogRepo ErrorLogRepository) AuditLogger {
	return &auditLogger{errorLogRepo: errorLogRepo}
}

// LogError appends an error to the audit log. The append is best-effort:
// a failed write falls back to a local log line so a logging failure can
// never mask the original error or recurse.
func (a *auditLogger) LogError(ctx context.Context, commandName, commandData string, cmdErr error) {
	if commandName == "" {
		commandName = "N/A"
	}
	if commandData == "" {
		commandData = "N/A"
	}

	entry := &models.ErrorEntry{
		LoggedAt:    time.Now().UTC(),
		CommandName: commandName,
		CommandData: commandData,
		Error:       cmdErr.Error(),
	}

	if err := a.errorLogRepo.Record(ctx, entry); err != nil {
		log.WithFields(log.Fields{
			"command": commandName,
			"data":    commandData,
		}).Errorf("Failed to write audit log for error %q: %v", cmdErr, err)
	}
}
