package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"roomwizard/models"
)

func TestAuditLogger_LogError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockErrorLogRepository)
	logger := NewAuditLogger(mockRepo)

	cmdErr := errors.New("something broke")

	mockRepo.On("Record", ctx, mock.MatchedBy(func(e *models.ErrorEntry) bool {
		return e.CommandName == "rename room" &&
			e.CommandData == "field=Name text=foo" &&
			e.Error == "something broke" &&
			!e.LoggedAt.IsZero()
	})).Return(nil)

	logger.LogError(ctx, "rename room", "field=Name text=foo", cmdErr)
	mockRepo.AssertExpectations(t)
}

func TestAuditLogger_LogError_DefaultsEmptyContext(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockErrorLogRepository)
	logger := NewAuditLogger(mockRepo)

	mockRepo.On("Record", ctx, mock.MatchedBy(func(e *models.ErrorEntry) bool {
		return e.CommandName == "N/A" && e.CommandData == "N/A"
	})).Return(nil)

	logger.LogError(ctx, "", "", errors.New("boom"))
	mockRepo.AssertExpectations(t)
}

func TestAuditLogger_LogError_SwallowsWriteFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockErrorLogRepository)
	logger := NewAuditLogger(mockRepo)

	mockRepo.On("Record", ctx, mock.Anything).Return(errors.New("connection lost"))

	// Must not panic or propagate
	assert.NotPanics(t, func() {
		logger.LogError(ctx, "pin", "message_id=1", errors.New("boom"))
	})
}
