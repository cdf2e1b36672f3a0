package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCasePermutations(t *testing.T) {
	t.Run("two letters", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"ab", "aB", "Ab", "AB"}, CasePermutations("ab"))
	})

	t.Run("letter and digit", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"a1", "A1"}, CasePermutations("a1"))
	})

	t.Run("no letters", func(t *testing.T) {
		assert.Equal(t, []string{"!?"}, CasePermutations("!?"))
	})

	t.Run("trailing space kept", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"a ", "A "}, CasePermutations("a "))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, []string{""}, CasePermutations(""))
	})
}

func TestPrefixService_Get_UsesDefaultOnFirstReference(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockGuildSettingsRepository)
	service := NewPrefixService(mockRepo, "pinbot ")

	mockRepo.On("GetOrCreatePrefix", ctx, int64(99), "pinbot ").Return("pinbot ", nil)

	prefix, err := service.Get(ctx, 99)
	assert.NoError(t, err)
	assert.Equal(t, "pinbot ", prefix)
	mockRepo.AssertExpectations(t)
}

func TestPrefixService_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("valid prefix is stored", func(t *testing.T) {
		mockRepo := new(MockGuildSettingsRepository)
		service := NewPrefixService(mockRepo, "pinbot ")

		mockRepo.On("SetPrefix", ctx, int64(99), "rw!").Return(nil)

		assert.NoError(t, service.Set(ctx, 99, "rw!"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty prefix is rejected", func(t *testing.T) {
		mockRepo := new(MockGuildSettingsRepository)
		service := NewPrefixService(mockRepo, "pinbot ")

		err := service.Set(ctx, 99, "")
		assert.ErrorIs(t, err, ErrInvalidField)
		mockRepo.AssertNotCalled(t, "SetPrefix", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("overlong prefix is rejected", func(t *testing.T) {
		mockRepo := new(MockGuildSettingsRepository)
		service := NewPrefixService(mockRepo, "pinbot ")

		err := service.Set(ctx, 99, strings.Repeat("a", 21))
		assert.ErrorIs(t, err, ErrInvalidField)
		mockRepo.AssertNotCalled(t, "SetPrefix", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-printable prefix is rejected", func(t *testing.T) {
		mockRepo := new(MockGuildSettingsRepository)
		service := NewPrefixService(mockRepo, "pinbot ")

		err := service.Set(ctx, 99, "ab\x00")
		assert.ErrorIs(t, err, ErrInvalidField)
	})
}

func TestPrefixService_Resolve(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockGuildSettingsRepository)
	service := NewPrefixService(mockRepo, "pinbot ")

	mockRepo.On("GetOrCreatePrefix", ctx, int64(99), "pinbot ").Return("ab", nil)

	prefixes, err := service.Resolve(ctx, 99)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"ab", "aB", "Ab", "AB"}, prefixes)
}
