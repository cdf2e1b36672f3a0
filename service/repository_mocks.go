package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"roomwizard/models"
)

// MockRoomRepository is a mock implementation of RoomRepository
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetOrCreate(ctx context.Context, channelID int64) (*models.Room, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomRepository) Update(ctx context.Context, channelID int64, update models.RoomUpdate) (*models.Room, error) {
	args := m.Called(ctx, channelID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

// MockGuildSettingsRepository is a mock implementation of GuildSettingsRepository
type MockGuildSettingsRepository struct {
	mock.Mock
}

func (m *MockGuildSettingsRepository) GetOrCreatePrefix(ctx context.Context, guildID int64, defaultPrefix string) (string, error) {
	args := m.Called(ctx, guildID, defaultPrefix)
	return args.String(0), args.Error(1)
}

func (m *MockGuildSettingsRepository) SetPrefix(ctx context.Context, guildID int64, prefix string) error {
	args := m.Called(ctx, guildID, prefix)
	return args.Error(0)
}

// MockErrorLogRepository is a mock implementation of ErrorLogRepository
type MockErrorLogRepository struct {
	mock.Mock
}

func (m *MockErrorLogRepository) Record(ctx context.Context, entry *models.ErrorEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockMessageClient is a mock implementation of MessageClient
type MockMessageClient struct {
	mock.Mock
}

func (m *MockMessageClient) Message(ctx context.Context, channelID, messageID string) (*MessageSnapshot, error) {
	args := m.Called(ctx, channelID, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MessageSnapshot), args.Error(1)
}

func (m *MockMessageClient) Pin(ctx context.Context, channelID, messageID string) error {
	args := m.Called(ctx, channelID, messageID)
	return args.Error(0)
}

func (m *MockMessageClient) Unpin(ctx context.Context, channelID, messageID string) error {
	args := m.Called(ctx, channelID, messageID)
	return args.Error(0)
}

// MockChannelEditor is a mock implementation of ChannelEditor
type MockChannelEditor struct {
	mock.Mock
}

func (m *MockChannelEditor) EditName(ctx context.Context, channelID int64, name string) error {
	args := m.Called(ctx, channelID, name)
	return args.Error(0)
}

func (m *MockChannelEditor) EditTopic(ctx context.Context, channelID int64, topic string) error {
	args := m.Called(ctx, channelID, topic)
	return args.Error(0)
}
