package testutil

import (
	"time"

	"roomwizard/models"
)

// CreateTestRoom creates a room snapshot with default values
func CreateTestRoom(channelID int64) *models.Room {
	return &models.Room{
		ChannelID:  channelID,
		EditCount:  0,
		LastEditAt: time.Now().UTC().Truncate(time.Second),
	}
}

// CreateTestRoomWithOwner creates a room snapshot with an owner set
func CreateTestRoomWithOwner(channelID, ownerID int64) *models.Room {
	room := CreateTestRoom(channelID)
	room.OwnerID = &ownerID
	return room
}

// CreateTestErrorEntry creates an audit log entry with default values
func CreateTestErrorEntry(commandName string) *models.ErrorEntry {
	return &models.ErrorEntry{
		LoggedAt:    time.Now().UTC().Truncate(time.Second),
		CommandName: commandName,
		CommandData: "test data",
		Error:       "test error",
	}
}
