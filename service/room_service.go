package service

import (
	"context"
	"fmt"
	"time"

	"roomwizard/models"
)

// RenameRequest carries everything the rename decision needs. The caller
// resolves the actor's manage-channels capability at the transport layer.
type RenameRequest struct {
	ChannelID      int64
	ActorID        int64
	ManageChannels bool
	Field          RenameField
	Text           string
	Now            time.Time
}

// roomService implements the RoomService interface
type roomService struct {
	roomRepo RoomRepository
	editor   ChannelEditor
}

// NewRoomService creates a new room service
func NewRoomService(roomRepo RoomRepository, editor ChannelEditor) RoomService {
	return &roomService{
		roomRepo: roomRepo,
		editor:   editor,
	}
}

// GetRoom retrieves (lazily creating) the room record
func (s *roomService) GetRoom(ctx context.Context, channelID int64) (*models.Room, error) {
	room, err := s.roomRepo.GetOrCreate(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create room %d: %w", channelID, err)
	}
	return room, nil
}

// SetOwner records a member as the room owner
func (s *roomService) SetOwner(ctx context.Context, channelID, ownerID int64) (*models.Room, error) {
	room, err := s.roomRepo.Update(ctx, channelID, models.RoomUpdate{OwnerID: &ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to set owner of room %d: %w", channelID, err)
	}
	return room, nil
}

// ResetOwner clears the recorded owner
func (s *roomService) ResetOwner(ctx context.Context, channelID int64) (*models.Room, error) {
	room, err := s.roomRepo.Update(ctx, channelID, models.RoomUpdate{ClearOwner: true})
	if err != nil {
		return nil, fmt.Errorf("failed to reset owner of room %d: %w", channelID, err)
	}
	return room, nil
}

// Rename updates the room name or topic. Authorization is checked before
// the length limits, which are checked before the rate window, so an
// unauthorized or oversized edit never consumes the rate budget.
func (s *roomService) Rename(ctx context.Context, req RenameRequest) (*models.Room, error) {
	room, err := s.roomRepo.GetOrCreate(ctx, req.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create room %d: %w", req.ChannelID, err)
	}

	if !req.ManageChannels && !room.IsOwnedBy(req.ActorID) {
		return nil, ErrPermission
	}

	if len([]rune(req.Text)) > req.Field.MaxLength() {
		return nil, &FieldTooLongError{Field: string(req.Field), Max: req.Field.MaxLength()}
	}

	allowed, retryAfter := CanRename(room, req.Now)
	if !allowed {
		return nil, &RateLimitedError{RetryAfter: retryAfter}
	}

	switch req.Field {
	case RenameFieldTopic:
		err = s.editor.EditTopic(ctx, req.ChannelID, req.Text)
	default:
		err = s.editor.EditName(ctx, req.ChannelID, req.Text)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to edit channel %d: %w", req.ChannelID, err)
	}

	editCount := NextEditCount(room.EditCount)
	lastEditAt := req.Now.Truncate(time.Second)
	room, err = s.roomRepo.Update(ctx, req.ChannelID, models.RoomUpdate{
		EditCount:  &editCount,
		LastEditAt: &lastEditAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record rename of room %d: %w", req.ChannelID, err)
	}

	return room, nil
}
