package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomwizard/models"
	"roomwizard/repository/testutil"
	"roomwizard/service"
)

func TestRoomRepository_GetOrCreate(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewRoomRepository(testDB.DB)
	ctx := context.Background()

	t.Run("creates default row on first reference", func(t *testing.T) {
		before := time.Now().UTC().Truncate(time.Second)

		room, err := repo.GetOrCreate(ctx, 555)
		require.NoError(t, err)
		require.NotNil(t, room)

		assert.Equal(t, int64(555), room.ChannelID)
		assert.Nil(t, room.OwnerID)
		assert.Equal(t, 0, room.EditCount)
		assert.False(t, room.LastEditAt.Before(before))
	})

	t.Run("second call returns the existing row", func(t *testing.T) {
		first, err := repo.GetOrCreate(ctx, 556)
		require.NoError(t, err)

		second, err := repo.GetOrCreate(ctx, 556)
		require.NoError(t, err)
		assert.Equal(t, first.LastEditAt, second.LastEditAt)
		assert.Equal(t, first.EditCount, second.EditCount)
	})

	t.Run("concurrent calls create exactly one row", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.GetOrCreate(ctx, 557)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		var count int
		err := testDB.DB.QueryRow(ctx, "SELECT COUNT(*) FROM rooms WHERE channel_id = 557").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestRoomRepository_Update(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewRoomRepository(testDB.DB)
	ctx := context.Background()

	t.Run("empty update fails without writing", func(t *testing.T) {
		_, err := repo.Update(ctx, 600, models.RoomUpdate{})
		assert.ErrorIs(t, err, service.ErrNoFields)

		var count int
		err = testDB.DB.QueryRow(ctx, "SELECT COUNT(*) FROM rooms WHERE channel_id = 600").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("creates the row if missing", func(t *testing.T) {
		ownerID := int64(42)
		room, err := repo.Update(ctx, 601, models.RoomUpdate{OwnerID: &ownerID})
		require.NoError(t, err)
		assert.Equal(t, int64(601), room.ChannelID)
		require.NotNil(t, room.OwnerID)
		assert.Equal(t, int64(42), *room.OwnerID)
		assert.Equal(t, 0, room.EditCount)
	})

	t.Run("partial update leaves other fields untouched", func(t *testing.T) {
		ownerID := int64(42)
		_, err := repo.Update(ctx, 602, models.RoomUpdate{OwnerID: &ownerID})
		require.NoError(t, err)

		editCount := 2
		room, err := repo.Update(ctx, 602, models.RoomUpdate{EditCount: &editCount})
		require.NoError(t, err)

		assert.Equal(t, 2, room.EditCount)
		require.NotNil(t, room.OwnerID)
		assert.Equal(t, int64(42), *room.OwnerID)
	})

	t.Run("clear owner resets to null", func(t *testing.T) {
		ownerID := int64(42)
		_, err := repo.Update(ctx, 603, models.RoomUpdate{OwnerID: &ownerID})
		require.NoError(t, err)

		room, err := repo.Update(ctx, 603, models.RoomUpdate{ClearOwner: true})
		require.NoError(t, err)
		assert.Nil(t, room.OwnerID)
	})

	t.Run("timestamps are stored at second precision", func(t *testing.T) {
		at := time.Date(2023, 6, 1, 12, 0, 0, 987654321, time.UTC)
		room, err := repo.Update(ctx, 604, models.RoomUpdate{LastEditAt: &at})
		require.NoError(t, err)
		assert.Equal(t, at.Truncate(time.Second), room.LastEditAt.UTC())
	})

	t.Run("multi-field update applies all fields", func(t *testing.T) {
		ownerID := int64(7)
		editCount := 1
		at := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

		room, err := repo.Update(ctx, 605, models.RoomUpdate{
			OwnerID:    &ownerID,
			EditCount:  &editCount,
			LastEditAt: &at,
		})
		require.NoError(t, err)

		require.NotNil(t, room.OwnerID)
		assert.Equal(t, int64(7), *room.OwnerID)
		assert.Equal(t, 1, room.EditCount)
		assert.Equal(t, at, room.LastEditAt.UTC())
	})
}
